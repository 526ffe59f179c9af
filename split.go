package money

import (
	"fmt"
	"math/big"
	"slices"
)

// Share is the portion of an expense owed by one debtor, in minor units of
// the source currency and of the target currency.
type Share struct {
	DebtorID         string `json:"debtorId"`
	SourceMinorUnits int64  `json:"sourceMinorUnits"`
	TargetMinorUnits int64  `json:"targetMinorUnits"`
}

// ComputeSplit divides totalSourceMinorUnits among debtorIDs and converts
// every share from sourceCurrency to targetCurrency using conversionRate.
// It parses its arguments and then behaves like [Split].
//
// Inputs are validated in the following order, and the first failure is
// returned: [EmptyDebtorList], [NonPositiveAmount], [DuplicateDebtor],
// [InvalidCurrency], [InvalidDecimalFormat] or [InvalidRate].
func ComputeSplit(totalSourceMinorUnits int64, debtorIDs []string, sourceCurrency, targetCurrency, conversionRate string) ([]Share, error) {
	total, rate, err := parseSplitArgs(totalSourceMinorUnits, debtorIDs, sourceCurrency, targetCurrency, conversionRate)
	if err != nil {
		return nil, withOp("computing split", err)
	}
	return Split(total, debtorIDs, rate)
}

// ComputeSplitReconciled is like [ComputeSplit] but behaves like [SplitReconciled].
func ComputeSplitReconciled(totalSourceMinorUnits int64, debtorIDs []string, sourceCurrency, targetCurrency, conversionRate string) ([]Share, error) {
	total, rate, err := parseSplitArgs(totalSourceMinorUnits, debtorIDs, sourceCurrency, targetCurrency, conversionRate)
	if err != nil {
		return nil, withOp("computing reconciled split", err)
	}
	return SplitReconciled(total, debtorIDs, rate)
}

func parseSplitArgs(total int64, debtorIDs []string, source, target, rate string) (Amount, ExchangeRate, error) {
	if err := validateDebtors(debtorIDs); err != nil {
		return Amount{}, ExchangeRate{}, err
	}
	if total <= 0 {
		return Amount{}, ExchangeRate{}, newError(NonPositiveAmount, "", fmt.Sprintf("total %v", total))
	}
	if err := validateUnique(debtorIDs); err != nil {
		return Amount{}, ExchangeRate{}, err
	}
	r, err := ParseExchRate(source, target, rate)
	if err != nil {
		return Amount{}, ExchangeRate{}, err
	}
	return newAmountUnsafe(r.Base(), total), r, nil
}

func validateDebtors(debtorIDs []string) error {
	if len(debtorIDs) == 0 {
		return newError(EmptyDebtorList, "", "")
	}
	return nil
}

func validateUnique(debtorIDs []string) error {
	seen := make(map[string]struct{}, len(debtorIDs))
	for _, id := range debtorIDs {
		if _, ok := seen[id]; ok {
			return newError(DuplicateDebtor, "", fmt.Sprintf("%q", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateSplit(total Amount, debtorIDs []string, rate ExchangeRate) error {
	if err := validateDebtors(debtorIDs); err != nil {
		return err
	}
	if total.IsZero() {
		return newError(NonPositiveAmount, "", fmt.Sprintf("total %v", total))
	}
	if err := validateUnique(debtorIDs); err != nil {
		return err
	}
	if rate.value == "" {
		return newError(InvalidRate, "", "zero exchange rate")
	}
	if total.Curr() != rate.Base() {
		return newError(InvalidCurrency, "", fmt.Sprintf("total %v is not in the base currency of %v", total, rate))
	}
	return nil
}

// Split divides the total among the debtors and converts every share to the
// quote currency of the rate.
//
// Every debtor gets total / n minor units of the source currency, where n is
// the number of debtors. The remaining total mod n minor units are given one
// each to the first debtors in the order supplied by the caller; callers that
// want a different policy (e.g. rotating who absorbs the remainder) must
// reorder debtorIDs. The source shares always sum up to the total.
//
// Each source share is converted on its own and rounded half up to the scale
// of the quote currency. Therefore the target shares may differ from the
// converted total ([ExchangeRate.Conv]) by up to n - 1 minor units.
// Use [SplitReconciled] when they must add up exactly.
//
// Split returns an error if:
//   - debtorIDs is empty or has duplicates;
//   - the total is zero;
//   - the rate is the zero value or its base currency is not the currency of the total;
//   - a target share does not fit into an int64.
func Split(total Amount, debtorIDs []string, rate ExchangeRate) ([]Share, error) {
	res, err := split(total, debtorIDs, rate, false)
	if err != nil {
		return nil, withOp(fmt.Sprintf("splitting %v among %v debtor(s)", total, len(debtorIDs)), err)
	}
	return res, nil
}

// SplitReconciled is like [Split] but distributes the target currency using
// the largest remainder method, so that the target shares sum up exactly to
// the converted total ([ExchangeRate.Conv]).
// Every target share is the exact converted share rounded either down or up;
// shares with the largest discarded fractions are rounded up first, and ties
// go to the debtor that comes first in debtorIDs.
func SplitReconciled(total Amount, debtorIDs []string, rate ExchangeRate) ([]Share, error) {
	res, err := split(total, debtorIDs, rate, true)
	if err != nil {
		return nil, withOp(fmt.Sprintf("splitting %v among %v debtor(s)", total, len(debtorIDs)), err)
	}
	return res, nil
}

func split(total Amount, debtorIDs []string, rate ExchangeRate, reconcile bool) ([]Share, error) {
	if err := validateSplit(total, debtorIDs, rate); err != nil {
		return nil, err
	}

	// Source shares
	n := int64(len(debtorIDs))
	quo, rem := total.MinorUnits()/n, total.MinorUnits()%n
	src := make([]int64, n)
	for i := range src {
		src[i] = quo
		if int64(i) < rem {
			src[i]++
		}
	}

	// Target shares
	var tgt []*big.Int
	if reconcile {
		tgt = reconciledTargets(total, src, rate)
	} else {
		tgt = make([]*big.Int, n)
		for i, s := range src {
			tgt[i] = rate.conv(big.NewInt(s))
		}
	}

	res := make([]Share, n)
	for i, id := range debtorIDs {
		if !tgt[i].IsInt64() {
			return nil, newError(AmountOverflow, "", fmt.Sprintf("share of %q: %v minor units do not fit into int64", id, tgt[i]))
		}
		res[i] = Share{
			DebtorID:         id,
			SourceMinorUnits: src[i],
			TargetMinorUnits: tgt[i].Int64(),
		}
	}
	return res, nil
}

// reconciledTargets converts the source shares to the quote currency so that
// they sum up to the rounded conversion of the total.
func reconciledTargets(total Amount, src []int64, rate ExchangeRate) []*big.Int {
	from := rate.Base().Scale() + rate.Scale()
	to := rate.Quote().Scale()
	coef := rate.coef()

	tgt := make([]*big.Int, len(src))
	if to >= from {
		// Conversion is exact, nothing to reconcile.
		for i, s := range src {
			tgt[i] = rescale(new(big.Int).Mul(big.NewInt(s), coef), from, to)
		}
		return tgt
	}

	// Floors and discarded fractions
	div := pow10(from - to)
	fracs := make([]*big.Int, len(src))
	sum := new(big.Int)
	for i, s := range src {
		v := new(big.Int).Mul(big.NewInt(s), coef)
		tgt[i], fracs[i] = new(big.Int).QuoRem(v, div, new(big.Int))
		sum.Add(sum, tgt[i])
	}

	// Largest remainders
	want := rate.conv(big.NewInt(total.MinorUnits()))
	left := int(new(big.Int).Sub(want, sum).Int64())
	order := make([]int, len(src))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return fracs[b].Cmp(fracs[a])
	})
	for _, i := range order[:left] {
		tgt[i].Add(tgt[i], bigOne)
	}
	return tgt
}

// Totals returns the sums of the source and target minor units of the shares.
func Totals(shares []Share) (source, target int64) {
	for _, s := range shares {
		source += s.SourceMinorUnits
		target += s.TargetMinorUnits
	}
	return source, target
}
