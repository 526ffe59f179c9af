package money

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

const (
	// DefaultRateScale is the number of digits after the decimal point
	// of fee-adjusted rates, unless the caller asks for another scale.
	DefaultRateScale = 6

	// feeScale is the internal scale of fee-adjusted rate derivation.
	feeScale = 12

	// bpsScale is the scale of basis points: 1 bps = 1/10^4.
	bpsScale = 4
)

var bpsDenominator = big.NewInt(10000)

// ExchangeRate represents a locked, unidirectional exchange rate between two
// currencies: how many units of the quote currency are obtained for 1 unit
// of the base currency.
// The rate is kept exactly as written, so "0.92" and "0.920" are different
// representations of the same value.
// The zero value is not a valid exchange rate; use [ParseExchRate].
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency // currency being exchanged
	quote Currency // currency being obtained in exchange for the base currency
	value string   // digits(.digits)?, strictly positive
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
// See also constructor [ParseExchRate].
//
// NewExchRate returns an error if:
//   - the rate is not positive;
//   - the currencies are the same and the rate is not equal to 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, newError(InvalidRate, fmt.Sprintf("constructing %v/%v rate", base, quote), "rate must be positive")
	}
	return newExchRate(base, quote, rate.String())
}

func newExchRate(base, quote Currency, rate string) (ExchangeRate, error) {
	op := fmt.Sprintf("constructing %v/%v rate", base, quote)
	if _, _, err := splitDecimal(rate); err != nil {
		return ExchangeRate{}, withOp(op, err)
	}
	scale := decimalScale(rate)
	coef, err := toScaledInt(rate, scale)
	if err != nil {
		return ExchangeRate{}, withOp(op, err)
	}
	if coef.Sign() == 0 {
		return ExchangeRate{}, newError(InvalidRate, op, "rate must be positive")
	}
	if base == quote && coef.Cmp(pow10(scale)) != 0 {
		return ExchangeRate{}, newError(InvalidRate, op, fmt.Sprintf("rate %v must be equal to 1", rate))
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// The rate must match the pattern digits(.digits)? and is kept without rounding.
// See also constructor [ParseCurr].
//
// ParseExchRate returns an error if:
//   - either currency code is not valid;
//   - the rate is not a well-formed decimal;
//   - the rate is zero;
//   - the currencies are the same and the rate is not equal to 1.
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, withOp("parsing base currency", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, withOp("parsing quote currency", err)
	}
	r, err := newExchRate(b, q, rate)
	if err != nil {
		return ExchangeRate{}, withOp(fmt.Sprintf("parsing rate %q", rate), err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Scale returns the number of digits after the decimal point.
func (r ExchangeRate) Scale() int {
	return decimalScale(r.value)
}

// IsOne returns:
//
//	true  if r == 1
//	false otherwise
func (r ExchangeRate) IsOne() bool {
	return r.value != "" && r.coef().Cmp(pow10(r.Scale())) == 0
}

// coef returns the rate as an integer at the scale of the rate.
func (r ExchangeRate) coef() *big.Int {
	v, err := toScaledInt(r.value, r.Scale())
	if err != nil {
		panic(fmt.Sprintf("%q.coef() failed: %v", r, err))
	}
	return v
}

// Decimal returns the rate as a decimal.
// See also constructor [NewExchRate].
//
// Decimal returns an error if the rate cannot be represented by a decimal
// without rounding, that is, if it has more than [decimal.MaxPrec] digits or
// more than [decimal.MaxScale] digits after the decimal point.
func (r ExchangeRate) Decimal() (decimal.Decimal, error) {
	op := fmt.Sprintf("converting %v to decimal", r)
	d, err := decimal.Parse(r.value)
	if err != nil {
		return decimal.Decimal{}, newError(InvalidRate, op, err.Error())
	}
	if d.Scale() != r.Scale() {
		return decimal.Decimal{}, newError(InvalidRate, op, fmt.Sprintf("rate would be rounded to %v", d))
	}
	return d, nil
}

// Conv returns the amount converted from the base currency to the quote
// currency, rounded half up to the scale of the quote currency.
//
// Conv returns an error if:
//   - the amount is not denominated in the base currency;
//   - the result does not fit into an int64.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	op := fmt.Sprintf("converting %v with %v", b, r)
	if b.Curr() != r.Base() {
		return Amount{}, newError(InvalidCurrency, op, "currency mismatch")
	}
	v := r.conv(big.NewInt(b.MinorUnits()))
	if !v.IsInt64() {
		return Amount{}, newError(AmountOverflow, op, fmt.Sprintf("%v minor units do not fit into int64", v))
	}
	return newAmountUnsafe(r.Quote(), v.Int64()), nil
}

// conv converts minor units of the base currency to minor units of the quote
// currency. The product units * coef has the scale base.Scale() + r.Scale(),
// which is then rescaled to quote.Scale().
func (r ExchangeRate) conv(units *big.Int) *big.Int {
	v := new(big.Int).Mul(units, r.coef())
	return rescale(v, r.Base().Scale()+r.Scale(), r.Quote().Scale())
}

// WithFee returns an exchange rate with the same base and quote currencies
// and the rate increased by feeBps basis points, rounded to
// [DefaultRateScale] digits.
// See also function [DeriveFeeAdjustedRate].
//
// WithFee returns an error if:
//   - the fee is negative;
//   - the currencies are the same and the fee is not zero;
//   - the adjusted rate rounds to zero.
func (r ExchangeRate) WithFee(feeBps int64) (ExchangeRate, error) {
	s, err := DeriveFeeAdjustedRate(r.value, feeBps)
	if err != nil {
		return ExchangeRate{}, withOp(fmt.Sprintf("applying %v bps to %v", feeBps, r), err)
	}
	q, err := newExchRate(r.Base(), r.Quote(), s)
	if err != nil {
		return ExchangeRate{}, withOp(fmt.Sprintf("applying %v bps to %v", feeBps, r), err)
	}
	return q, nil
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, for example "USD/EUR 0.92".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().String() + "/" + r.Quote().String() + " " + r.value
}

// DeriveFeeAdjustedRate is like [DeriveFeeAdjustedRateScale] with
// the scale set to [DefaultRateScale].
func DeriveFeeAdjustedRate(baseRate string, feeBps int64) (string, error) {
	return DeriveFeeAdjustedRateScale(baseRate, feeBps, DefaultRateScale)
}

// DeriveFeeAdjustedRateScale returns the rate a payer effectively gets when
// a fee of feeBps basis points is applied to the market rate baseRate:
//
//	baseRate * (10000 + feeBps) / 10000
//
// The base rate is read with 12 digits after the decimal point (extra digits
// are truncated), the fee is applied with rounding half up at that scale,
// and the result is rounded half up once more to the requested scale.
// For example, "0.92" with 150 bps and scale 6 is "0.933800".
//
// DeriveFeeAdjustedRateScale returns an error if:
//   - the fee is negative;
//   - the scale is negative;
//   - the base rate is not a well-formed decimal;
//   - the base rate is zero, or below 10^-12 so that it truncates to zero.
func DeriveFeeAdjustedRateScale(baseRate string, feeBps int64, scale int) (string, error) {
	op := fmt.Sprintf("deriving rate from %q and %v bps", baseRate, feeBps)
	if feeBps < 0 {
		return "", newError(InvalidFeeBasisPoints, op, "fee must not be negative")
	}
	if scale < 0 {
		return "", newError(InvalidScale, op, fmt.Sprintf("scale %v is negative", scale))
	}
	v, err := toScaledInt(baseRate, feeScale)
	if err != nil {
		return "", withOp(op, err)
	}
	if v.Sign() == 0 {
		if exact, _ := toScaledInt(baseRate, decimalScale(baseRate)); exact.Sign() > 0 {
			return "", newError(InvalidRate, op, fmt.Sprintf("rate truncates to zero at %v digits", feeScale))
		}
		return "", newError(InvalidRate, op, "rate must be positive")
	}
	m := new(big.Int).Add(bpsDenominator, big.NewInt(feeBps))
	v.Mul(v, m)
	v = rescale(v, feeScale+bpsScale, feeScale)
	v = rescale(v, feeScale, scale)
	return formatScaled(v, scale), nil
}
