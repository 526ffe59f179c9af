package money

import (
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
)

// Amount type represents a non-negative monetary amount as an integer count
// of minor units (e.g. cents) of its currency.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency // ISO 4217 currency
	units int64    // minor units, never negative
}

// newAmountUnsafe creates a new amount without checking the sign.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, units int64) Amount {
	return Amount{curr: c, units: units}
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if:
//   - the currency code is not valid;
//   - the number of minor units is negative.
func NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, withOp("parsing currency", err)
	}
	if units < 0 {
		return Amount{}, newError(NonPositiveAmount, "converting minor units", fmt.Sprintf("%v is negative", units))
	}
	return newAmountUnsafe(c, units), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// The amount must match the pattern digits(.digits)?.
// Digits beyond the scale of the currency are accepted only if they are zeros,
// so "10.000" is a valid USD amount but "10.005" is not.
// See also constructors [ParseCurr] and [ParseMinorUnits].
//
// ParseAmount returns an error if:
//   - the currency code is not valid;
//   - the amount is not a well-formed non-negative decimal;
//   - the amount has non-zero digits beyond the scale of the currency;
//   - the number of minor units does not fit into an int64.
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, withOp("parsing currency", err)
	}
	units, err := parseMinorUnits(amount, c.Scale())
	if err != nil {
		return Amount{}, withOp(fmt.Sprintf("parsing amount %q", amount), err)
	}
	return newAmountUnsafe(c, units), nil
}

func parseMinorUnits(amount string, scale int) (int64, error) {
	_, frac, err := splitDecimal(amount)
	if err != nil {
		return 0, err
	}
	for i := scale; i < len(frac); i++ {
		if frac[i] != '0' {
			return 0, newError(InvalidDecimalFormat, "", fmt.Sprintf("more than %v fractional digit(s)", scale))
		}
	}
	v, err := toScaledInt(amount, scale)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, newError(AmountOverflow, "", fmt.Sprintf("%v minor units do not fit into int64", v))
	}
	return v.Int64(), nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// ParseMinorUnits converts a decimal string to an integer count of minor units
// of the currency, for example "12.34" USD to 1234 and "1234" JPY to 1234.
// It follows the rules of [ParseAmount].
func ParseMinorUnits(amount, curr string) (int64, error) {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		return 0, err
	}
	return a.MinorUnits(), nil
}

// FormatMinorUnits converts an integer count of minor units of the currency
// to a decimal string with exactly as many fractional digits as the scale of
// the currency, for example 1234 USD to "12.34" and 5 OMR to "0.005".
//
// FormatMinorUnits returns an error if the currency code is not valid.
func FormatMinorUnits(units int64, curr string) (string, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return "", withOp("formatting minor units", err)
	}
	return formatScaled(big.NewInt(units), c.Scale()), nil
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// Trailing zeros beyond the scale of the currency are dropped.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if:
//   - the decimal is negative;
//   - the decimal has non-zero digits beyond the scale of the currency;
//   - the number of minor units does not fit into an int64.
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	op := fmt.Sprintf("converting %v %v", curr, amount)
	if amount.IsNeg() {
		return Amount{}, newError(NonPositiveAmount, op, "negative decimal")
	}
	d := amount.Trim(curr.Scale())
	if d.Scale() > curr.Scale() {
		return Amount{}, newError(InvalidDecimalFormat, op, fmt.Sprintf("more than %v fractional digit(s)", curr.Scale()))
	}
	d = d.Pad(curr.Scale())
	if d.Scale() < curr.Scale() {
		return Amount{}, newError(AmountOverflow, op, "padding amount")
	}
	coef := d.Coef()
	if coef > math.MaxInt64 {
		return Amount{}, newError(AmountOverflow, op, "minor units do not fit into int64")
	}
	return newAmountUnsafe(curr, int64(coef)), nil
}

// MinorUnits returns the amount in minor units of currency
// (e.g. cents, pennies, fens).
// See also constructor [NewAmountFromMinorUnits].
func (a Amount) MinorUnits() int64 {
	return a.units
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// IsZero returns:
//
//	true  if a == 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.units == 0
}

// Decimal returns the value of the amount as a decimal with the scale of
// its currency, for example 1234 USD minor units as 12.34.
// See also constructor [NewAmountFromDecimal].
func (a Amount) Decimal() decimal.Decimal {
	d, err := decimal.New(a.units, a.Curr().Scale())
	if err != nil {
		panic(fmt.Sprintf("decimal.New(%v, %v) failed: %v", a.units, a.Curr().Scale(), err))
	}
	return d
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, for example "USD 12.34".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + formatScaled(big.NewInt(a.units), a.Curr().Scale())
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}
