package money

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// pow10 returns 10^n as a new big.Int.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// ToScaledInt converts a decimal string to an integer equal to value * 10^scale.
// The input must match the pattern
//
//	digits(.digits)?
//
// Signs, exponents, thousands separators, whitespace, and a decimal point
// without digits on both sides are rejected.
// If the string has more than scale fractional digits, the excess digits are
// truncated; if it has fewer, it is zero-padded.
// See also [FromScaledInt].
//
// ToScaledInt returns an error if:
//   - the string is not a well-formed non-negative decimal;
//   - the scale is negative.
func ToScaledInt(s string, scale int) (*big.Int, error) {
	v, err := toScaledInt(s, scale)
	if err != nil {
		return nil, withOp(fmt.Sprintf("parsing %q", s), err)
	}
	return v, nil
}

func toScaledInt(s string, scale int) (*big.Int, error) {
	if scale < 0 {
		return nil, newError(InvalidScale, "", fmt.Sprintf("scale %v is negative", scale))
	}
	whole, frac, err := splitDecimal(s)
	if err != nil {
		return nil, err
	}
	switch {
	case len(frac) > scale:
		frac = frac[:scale]
	case len(frac) < scale:
		frac += strings.Repeat("0", scale-len(frac))
	}
	v, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, newError(InvalidDecimalFormat, "", "not a number")
	}
	return v, nil
}

// splitDecimal validates s against digits(.digits)? and returns
// the integer and fractional digit strings.
func splitDecimal(s string) (whole, frac string, err error) {
	if s == "" {
		return "", "", newError(InvalidDecimalFormat, "", "empty string")
	}
	whole, frac, hasPoint := strings.Cut(s, ".")
	if whole == "" {
		return "", "", newError(InvalidDecimalFormat, "", "missing integer digits")
	}
	if hasPoint && frac == "" {
		return "", "", newError(InvalidDecimalFormat, "", "missing fractional digits")
	}
	if !isDigits(whole) || !isDigits(frac) {
		return "", "", newError(InvalidDecimalFormat, "", "unexpected character")
	}
	return whole, frac, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FromScaledInt re-expresses an integer holding a value at currentScale
// as a decimal string with exactly targetScale digits after the decimal point.
// When targetScale is less than currentScale, the value is rounded using
// [rounding half up] on its magnitude.
// When targetScale is 0, the result has no decimal point.
// See also [ToScaledInt].
//
// FromScaledInt returns an error if either scale is negative.
//
// [rounding half up]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_up
func FromScaledInt(v *big.Int, currentScale, targetScale int) (string, error) {
	if currentScale < 0 || targetScale < 0 {
		return "", newError(InvalidScale, fmt.Sprintf("rescaling %v", v), fmt.Sprintf("scales %v and %v must not be negative", currentScale, targetScale))
	}
	return formatScaled(rescale(v, currentScale, targetScale), targetScale), nil
}

// rescale returns v, a value at scale from, expressed at scale to.
// Down-scaling adds half the divisor to the magnitude before the integer
// division; this is the only rounding performed anywhere in the package.
// Both scales must be non-negative.
func rescale(v *big.Int, from, to int) *big.Int {
	switch {
	case to > from:
		return new(big.Int).Mul(v, pow10(to-from))
	case to < from:
		div := pow10(from - to)
		half := new(big.Int).Rsh(div, 1)
		q := new(big.Int).Abs(v)
		q.Add(q, half)
		q.Quo(q, div)
		if v.Sign() < 0 {
			q.Neg(q)
		}
		return q
	default:
		return new(big.Int).Set(v)
	}
}

// formatScaled renders v, a value at the given scale, as "int.frac".
func formatScaled(v *big.Int, scale int) string {
	digits := new(big.Int).Abs(v).String()
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	var b strings.Builder
	if v.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(digits[:len(digits)-scale])
	if scale > 0 {
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-scale:])
	}
	return b.String()
}

// decimalScale returns the number of fractional digits written in s.
// s must already be validated by splitDecimal.
func decimalScale(s string) int {
	_, frac, _ := strings.Cut(s, ".")
	return len(frac)
}
