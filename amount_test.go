package money

import (
	"math"
	"testing"
	"unsafe"

	"github.com/govalues/decimal"
)

func TestAmount_ZeroValue(t *testing.T) {
	got := Amount{}
	if got.Curr() != XXX {
		t.Errorf("Amount{}.Curr() = %v, want %v", got.Curr(), XXX)
	}
	if !got.IsZero() {
		t.Errorf("Amount{}.IsZero() = %v, want %v", got.IsZero(), true)
	}
	if got.String() != "XXX 0" {
		t.Errorf("Amount{}.String() = %q, want %q", got.String(), "XXX 0")
	}
}

func TestAmount_Sizeof(t *testing.T) {
	a := Amount{}
	got := unsafe.Sizeof(a)
	want := uintptr(16)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", a, got, want)
	}
}

func TestNewAmountFromMinorUnits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr  string
			units int64
			want  string
		}{
			{"JPY", 0, "JPY 0"},
			{"JPY", 1, "JPY 1"},
			{"USD", 1, "USD 0.01"},
			{"USD", 1234, "USD 12.34"},
			{"OMR", 1, "OMR 0.001"},
			{"USD", math.MaxInt64, "USD 92233720368547758.07"},
		}
		for _, tt := range tests {
			got, err := NewAmountFromMinorUnits(tt.curr, tt.units)
			if err != nil {
				t.Errorf("NewAmountFromMinorUnits(%q, %v) failed: %v", tt.curr, tt.units, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewAmountFromMinorUnits(%q, %v) = %q, want %q", tt.curr, tt.units, got, tt.want)
			}
			if got.MinorUnits() != tt.units {
				t.Errorf("%q.MinorUnits() = %v, want %v", got, got.MinorUnits(), tt.units)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			curr  string
			units int64
			want  ErrorKind
		}{
			"currency": {"ABC", 1, InvalidCurrency},
			"negative": {"USD", -1, NonPositiveAmount},
		}
		for name, tt := range tests {
			_, err := NewAmountFromMinorUnits(tt.curr, tt.units)
			if got := KindOf(err); got != tt.want {
				t.Errorf("%v: NewAmountFromMinorUnits(%q, %v) = %v, want %v", name, tt.curr, tt.units, err, tt.want)
			}
		}
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			want         int64
		}{
			{"USD", "0", 0},
			{"USD", "12", 1200},
			{"USD", "12.3", 1230},
			{"USD", "12.34", 1234},
			{"USD", "10.000", 1000},
			{"USD", "0.01", 1},
			{"JPY", "1234", 1234},
			{"JPY", "1234.0", 1234},
			{"OMR", "0.005", 5},
			{"OMR", "1.5", 1500},
			{"USD", "92233720368547758.07", math.MaxInt64},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.curr, tt.amount)
			if err != nil {
				t.Errorf("ParseAmount(%q, %q) failed: %v", tt.curr, tt.amount, err)
				continue
			}
			if got.MinorUnits() != tt.want {
				t.Errorf("ParseAmount(%q, %q).MinorUnits() = %v, want %v", tt.curr, tt.amount, got.MinorUnits(), tt.want)
			}
			if got.Curr().Code() != tt.curr {
				t.Errorf("ParseAmount(%q, %q).Curr() = %v, want %v", tt.curr, tt.amount, got.Curr(), tt.curr)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			curr, amount string
			want         ErrorKind
		}{
			"currency 1":  {"ABC", "1", InvalidCurrency},
			"currency 2":  {"usd", "1", InvalidCurrency},
			"empty":       {"USD", "", InvalidDecimalFormat},
			"negative":    {"USD", "-1", InvalidDecimalFormat},
			"exponent":    {"USD", "1e2", InvalidDecimalFormat},
			"precision 1": {"USD", "10.005", InvalidDecimalFormat},
			"precision 2": {"JPY", "1.5", InvalidDecimalFormat},
			"precision 3": {"OMR", "0.0001", InvalidDecimalFormat},
			"overflow":    {"USD", "92233720368547758.08", AmountOverflow},
		}
		for name, tt := range tests {
			_, err := ParseAmount(tt.curr, tt.amount)
			if got := KindOf(err); got != tt.want {
				t.Errorf("%v: ParseAmount(%q, %q) = %v, want %v", name, tt.curr, tt.amount, err, tt.want)
			}
		}
	})
}

func TestMustParseAmount(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseAmount(\"USD\", \"0.001\") did not panic")
			}
		}()
		MustParseAmount("USD", "0.001")
	})
}

func TestParseMinorUnits(t *testing.T) {
	tests := []struct {
		amount, curr string
		want         int64
	}{
		{"12.34", "USD", 1234},
		{"1234", "JPY", 1234},
		{"0.5", "BHD", 500},
	}
	for _, tt := range tests {
		got, err := ParseMinorUnits(tt.amount, tt.curr)
		if err != nil {
			t.Errorf("ParseMinorUnits(%q, %q) failed: %v", tt.amount, tt.curr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMinorUnits(%q, %q) = %v, want %v", tt.amount, tt.curr, got, tt.want)
		}
	}

	if _, err := ParseMinorUnits("1.001", "USD"); KindOf(err) != InvalidDecimalFormat {
		t.Errorf("ParseMinorUnits(\"1.001\", \"USD\") = %v, want %v", err, InvalidDecimalFormat)
	}
}

func TestFormatMinorUnits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units int64
			curr  string
			want  string
		}{
			{0, "USD", "0.00"},
			{7, "USD", "0.07"},
			{1234, "USD", "12.34"},
			{1234, "JPY", "1234"},
			{5, "OMR", "0.005"},
			{-150, "USD", "-1.50"},
			{math.MaxInt64, "JPY", "9223372036854775807"},
		}
		for _, tt := range tests {
			got, err := FormatMinorUnits(tt.units, tt.curr)
			if err != nil {
				t.Errorf("FormatMinorUnits(%v, %q) failed: %v", tt.units, tt.curr, err)
				continue
			}
			if got != tt.want {
				t.Errorf("FormatMinorUnits(%v, %q) = %q, want %q", tt.units, tt.curr, got, tt.want)
			}
			if tt.units < 0 {
				continue
			}
			back, err := ParseMinorUnits(got, tt.curr)
			if err != nil || back != tt.units {
				t.Errorf("ParseMinorUnits(%q, %q) = %v, %v, want %v", got, tt.curr, back, err, tt.units)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := FormatMinorUnits(1, "ABC")
		if KindOf(err) != InvalidCurrency {
			t.Errorf("FormatMinorUnits(1, \"ABC\") = %v, want %v", err, InvalidCurrency)
		}
	})
}

func TestNewAmountFromDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr Currency
			d    string
			want int64
		}{
			{USD, "12", 1200},
			{USD, "12.3", 1230},
			{USD, "12.340", 1234},
			{JPY, "5", 5},
			{JPY, "5.000", 5},
			{OMR, "0.005", 5},
		}
		for _, tt := range tests {
			d := decimal.MustParse(tt.d)
			got, err := NewAmountFromDecimal(tt.curr, d)
			if err != nil {
				t.Errorf("NewAmountFromDecimal(%v, %v) failed: %v", tt.curr, d, err)
				continue
			}
			if got.MinorUnits() != tt.want || got.Curr() != tt.curr {
				t.Errorf("NewAmountFromDecimal(%v, %v) = %v, want %v minor units", tt.curr, d, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			curr Currency
			d    string
			want ErrorKind
		}{
			"negative":  {USD, "-1", NonPositiveAmount},
			"precision": {USD, "12.345", InvalidDecimalFormat},
			"overflow":  {USD, "9999999999999999999", AmountOverflow},
		}
		for name, tt := range tests {
			d := decimal.MustParse(tt.d)
			_, err := NewAmountFromDecimal(tt.curr, d)
			if got := KindOf(err); got != tt.want {
				t.Errorf("%v: NewAmountFromDecimal(%v, %v) = %v, want %v", name, tt.curr, d, err, tt.want)
			}
		}
	})
}

func TestAmount_Decimal(t *testing.T) {
	tests := []struct {
		curr, amount, want string
	}{
		{"USD", "12.3", "12.30"},
		{"USD", "0", "0.00"},
		{"JPY", "1234", "1234"},
		{"OMR", "0.005", "0.005"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.curr, tt.amount)
		got := a.Decimal()
		if got.String() != tt.want {
			t.Errorf("%q.Decimal() = %v, want %v", a, got, tt.want)
		}
		back, err := NewAmountFromDecimal(a.Curr(), got)
		if err != nil {
			t.Errorf("NewAmountFromDecimal(%v, %v) failed: %v", a.Curr(), got, err)
			continue
		}
		if back != a {
			t.Errorf("NewAmountFromDecimal(%v, %v) = %q, want %q", a.Curr(), got, back, a)
		}
	}
}

func TestAmount_SameCurr(t *testing.T) {
	a := MustParseAmount("USD", "1")
	tests := []struct {
		b    Amount
		want bool
	}{
		{MustParseAmount("USD", "2"), true},
		{MustParseAmount("EUR", "1"), false},
	}
	for _, tt := range tests {
		if got := a.SameCurr(tt.b); got != tt.want {
			t.Errorf("%q.SameCurr(%q) = %v, want %v", a, tt.b, got, tt.want)
		}
	}
}
