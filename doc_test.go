package money_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	"github.com/tripsync/money"
)

// printShares prints the shares of an expense in major units of both currencies.
func printShares(shares []money.Share, rate money.ExchangeRate) {
	for _, s := range shares {
		src, err := money.FormatMinorUnits(s.SourceMinorUnits, rate.Base().Code())
		if err != nil {
			panic(err)
		}
		tgt, err := money.FormatMinorUnits(s.TargetMinorUnits, rate.Quote().Code())
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-6v %v %v %v %v\n", s.DebtorID, rate.Base(), src, rate.Quote(), tgt)
	}
}

// In this example, a dinner paid in US dollars is split among three friends
// who settle their debts in euros.
// Independent rounding of every share loses a cent against the converted
// total, while the reconciled split gives that cent to one of the debtors.
func Example_tripExpense() {
	dinner := money.MustParseAmount("USD", "100.00")
	rate := money.MustParseExchRate("USD", "EUR", "0.92")
	friends := []string{"alice", "bob", "carol"}

	shares, err := money.Split(dinner, friends, rate)
	if err != nil {
		panic(err)
	}
	printShares(shares, rate)

	total, err := rate.Conv(dinner)
	if err != nil {
		panic(err)
	}
	_, sum := money.Totals(shares)
	fmt.Printf("Shares: %v, total: %v\n", sum, total.MinorUnits())

	shares, err = money.SplitReconciled(dinner, friends, rate)
	if err != nil {
		panic(err)
	}
	printShares(shares, rate)

	// Output:
	// alice  USD 33.34 EUR 30.67
	// bob    USD 33.33 EUR 30.66
	// carol  USD 33.33 EUR 30.66
	// Shares: 9199, total: 9200
	// alice  USD 33.34 EUR 30.67
	// bob    USD 33.33 EUR 30.67
	// carol  USD 33.33 EUR 30.66
}

// In this example, a card issuer charges 150 basis points on top of the
// market rate, and the payer's share is converted at the adjusted rate.
func Example_feeAdjustedRate() {
	market := money.MustParseExchRate("USD", "EUR", "0.92")
	card, err := market.WithFee(150)
	if err != nil {
		panic(err)
	}
	share := money.MustParseAmount("USD", "100.00")

	atMarket, err := market.Conv(share)
	if err != nil {
		panic(err)
	}
	atCard, err := card.Conv(share)
	if err != nil {
		panic(err)
	}

	fmt.Println(market, atMarket)
	fmt.Println(card, atCard)
	// Output:
	// USD/EUR 0.92 EUR 92.00
	// USD/EUR 0.933800 EUR 93.38
}

func ExampleComputeSplit() {
	shares, err := money.ComputeSplit(1000, []string{"A", "B", "C"}, "USD", "JPY", "150")
	if err != nil {
		panic(err)
	}
	for _, s := range shares {
		fmt.Println(s.DebtorID, s.SourceMinorUnits, s.TargetMinorUnits)
	}
	// Output:
	// A 334 501
	// B 333 500
	// C 333 500
}

func ExampleComputeSplitReconciled() {
	shares, err := money.ComputeSplitReconciled(1000, []string{"A", "B", "C"}, "USD", "JPY", "150")
	if err != nil {
		panic(err)
	}
	for _, s := range shares {
		fmt.Println(s.DebtorID, s.SourceMinorUnits, s.TargetMinorUnits)
	}
	// Output:
	// A 334 501
	// B 333 500
	// C 333 499
}

func ExampleSplit() {
	total := money.MustParseAmount("USD", "10.01")
	rate := money.MustParseExchRate("USD", "EUR", "0.92")
	shares, err := money.Split(total, []string{"A", "B", "C"}, rate)
	if err != nil {
		panic(err)
	}
	for _, s := range shares {
		fmt.Println(s)
	}
	// Output:
	// {A 334 307}
	// {B 334 307}
	// {C 333 306}
}

func ExampleTotals() {
	shares := []money.Share{
		{DebtorID: "A", SourceMinorUnits: 334, TargetMinorUnits: 501},
		{DebtorID: "B", SourceMinorUnits: 333, TargetMinorUnits: 500},
	}
	fmt.Println(money.Totals(shares))
	// Output: 667 1001
}

func ExampleKindOf() {
	_, err := money.ComputeSplit(0, []string{"A"}, "USD", "EUR", "0.92")
	fmt.Println(err)
	fmt.Println(money.KindOf(err))
	fmt.Println(errors.Is(err, money.ErrNonPositiveAmount))
	fmt.Println(errors.Is(err, money.ErrEmptyDebtorList))
	// Output:
	// computing split: non-positive amount: total 0
	// non-positive amount
	// true
	// false
}

func ExampleDeriveFeeAdjustedRate() {
	fmt.Println(money.DeriveFeeAdjustedRate("0.92", 150))
	fmt.Println(money.DeriveFeeAdjustedRate("1.234567", 25))
	// Output:
	// 0.933800 <nil>
	// 1.237653 <nil>
}

func ExampleDeriveFeeAdjustedRateScale() {
	fmt.Println(money.DeriveFeeAdjustedRateScale("0.92", 150, 2))
	fmt.Println(money.DeriveFeeAdjustedRateScale("150", 50, 0))
	// Output:
	// 0.93 <nil>
	// 151 <nil>
}

func ExampleToScaledInt() {
	fmt.Println(money.ToScaledInt("12.3", 2))
	fmt.Println(money.ToScaledInt("12.345", 2))
	// Output:
	// 1230 <nil>
	// 1234 <nil>
}

func ExampleFromScaledInt() {
	fmt.Println(money.FromScaledInt(big.NewInt(1234567), 6, 2))
	fmt.Println(money.FromScaledInt(big.NewInt(1235), 2, 1))
	// Output:
	// 1.23 <nil>
	// 12.4 <nil>
}

func ExampleNewAmountFromMinorUnits() {
	fmt.Println(money.NewAmountFromMinorUnits("JPY", 1505))
	fmt.Println(money.NewAmountFromMinorUnits("OMR", 1505))
	// Output:
	// JPY 1505 <nil>
	// OMR 1.505 <nil>
}

func ExampleNewAmountFromDecimal() {
	d := decimal.MustParse("12.3")
	fmt.Println(money.NewAmountFromDecimal(money.USD, d))
	// Output: USD 12.30 <nil>
}

func ExampleParseAmount() {
	fmt.Println(money.ParseAmount("USD", "12.3"))
	// Output: USD 12.30 <nil>
}

func ExampleMustParseAmount() {
	fmt.Println(money.MustParseAmount("OMR", "0.5"))
	// Output: OMR 0.500
}

func ExampleParseMinorUnits() {
	fmt.Println(money.ParseMinorUnits("12.34", "USD"))
	fmt.Println(money.ParseMinorUnits("1234", "JPY"))
	// Output:
	// 1234 <nil>
	// 1234 <nil>
}

func ExampleFormatMinorUnits() {
	fmt.Println(money.FormatMinorUnits(1234, "USD"))
	fmt.Println(money.FormatMinorUnits(1234, "JPY"))
	fmt.Println(money.FormatMinorUnits(1234, "BHD"))
	// Output:
	// 12.34 <nil>
	// 1234 <nil>
	// 1.234 <nil>
}

func ExampleAmount_MinorUnits() {
	a := money.MustParseAmount("JPY", "1505")
	b := money.MustParseAmount("USD", "15.05")
	c := money.MustParseAmount("OMR", "15.05")
	fmt.Println(a.MinorUnits())
	fmt.Println(b.MinorUnits())
	fmt.Println(c.MinorUnits())
	// Output:
	// 1505
	// 1505
	// 15050
}

func ExampleAmount_Decimal() {
	a := money.MustParseAmount("USD", "12.3")
	fmt.Println(a.Decimal())
	// Output: 12.30
}

func ExampleAmount_IsZero() {
	a := money.MustParseAmount("USD", "0")
	b := money.MustParseAmount("USD", "0.01")
	fmt.Println(a.IsZero())
	fmt.Println(b.IsZero())
	// Output:
	// true
	// false
}

func ExampleAmount_SameCurr() {
	a := money.MustParseAmount("JPY", "23")
	b := money.MustParseAmount("USD", "5.67")
	c := money.MustParseAmount("USD", "1.23")
	fmt.Println(a.SameCurr(b))
	fmt.Println(b.SameCurr(c))
	// Output:
	// false
	// true
}

func ExampleAmount_String() {
	a := money.MustParseAmount("USD", "1234.5")
	fmt.Println(a.String())
	// Output: USD 1234.50
}

func ExampleParseCurr() {
	c, err := money.ParseCurr("USD")
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: USD
}

func ExampleMustParseCurr() {
	c := money.MustParseCurr("USD")
	fmt.Println(c)
	// Output: USD
}

func ExampleCurrency_Code() {
	fmt.Println(money.JPY.Code())
	fmt.Println(money.USD.Code())
	fmt.Println(money.OMR.Code())
	// Output:
	// JPY
	// USD
	// OMR
}

func ExampleCurrency_Num() {
	fmt.Println(money.JPY.Num())
	fmt.Println(money.USD.Num())
	fmt.Println(money.OMR.Num())
	// Output:
	// 392
	// 840
	// 512
}

func ExampleCurrency_Scale() {
	fmt.Println(money.JPY.Scale())
	fmt.Println(money.USD.Scale())
	fmt.Println(money.OMR.Scale())
	// Output:
	// 0
	// 2
	// 3
}

func ExampleCurrency_MarshalText() {
	b, err := money.USD.MarshalText()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: USD
}

func ExampleCurrency_UnmarshalText() {
	var c money.Currency
	if err := c.UnmarshalText([]byte("EUR")); err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: EUR
}

func ExampleNewExchRate() {
	fmt.Println(money.NewExchRate(money.USD, money.EUR, decimal.MustParse("0.92")))
	// Output: USD/EUR 0.92 <nil>
}

func ExampleParseExchRate() {
	fmt.Println(money.ParseExchRate("USD", "EUR", "0.920"))
	// Output: USD/EUR 0.920 <nil>
}

func ExampleMustParseExchRate() {
	fmt.Println(money.MustParseExchRate("OMR", "USD", "2.6006"))
	// Output: OMR/USD 2.6006
}

func ExampleExchangeRate_Conv() {
	r := money.MustParseExchRate("USD", "JPY", "150.5")
	a := money.MustParseAmount("USD", "10.00")
	fmt.Println(r.Conv(a))
	// Output: JPY 1505 <nil>
}

func ExampleExchangeRate_WithFee() {
	r := money.MustParseExchRate("USD", "EUR", "0.92")
	fmt.Println(r.WithFee(150))
	// Output: USD/EUR 0.933800 <nil>
}

func ExampleExchangeRate_Decimal() {
	r := money.MustParseExchRate("USD", "EUR", "0.920")
	fmt.Println(r.Decimal())
	// Output: 0.920 <nil>
}

func ExampleExchangeRate_Scale() {
	r := money.MustParseExchRate("USD", "EUR", "0.92")
	q := money.MustParseExchRate("USD", "JPY", "150")
	fmt.Println(r.Scale())
	fmt.Println(q.Scale())
	// Output:
	// 2
	// 0
}

func ExampleExchangeRate_IsOne() {
	r := money.MustParseExchRate("USD", "USD", "1.00")
	q := money.MustParseExchRate("USD", "EUR", "0.92")
	fmt.Println(r.IsOne())
	fmt.Println(q.IsOne())
	// Output:
	// true
	// false
}

func ExampleExchangeRate_String() {
	r := money.MustParseExchRate("USD", "EUR", "0.92")
	fmt.Println(r.Base(), r.Quote(), r)
	// Output: USD EUR USD/EUR 0.92
}
