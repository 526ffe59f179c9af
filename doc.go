/*
Package money implements currency-precise splitting of shared expenses and
their conversion between currencies.
All arithmetic is exact: amounts are kept as integer minor units
(for example, cents), rates are kept as the decimal strings they were
written with, and intermediate products are computed with [math/big].

# Features

  - Equal splitting of an expense among an ordered list of debtors
  - Conversion of every share to a target currency using a locked rate
  - Fee-adjusted rates with two-stage rounding half up
  - Exact conversion between decimal strings and scaled integers, with
    documented truncation of excess fractional digits
  - Interoperability with the [decimal] package

# Representation

An [Amount] is a number of minor units of a [Currency].
A Currency is an index into generated tables holding the ISO 4217 code,
numeric code and scale (the exponent of its minor unit: 0 for JPY,
2 for USD, 3 for OMR) of every supported currency.
An [ExchangeRate] is a positive decimal string together with its base and
quote currencies.
Decimal strings always match the pattern digits(.digits)? with no sign,
exponent or grouping.

# Splitting

[Split] gives every debtor total / n minor units of the source currency and
gives the remaining total mod n units one each to the first debtors, in the
order supplied by the caller.
The source shares always sum up to the total.

Every source share is then converted on its own:

	target = round_half_up(source * rate)

where the product is computed at the combined scale of the base currency and
the rate, and rounded to the scale of the quote currency.
Because each share is rounded independently, the target shares may differ
from the converted total by up to n - 1 minor units.
[SplitReconciled] distributes the target currency with the largest
remainder method instead, so that the target shares sum up exactly to the
converted total.

[ComputeSplit] and [ComputeSplitReconciled] accept plain strings and
integers and are intended for callers at the edge of a system.

# Rounding

All rounding in this package is half up on the magnitude: a discarded
fraction of exactly one half rounds away from zero.
[DeriveFeeAdjustedRate] reads the market rate with 12 digits after the
decimal point (extra digits are truncated), applies the fee rounding half up
at that scale, and rounds half up once more to the output scale.

# Errors

Every fallible function returns an [*Error] with one of the kinds
[InvalidDecimalFormat], [NonPositiveAmount], [EmptyDebtorList], [InvalidRate],
[InvalidFeeBasisPoints], [InvalidCurrency], [InvalidScale], [DuplicateDebtor]
or [AmountOverflow].
Use [KindOf] or [errors.Is] with the Err* variables to branch on the kind.
Errors are deterministic: retrying a call with the same arguments fails the
same way.
*/
package money
