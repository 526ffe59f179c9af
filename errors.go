package money

import (
	"errors"
	"strings"
)

// ErrorKind classifies the validation failures returned by this package.
// All kinds are deterministic functions of the input: retrying a call with
// the same arguments always fails with the same kind.
type ErrorKind uint8

const (
	Unknown ErrorKind = iota
	InvalidDecimalFormat
	NonPositiveAmount
	EmptyDebtorList
	InvalidRate
	InvalidFeeBasisPoints
	InvalidCurrency
	InvalidScale
	DuplicateDebtor
	AmountOverflow
)

var kindText = [...]string{
	Unknown:               "unknown error",
	InvalidDecimalFormat:  "invalid decimal format",
	NonPositiveAmount:     "non-positive amount",
	EmptyDebtorList:       "empty debtor list",
	InvalidRate:           "invalid exchange rate",
	InvalidFeeBasisPoints: "invalid fee basis points",
	InvalidCurrency:       "invalid currency",
	InvalidScale:          "invalid scale",
	DuplicateDebtor:       "duplicate debtor",
	AmountOverflow:        "amount overflow",
}

// String returns a human-readable description of the kind.
func (k ErrorKind) String() string {
	if int(k) < len(kindText) {
		return kindText[k]
	}
	return kindText[Unknown]
}

// Error is the error type returned by every fallible function of the package.
// Callers should branch on Kind, using [KindOf] or [errors.Is] with one of
// the Err* sentinels, rather than on the message text.
type Error struct {
	Kind ErrorKind
	Op   string // operation being performed, e.g. "parsing rate"
	Msg  string // optional detail
}

// Error implements the error interface.
// The message has the form "op: kind: detail".
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same kind.
// This makes errors.Is(err, ErrEmptyDebtorList) work for any operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidDecimalFormat  = &Error{Kind: InvalidDecimalFormat}
	ErrNonPositiveAmount     = &Error{Kind: NonPositiveAmount}
	ErrEmptyDebtorList       = &Error{Kind: EmptyDebtorList}
	ErrInvalidRate           = &Error{Kind: InvalidRate}
	ErrInvalidFeeBasisPoints = &Error{Kind: InvalidFeeBasisPoints}
	ErrInvalidCurrency       = &Error{Kind: InvalidCurrency}
	ErrInvalidScale          = &Error{Kind: InvalidScale}
	ErrDuplicateDebtor       = &Error{Kind: DuplicateDebtor}
	ErrAmountOverflow        = &Error{Kind: AmountOverflow}
)

// KindOf returns the kind of the first *Error in err's chain,
// or [Unknown] if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func newError(kind ErrorKind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// withOp returns err with its operation prefixed by op.
// Errors of other types are returned unchanged.
func withOp(op string, err error) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	c := *e
	if c.Op == "" {
		c.Op = op
	} else {
		c.Op = op + ": " + c.Op
	}
	return &c
}
