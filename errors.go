package structarith

import (
	"errors"
	"strconv"
	"strings"
)

// Operation-time sentinel errors. Every failure returned by generated code
// matches exactly one of them under errors.Is.
var (
	// ErrOverflow is returned when a sum or product does not fit in its type.
	ErrOverflow = errors.New("structarith: arithmetic overflow")

	// ErrUnderflow is returned when a subtraction would go below zero.
	ErrUnderflow = errors.New("structarith: arithmetic underflow")

	// ErrDivisionByZero is returned when a divisor, scalar factor or
	// fraction denominator is zero.
	ErrDivisionByZero = errors.New("structarith: division by zero")
)

// OpError records the operation and the field (and array element) where a
// generated arithmetic method gave up.
type OpError struct {
	Op    string // generated operation, e.g. "add" or "mul_fraction"
	Field string // schema name of the failing field
	Index int    // array element index, -1 for scalar fields
	Err   error
}

// Error returns the error string.
func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString("structarith: ")
	b.WriteString(e.Op)
	if e.Field != "" {
		b.WriteString(" ")
		b.WriteString(e.Field)
		if e.Index >= 0 {
			b.WriteString("[")
			b.WriteString(strconv.Itoa(e.Index))
			b.WriteString("]")
		}
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(strings.TrimPrefix(e.Err.Error(), "structarith: "))
	}
	return b.String()
}

// Unwrap returns the underlying sentinel.
func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError returns a new OpError. Pass -1 as index for scalar fields.
func NewOpError(op, field string, index int, err error) *OpError {
	return &OpError{
		Op:    op,
		Field: field,
		Index: index,
		Err:   err,
	}
}

// IsOverflow reports whether err is, or wraps, ErrOverflow.
func IsOverflow(err error) bool {
	return err != nil && errors.Is(err, ErrOverflow)
}

// IsUnderflow reports whether err is, or wraps, ErrUnderflow.
func IsUnderflow(err error) bool {
	return err != nil && errors.Is(err, ErrUnderflow)
}

// IsDivisionByZero reports whether err is, or wraps, ErrDivisionByZero.
func IsDivisionByZero(err error) bool {
	return err != nil && errors.Is(err, ErrDivisionByZero)
}
