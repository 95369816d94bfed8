package fixedpoint

import "errors"

// Sentinel errors returned by the checked operations on Fix64 and Fix128.
// Match them with errors.Is; constructors may wrap them with extra detail.
var (
	// ErrOverflow is returned when a result does not fit the mantissa of
	// the type that would carry it.
	ErrOverflow = errors.New("fixedpoint: overflow")

	// ErrDivisionByZero is returned by the division operations when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("fixedpoint: division by zero")
)
