package fixedpoint

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal converts x to an arbitrary-precision decimal with the same
// value. The conversion is exact and never fails.
func (x Fix64) Decimal() decimal.Decimal {
	return decimal.New(x.bits, -Fix64Precision)
}

// Fix64FromDecimal converts an arbitrary-precision decimal. Values with
// more fractional digits than the type holds are rejected rather than
// silently rounded; values outside the representable range fail with
// ErrOverflow.
func Fix64FromDecimal(d decimal.Decimal) (Fix64, error) {
	scaled := d.Shift(Fix64Precision)
	if !scaled.IsInteger() {
		return Fix64{}, fmt.Errorf("fixedpoint: %s has more than %d digits after the decimal point", d, Fix64Precision)
	}
	mant := scaled.BigInt()
	if !mant.IsInt64() {
		return Fix64{}, ErrOverflow
	}
	return Fix64{bits: mant.Int64()}, nil
}

// Decimal converts x to an arbitrary-precision decimal with the same
// value. The conversion is exact and never fails.
func (x Fix128) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(x.bits.AsBigInt(), -Fix128Precision)
}

// Fix128FromDecimal converts an arbitrary-precision decimal under the
// same rules as Fix64FromDecimal.
func Fix128FromDecimal(d decimal.Decimal) (Fix128, error) {
	scaled := d.Shift(Fix128Precision)
	if !scaled.IsInteger() {
		return Fix128{}, fmt.Errorf("fixedpoint: %s has more than %d digits after the decimal point", d, Fix128Precision)
	}
	mant, accurate := I128FromBigInt(scaled.BigInt())
	if !accurate {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: mant}, nil
}
