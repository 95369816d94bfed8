package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fix64 is a fixed-point decimal number holding 9 fractional digits in an
// int64 mantissa; it represents mantissa * 10**-9 exactly. The zero value
// is a ready-to-use zero.
//
// Every operation returns a new value; nothing is mutated in place. Sums
// and differences are checked, multiplication and division compute the
// exact result in 128 bits and round it in a caller-chosen direction, and
// overflow is always reported, never wrapped.
type Fix64 struct {
	bits int64
}

// Fix64FromRaw is the complement to Fix64.Raw(); it creates a Fix64
// directly from an int64 mantissa without scaling.
func Fix64FromRaw(bits int64) Fix64 {
	return Fix64{bits: bits}
}

// Fix64From64 converts a whole number of units into a fixed-point value,
// failing with ErrOverflow if the scaled value does not fit.
func Fix64From64(v int64) (Fix64, error) {
	p := I128From64(v).Mul(wideCoef64)
	if !p.IsInt64() {
		return Fix64{}, ErrOverflow
	}
	return Fix64{bits: p.AsInt64()}, nil
}

// Fix64FromString parses a plain decimal string: an optional sign, an
// integer part and up to 9 fractional digits. Exponent notation is not
// accepted. Values outside the representable range fail with ErrOverflow.
func Fix64FromString(s string) (Fix64, error) {
	neg, digits, fracLen, err := splitDecimal(s, Fix64Precision)
	if err != nil {
		return Fix64{}, err
	}
	mant := digits + strings.Repeat("0", Fix64Precision-fracLen)
	if neg {
		mant = "-" + mant
	}
	bits, err := strconv.ParseInt(mant, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Fix64{}, ErrOverflow
		}
		return Fix64{}, fmt.Errorf("fixedpoint: %q is not a fixed-point number", s)
	}
	return Fix64{bits: bits}, nil
}

// MustFix64FromString is like Fix64FromString but panics on error, for
// known-good literals.
func MustFix64FromString(s string) Fix64 {
	v, err := Fix64FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Fix64FromFloat64 converts a float to the nearest representable
// fixed-point value. NaN and the infinities are rejected; magnitudes
// outside the representable range fail with ErrOverflow.
func Fix64FromFloat64(f float64) (Fix64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fix64{}, fmt.Errorf("fixedpoint: cannot represent %v as a fixed-point value", f)
	}
	m := math.Round(f * Fix64Coef)
	if m < minInt64Float || m >= maxInt64Float {
		return Fix64{}, ErrOverflow
	}
	return Fix64{bits: int64(m)}, nil
}

// Fix64FromMantExp builds the value num * 10**exp. Exponents below -9
// would need fractional digits the type cannot hold and are rejected;
// results outside the representable range fail with ErrOverflow.
func Fix64FromMantExp(num int64, exp int32) (Fix64, error) {
	shift := int(exp) + Fix64Precision
	if shift < 0 {
		return Fix64{}, fmt.Errorf("fixedpoint: exponent %d needs more than %d fractional digits", exp, Fix64Precision)
	}
	if shift >= len(pow10x64) {
		return Fix64{}, ErrOverflow
	}
	p := I128From64(num).Mul(I128From64(pow10x64[shift]))
	if !p.IsInt64() {
		return Fix64{}, ErrOverflow
	}
	return Fix64{bits: p.AsInt64()}, nil
}

func (x Fix64) IsZero() bool { return x.bits == 0 }

func (x Fix64) Sign() int { return sign64(x.bits) }

// Raw returns the mantissa. See Fix64FromRaw() for the counterpart.
func (x Fix64) Raw() int64 { return x.bits }

// String formats x with the fractional digits it actually has, trailing
// zeros trimmed but always at least one: the value 10.042 formats as
// "10.042", zero as "0.0".
func (x Fix64) String() string {
	var sign string
	if x.bits < 0 {
		sign = "-"
	}
	q, r := x.bits/Fix64Coef, x.bits%Fix64Coef
	if q < 0 {
		q = -q
	}
	if r < 0 {
		r = -r
	}
	width := Fix64Precision
	for width > 1 && r%10 == 0 {
		r /= 10
		width--
	}
	return fmt.Sprintf("%s%d.%0*d", sign, q, width, r)
}

// Float64 returns the nearest float64 to x. The conversion is lossy once
// the mantissa exceeds 53 bits; nothing in the arithmetic itself depends
// on it.
func (x Fix64) Float64() float64 {
	return float64(x.bits) / Fix64Coef
}

// Cmp compares x to y and returns:
//
//	< 0 if x <  y
//	  0 if x == y
//	> 0 if x >  y
//
func (x Fix64) Cmp(y Fix64) int {
	if x.bits < y.bits {
		return -1
	} else if x.bits > y.bits {
		return 1
	}
	return 0
}

func (x Fix64) Equal(y Fix64) bool            { return x == y }
func (x Fix64) GreaterThan(y Fix64) bool      { return x.bits > y.bits }
func (x Fix64) GreaterOrEqualTo(y Fix64) bool { return x.bits >= y.bits }
func (x Fix64) LessThan(y Fix64) bool         { return x.bits < y.bits }
func (x Fix64) LessOrEqualTo(y Fix64) bool    { return x.bits <= y.bits }

// Neg returns -x, failing with ErrOverflow for the one value whose
// negation is not representable, MinFix64.
func (x Fix64) Neg() (Fix64, error) {
	if x.bits == minInt64 {
		return Fix64{}, ErrOverflow
	}
	return Fix64{bits: -x.bits}, nil
}

// Abs returns the absolute value of x. It shares Neg's failure at
// MinFix64.
func (x Fix64) Abs() (Fix64, error) {
	if x.bits == minInt64 {
		return Fix64{}, ErrOverflow
	}
	if x.bits < 0 {
		return Fix64{bits: -x.bits}, nil
	}
	return x, nil
}

// Add returns x+y, failing with ErrOverflow if the sum does not fit.
func (x Fix64) Add(y Fix64) (Fix64, error) {
	sum, ok := addInt64(x.bits, y.bits)
	if !ok {
		return Fix64{}, ErrOverflow
	}
	return Fix64{bits: sum}, nil
}

// Sub returns x-y, failing with ErrOverflow if the difference does not
// fit.
func (x Fix64) Sub(y Fix64) (Fix64, error) {
	d, ok := subInt64(x.bits, y.bits)
	if !ok {
		return Fix64{}, ErrOverflow
	}
	return Fix64{bits: d}, nil
}

// SaturatingAdd returns x+y, clamped to MaxFix64 or MinFix64 in the
// direction of the true sum when it does not fit.
func (x Fix64) SaturatingAdd(y Fix64) Fix64 {
	sum, ok := addInt64(x.bits, y.bits)
	if ok {
		return Fix64{bits: sum}
	}
	// Addition only overflows when both operands share a sign.
	if x.bits > 0 {
		return MaxFix64
	}
	return MinFix64
}

// SaturatingSub returns x-y, clamped to MaxFix64 or MinFix64 in the
// direction of the true difference when it does not fit.
func (x Fix64) SaturatingSub(y Fix64) Fix64 {
	d, ok := subInt64(x.bits, y.bits)
	if ok {
		return Fix64{bits: d}
	}
	if x.bits >= 0 {
		return MaxFix64
	}
	return MinFix64
}

// MulInt multiplies x by a plain integer. The scale is unchanged so the
// product is exact; it fails with ErrOverflow if the mantissa product
// does not fit.
func (x Fix64) MulInt(k int64) (Fix64, error) {
	p := I128From64(x.bits).Mul(I128From64(k))
	if !p.IsInt64() {
		return Fix64{}, ErrOverflow
	}
	return Fix64{bits: p.AsInt64()}, nil
}

// SaturatingMulInt is MulInt clamped to MaxFix64 or MinFix64 in the
// direction of the true product.
func (x Fix64) SaturatingMulInt(k int64) Fix64 {
	v, err := x.MulInt(k)
	if err != nil {
		if (x.bits < 0) == (k < 0) {
			return MaxFix64
		}
		return MinFix64
	}
	return v
}

// Mul multiplies two fixed-point values. The exact mantissa product is
// computed in 128 bits and scaled back down by the coefficient; when the
// dropped digits are nonzero the quotient is rounded in the direction
// given by mode. Mul is commutative: x.Mul(y, m) == y.Mul(x, m) for all
// inputs.
func (x Fix64) Mul(y Fix64, mode RoundMode) (Fix64, error) {
	p := I128From64(x.bits).Mul(I128From64(y.bits))
	bits, err := divRound64(p, wideCoef64, mode)
	if err != nil {
		return Fix64{}, err
	}
	return Fix64{bits: bits}, nil
}

// SaturatingMul is Mul clamped to MaxFix64 or MinFix64 in the direction
// of the true product.
func (x Fix64) SaturatingMul(y Fix64, mode RoundMode) Fix64 {
	v, err := x.Mul(y, mode)
	if err != nil {
		if (x.bits < 0) == (y.bits < 0) {
			return MaxFix64
		}
		return MinFix64
	}
	return v
}

// Div divides x by y. The numerator's mantissa is scaled up by the
// coefficient before the division so no fractional precision is lost on
// the way through; the quotient is rounded per mode. A zero y fails with
// ErrDivisionByZero.
func (x Fix64) Div(y Fix64, mode RoundMode) (Fix64, error) {
	if y.bits == 0 {
		return Fix64{}, ErrDivisionByZero
	}
	n := I128From64(x.bits).Mul(wideCoef64)
	bits, err := divRound64(n, I128From64(y.bits), mode)
	if err != nil {
		return Fix64{}, err
	}
	return Fix64{bits: bits}, nil
}

// DivInt divides x by a plain integer, rounding per mode. A zero k fails
// with ErrDivisionByZero.
func (x Fix64) DivInt(k int64, mode RoundMode) (Fix64, error) {
	bits, err := DivRound64(x.bits, k, mode)
	if err != nil {
		return Fix64{}, err
	}
	return Fix64{bits: bits}, nil
}

// Integral returns the whole-unit part of x as a plain integer, rounded
// toward negative infinity for Floor and toward positive infinity for
// Ceil.
func (x Fix64) Integral(mode RoundMode) int64 {
	q, r := x.bits/Fix64Coef, x.bits%Fix64Coef
	if r != 0 && mode.rounds(sign64(r)) {
		q += int64(mode)
	}
	return q
}

// RoundTowardsZeroBy rounds x toward zero to a multiple of unit: rounding
// 1234.56789 by 0.01 gives 1234.56. It is sign-symmetric; a zero unit is
// a division by zero and panics.
func (x Fix64) RoundTowardsZeroBy(unit Fix64) Fix64 {
	return Fix64{bits: x.bits - x.bits%unit.bits}
}

// NextPowerOfTen returns the smallest power of ten whose magnitude is at
// least the magnitude of x, keeping x's sign. Zero maps to the smallest
// representable positive value, 10**-9. If no representable power of ten
// is large enough the result is ErrOverflow.
func (x Fix64) NextPowerOfTen() (Fix64, error) {
	if x.bits < 0 {
		mag, err := x.Neg()
		if err != nil {
			return Fix64{}, err
		}
		pow, err := mag.NextPowerOfTen()
		if err != nil {
			return Fix64{}, err
		}
		return pow.Neg()
	}
	for _, p := range pow10x64 {
		if p >= x.bits {
			return Fix64{bits: p}, nil
		}
	}
	return Fix64{}, ErrOverflow
}

// RoundToInt64 rounds x to the nearest whole number of units, ties away
// from zero: 0.5 rounds to 1 and -0.5 to -1.
func (x Fix64) RoundToInt64() int64 {
	w := I128From64(x.bits)
	if x.bits < 0 {
		w = w.Sub(halfCoef64)
	} else {
		w = w.Add(halfCoef64)
	}
	q, _ := w.QuoRem(wideCoef64)
	return q.AsInt64()
}

// HalfSumFix64 returns the exact average of a and b. The sum is computed
// in 128 bits so no pair of operands can overflow it; halving is an
// arithmetic shift, which takes an odd mantissa sum toward negative
// infinity.
func HalfSumFix64(a, b Fix64) Fix64 {
	s := I128From64(a.bits).Add(I128From64(b.bits)).ashr1()
	return Fix64{bits: s.AsInt64()}
}

// DivRound64 divides two plain integers with the same rounding control as
// the fixed-point division: the truncated quotient is stepped one unit in
// the mode's direction when the remainder is nonzero and the exact
// quotient's sign matches the mode. MinInt64 divided by -1 fails with
// ErrOverflow.
func DivRound64(a, b int64, mode RoundMode) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == minInt64 && b == -1 {
		return 0, ErrOverflow
	}
	q := a / b
	if a%b != 0 && mode.rounds(sign64(a)*sign64(b)) {
		q += int64(mode)
	}
	return q, nil
}

// divRound64 is the narrowing half of the rounding pipeline: it divides n
// by d in 128-bit space, steps the truncated quotient per mode, and
// reports ErrOverflow if the result does not fit an int64 mantissa. The
// caller has already rejected a zero d.
func divRound64(n, d I128, mode RoundMode) (int64, error) {
	q, r := n.QuoRem(d)
	if !r.IsZero() && mode.rounds(n.Sign()*d.Sign()) {
		q = q.Add(I128From64(int64(mode)))
	}
	if !q.IsInt64() {
		return 0, ErrOverflow
	}
	return q.AsInt64(), nil
}
