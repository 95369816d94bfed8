package fixedpoint

import (
	"fmt"
	"math"
	"strings"
)

// Fix128 is a fixed-point decimal number holding 18 fractional digits in
// an I128 mantissa; it represents mantissa * 10**-18 exactly. The zero
// value is a ready-to-use zero.
//
// Fix128 follows the same contract as Fix64: checked sums and
// differences, exact multiply and divide staged in 256 bits with
// caller-chosen rounding, overflow reported rather than wrapped.
type Fix128 struct {
	bits I128
}

// Fix128FromRaw is the complement to Fix128.Raw(); it creates a Fix128
// directly from an I128 mantissa without scaling.
func Fix128FromRaw(bits I128) Fix128 {
	return Fix128{bits: bits}
}

// Fix128From64 converts a whole number of units into a fixed-point value.
// The scaled mantissa of any int64 fits with room to spare, so there is
// no error to report.
func Fix128From64(v int64) Fix128 {
	return Fix128{bits: I128From64(v).Mul(i128Coef)}
}

// Fix128From128 converts a whole number of units held in an I128, failing
// with ErrOverflow if the scaled value does not fit.
func Fix128From128(v I128) (Fix128, error) {
	p := I256From128(v).Mul(wideCoef128)
	if !p.IsI128() {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: p.AsI128()}, nil
}

// Fix128FromString parses a plain decimal string: an optional sign, an
// integer part and up to 18 fractional digits. Exponent notation is not
// accepted. Values outside the representable range fail with ErrOverflow.
func Fix128FromString(s string) (Fix128, error) {
	neg, digits, fracLen, err := splitDecimal(s, Fix128Precision)
	if err != nil {
		return Fix128{}, err
	}
	mant := digits + strings.Repeat("0", Fix128Precision-fracLen)
	if neg {
		mant = "-" + mant
	}
	bits, accurate, err := I128FromString(mant)
	if err != nil {
		return Fix128{}, fmt.Errorf("fixedpoint: %q is not a fixed-point number", s)
	}
	if !accurate {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: bits}, nil
}

// MustFix128FromString is like Fix128FromString but panics on error, for
// known-good literals.
func MustFix128FromString(s string) Fix128 {
	v, err := Fix128FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Fix128FromFloat64 converts a float to the nearest representable
// fixed-point value. NaN and the infinities are rejected; magnitudes
// outside the representable range fail with ErrOverflow.
func Fix128FromFloat64(f float64) (Fix128, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fix128{}, fmt.Errorf("fixedpoint: cannot represent %v as a fixed-point value", f)
	}
	m, inRange := I128FromFloat64(math.Round(f * Fix128Coef))
	if !inRange {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: m}, nil
}

// Fix128FromMantExp builds the value num * 10**exp. Exponents below -18
// would need fractional digits the type cannot hold and are rejected;
// results outside the representable range fail with ErrOverflow.
func Fix128FromMantExp(num I128, exp int32) (Fix128, error) {
	shift := int(exp) + Fix128Precision
	if shift < 0 {
		return Fix128{}, fmt.Errorf("fixedpoint: exponent %d needs more than %d fractional digits", exp, Fix128Precision)
	}
	if shift >= len(pow10x128) {
		return Fix128{}, ErrOverflow
	}
	p := I256From128(num).Mul(I256From128(pow10x128[shift]))
	if !p.IsI128() {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: p.AsI128()}, nil
}

func (x Fix128) IsZero() bool { return x.bits.IsZero() }

func (x Fix128) Sign() int { return x.bits.Sign() }

// Raw returns the mantissa. See Fix128FromRaw() for the counterpart.
func (x Fix128) Raw() I128 { return x.bits }

// String formats x with the fractional digits it actually has, trailing
// zeros trimmed but always at least one, the same way Fix64 formats.
func (x Fix128) String() string {
	var sign string
	if x.bits.Sign() < 0 {
		sign = "-"
	}
	q, r := x.bits.QuoRem(i128Coef)
	rv := r.AsInt64() // |r| < the coefficient, so this cannot truncate
	if rv < 0 {
		rv = -rv
	}
	width := Fix128Precision
	for width > 1 && rv%10 == 0 {
		rv /= 10
		width--
	}
	return fmt.Sprintf("%s%s.%0*d", sign, q.Abs().String(), width, rv)
}

// Float64 returns the nearest float64 to x. Lossy; display and interop
// only.
func (x Fix128) Float64() float64 {
	return x.bits.AsFloat64() / Fix128Coef
}

// Cmp compares x to y and returns:
//
//	< 0 if x <  y
//	  0 if x == y
//	> 0 if x >  y
//
func (x Fix128) Cmp(y Fix128) int { return x.bits.Cmp(y.bits) }

func (x Fix128) Equal(y Fix128) bool            { return x == y }
func (x Fix128) GreaterThan(y Fix128) bool      { return x.bits.GreaterThan(y.bits) }
func (x Fix128) GreaterOrEqualTo(y Fix128) bool { return x.bits.GreaterOrEqualTo(y.bits) }
func (x Fix128) LessThan(y Fix128) bool         { return x.bits.LessThan(y.bits) }
func (x Fix128) LessOrEqualTo(y Fix128) bool    { return x.bits.LessOrEqualTo(y.bits) }

// Neg returns -x, failing with ErrOverflow for the one value whose
// negation is not representable, MinFix128.
func (x Fix128) Neg() (Fix128, error) {
	if x.bits == MinI128 {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: x.bits.Neg()}, nil
}

// Abs returns the absolute value of x. It shares Neg's failure at
// MinFix128.
func (x Fix128) Abs() (Fix128, error) {
	if x.bits == MinI128 {
		return Fix128{}, ErrOverflow
	}
	if x.bits.Sign() < 0 {
		return Fix128{bits: x.bits.Neg()}, nil
	}
	return x, nil
}

// Add returns x+y, failing with ErrOverflow if the sum does not fit.
func (x Fix128) Add(y Fix128) (Fix128, error) {
	sum, ok := addI128(x.bits, y.bits)
	if !ok {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: sum}, nil
}

// Sub returns x-y, failing with ErrOverflow if the difference does not
// fit.
func (x Fix128) Sub(y Fix128) (Fix128, error) {
	d, ok := subI128(x.bits, y.bits)
	if !ok {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: d}, nil
}

// SaturatingAdd returns x+y, clamped to MaxFix128 or MinFix128 in the
// direction of the true sum when it does not fit.
func (x Fix128) SaturatingAdd(y Fix128) Fix128 {
	sum, ok := addI128(x.bits, y.bits)
	if ok {
		return Fix128{bits: sum}
	}
	if x.bits.Sign() > 0 {
		return MaxFix128
	}
	return MinFix128
}

// SaturatingSub returns x-y, clamped to MaxFix128 or MinFix128 in the
// direction of the true difference when it does not fit.
func (x Fix128) SaturatingSub(y Fix128) Fix128 {
	d, ok := subI128(x.bits, y.bits)
	if ok {
		return Fix128{bits: d}
	}
	if x.bits.Sign() >= 0 {
		return MaxFix128
	}
	return MinFix128
}

// MulInt multiplies x by a plain integer; the product is exact. Fails
// with ErrOverflow if the mantissa product does not fit.
func (x Fix128) MulInt(k I128) (Fix128, error) {
	p := I256From128(x.bits).Mul(I256From128(k))
	if !p.IsI128() {
		return Fix128{}, ErrOverflow
	}
	return Fix128{bits: p.AsI128()}, nil
}

// SaturatingMulInt is MulInt clamped to MaxFix128 or MinFix128 in the
// direction of the true product.
func (x Fix128) SaturatingMulInt(k I128) Fix128 {
	v, err := x.MulInt(k)
	if err != nil {
		if (x.bits.Sign() < 0) == (k.Sign() < 0) {
			return MaxFix128
		}
		return MinFix128
	}
	return v
}

// Mul multiplies two fixed-point values, staging the exact mantissa
// product in 256 bits and rounding the scaled-down result per mode. Mul
// is commutative: x.Mul(y, m) == y.Mul(x, m) for all inputs.
func (x Fix128) Mul(y Fix128, mode RoundMode) (Fix128, error) {
	p := I256From128(x.bits).Mul(I256From128(y.bits))
	bits, err := divRound128(p, wideCoef128, mode)
	if err != nil {
		return Fix128{}, err
	}
	return Fix128{bits: bits}, nil
}

// SaturatingMul is Mul clamped to MaxFix128 or MinFix128 in the direction
// of the true product.
func (x Fix128) SaturatingMul(y Fix128, mode RoundMode) Fix128 {
	v, err := x.Mul(y, mode)
	if err != nil {
		if (x.bits.Sign() < 0) == (y.bits.Sign() < 0) {
			return MaxFix128
		}
		return MinFix128
	}
	return v
}

// Div divides x by y, scaling the numerator's mantissa up by the
// coefficient before the division so no fractional precision is lost on
// the way through; the quotient is rounded per mode. A zero y fails with
// ErrDivisionByZero.
func (x Fix128) Div(y Fix128, mode RoundMode) (Fix128, error) {
	if y.bits.IsZero() {
		return Fix128{}, ErrDivisionByZero
	}
	n := I256From128(x.bits).Mul(wideCoef128)
	bits, err := divRound128(n, I256From128(y.bits), mode)
	if err != nil {
		return Fix128{}, err
	}
	return Fix128{bits: bits}, nil
}

// DivInt divides x by a plain integer, rounding per mode. A zero k fails
// with ErrDivisionByZero.
func (x Fix128) DivInt(k I128, mode RoundMode) (Fix128, error) {
	bits, err := DivRound128(x.bits, k, mode)
	if err != nil {
		return Fix128{}, err
	}
	return Fix128{bits: bits}, nil
}

// Integral returns the whole-unit part of x, rounded toward negative
// infinity for Floor and toward positive infinity for Ceil.
func (x Fix128) Integral(mode RoundMode) I128 {
	q, r := x.bits.QuoRem(i128Coef)
	if !r.IsZero() && mode.rounds(r.Sign()) {
		q = q.Add(I128From64(int64(mode)))
	}
	return q
}

// RoundTowardsZeroBy rounds x toward zero to a multiple of unit. It is
// sign-symmetric; a zero unit is a division by zero and panics.
func (x Fix128) RoundTowardsZeroBy(unit Fix128) Fix128 {
	_, r := x.bits.QuoRem(unit.bits)
	return Fix128{bits: x.bits.Sub(r)}
}

// NextPowerOfTen returns the smallest power of ten whose magnitude is at
// least the magnitude of x, keeping x's sign. Zero maps to the smallest
// representable positive value, 10**-18. If no representable power of ten
// is large enough the result is ErrOverflow.
func (x Fix128) NextPowerOfTen() (Fix128, error) {
	if x.bits.Sign() < 0 {
		mag, err := x.Neg()
		if err != nil {
			return Fix128{}, err
		}
		pow, err := mag.NextPowerOfTen()
		if err != nil {
			return Fix128{}, err
		}
		return pow.Neg()
	}
	for _, p := range pow10x128 {
		if p.GreaterOrEqualTo(x.bits) {
			return Fix128{bits: p}, nil
		}
	}
	return Fix128{}, ErrOverflow
}

// RoundToInt64 rounds x to the nearest whole number of units, ties away
// from zero. Values whose whole part does not fit an int64 truncate to
// its width.
func (x Fix128) RoundToInt64() int64 {
	w := I256From128(x.bits)
	if x.bits.Sign() < 0 {
		w = w.Sub(halfCoef128)
	} else {
		w = w.Add(halfCoef128)
	}
	return w.Quo(wideCoef128).AsInt64()
}

// HalfSumFix128 returns the exact average of a and b, staged in 256 bits
// with the same floorward halving as HalfSumFix64.
func HalfSumFix128(a, b Fix128) Fix128 {
	s := I256From128(a.bits).Add(I256From128(b.bits)).ashr1()
	return Fix128{bits: s.AsI128()}
}

// DivRound128 divides two I128s with the same rounding control as the
// fixed-point division. MinI128 divided by -1 fails with ErrOverflow.
func DivRound128(a, b I128, mode RoundMode) (I128, error) {
	if b.IsZero() {
		return I128{}, ErrDivisionByZero
	}
	if a == MinI128 && b == I128From64(-1) {
		return I128{}, ErrOverflow
	}
	q, r := a.QuoRem(b)
	if !r.IsZero() && mode.rounds(a.Sign()*b.Sign()) {
		q = q.Add(I128From64(int64(mode)))
	}
	return q, nil
}

// divRound128 is the narrowing half of the 128-bit rounding pipeline: it
// divides n by d in 256-bit space, steps the truncated quotient per mode,
// and reports ErrOverflow if the result does not fit an I128 mantissa.
// The caller has already rejected a zero d.
func divRound128(n, d I256, mode RoundMode) (I128, error) {
	q, r := n.QuoRem(d)
	if !r.IsZero() && mode.rounds(n.Sign()*d.Sign()) {
		q = q.Add(I256From64(int64(mode)))
	}
	if !q.IsI128() {
		return I128{}, ErrOverflow
	}
	return q.AsI128(), nil
}
