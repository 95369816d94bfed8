package fixedpoint

import (
	"fmt"
	"math/big"
	"math/bits"
)

// I128 is a signed two's complement integer with 128 bits of precision. It
// is the mantissa layout of Fix128: Fix128 arithmetic is I128 arithmetic
// with a decimal point fixed 18 digits from the right.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromString creates an I128 from a decimal string. Overflow truncates
// to MaxI128/MinI128 and sets accurate to 'false'.
func I128FromString(s string) (out I128, accurate bool, err error) {
	// This deliberately limits the scope of what we accept as input just in case
	// we decide to hand-roll our own fast decimal-only parser:
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("fixedpoint: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

// I128FromBigInt creates an I128 from a big.Int. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	u, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if cmp := u.Cmp(maxI128AsU128); cmp == 0 {
			return MaxI128, accurate
		} else if cmp > 0 {
			return MaxI128, false
		}
		return u.AsI128(), accurate
	}

	if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
		return MinI128, accurate
	} else if cmp > 0 {
		return MinI128, false
	}
	return u.AsI128().Neg(), accurate
}

// I128FromFloat64 creates an I128 from a float64, truncating any fractional
// portion towards zero. NaN and floats outside the bounds of an I128 are
// out of range and clamp.
func I128FromFloat64(f float64) (out I128, inRange bool) {
	if f == 0 {
		return out, true
	} else if f != f { // f != f == isnan
		return out, false
	} else if f < 0 {
		if f < minI128Float {
			return MinI128, false
		}
		m, ok := U128FromFloat64(-f)
		return m.AsI128().Neg(), ok
	}
	if f >= maxI128Float {
		return MaxI128, false
	}
	m, ok := U128FromFloat64(f)
	return m.AsI128(), ok
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw()
// for the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	return i.AsBigInt().String()
}

func (i I128) Format(s fmt.State, c rune) {
	// Good enough for the formatting the tools need; not a fast path.
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	if i.hi > 0 {
		b.SetUint64(i.hi)
		b.Lsh(b, 64)
	} else {
		b.SetUint64(0)
	}
	var lo big.Int
	lo.SetUint64(i.lo)
	b.Add(b, &lo)

	if neg {
		b.Xor(b, maxBigU128).Add(b, big1).Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128; the magnitude of MinI128 survives the cast.
func (i I128) AsU128() U128 {
	return U128{hi: i.hi, lo: i.lo}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

func (i I128) AsFloat64() float64 {
	if i.hi&signBit != 0 {
		// Negation wraps at MinI128, whose magnitude the U128 cast carries.
		return -i.Neg().AsU128().AsFloat64()
	}
	return i.AsU128().AsFloat64()
}

// AsInt64 truncates the I128 to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you
// convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as an int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) {
	var c uint64
	v.lo, c = bits.Add64(i.lo, 1, 0)
	v.hi = i.hi + c
	return v
}

func (i I128) Dec() (v I128) {
	var b uint64
	v.lo, b = bits.Sub64(i.lo, 1, 0)
	v.hi = i.hi - b
	return v
}

// Add returns i+n. Overflow wraps around, as per the Go spec for the
// native signed integers; see addI128 for the checked flavour.
func (i I128) Add(n I128) (v I128) {
	var c uint64
	v.lo, c = bits.Add64(i.lo, n.lo, 0)
	v.hi, _ = bits.Add64(i.hi, n.hi, c)
	return v
}

// Sub returns i-n. Overflow wraps around.
func (i I128) Sub(n I128) (v I128) {
	var b uint64
	v.lo, b = bits.Sub64(i.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(i.hi, n.hi, b)
	return v
}

// Neg returns -i. The negation of MinI128 wraps back around to MinI128;
// I128.QuoRem depends on that wrap to divide MinI128 correctly.
func (i I128) Neg() (v I128) {
	var b uint64
	v.lo, b = bits.Sub64(0, i.lo, 0)
	v.hi, _ = bits.Sub64(0, i.hi, b)
	return v
}

// Abs returns the absolute value of i. Like Neg, it wraps at MinI128.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// ashr1 shifts right by one with sign extension: a floor division by two
// that cannot overflow.
func (i I128) ashr1() (v I128) {
	v.lo = i.lo>>1 | i.hi<<63
	v.hi = uint64(int64(i.hi) >> 1)
	return v
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
//
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	if i.hi == n.hi && i.lo == n.lo {
		return true
	}
	return i.GreaterThan(n)
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	if i.hi == n.hi && i.lo == n.lo {
		return true
	}
	return i.LessThan(n)
}

// Mul returns the product of two I128s. Overflow wraps around.
func (i I128) Mul(n I128) (dest I128) {
	dest.hi, dest.lo = bits.Mul64(i.lo, n.lo)
	dest.hi += i.hi*n.lo + i.lo*n.hi
	return dest
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by     with the result truncated towards zero
//	r = i - by*q
//
func (i I128) QuoRem(by I128) (q, r I128) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroI128) {
		qSign, rSign = -1, -1
		i = i.Neg()
	}
	if by.LessThan(zeroI128) {
		qSign = -qSign
		by = by.Neg()
	}

	qu, ru := i.AsU128().QuoRem(by.AsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}
