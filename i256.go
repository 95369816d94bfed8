package fixedpoint

import (
	"math/big"
	"math/bits"
)

// I256 is a signed two's complement integer with 256 bits of precision.
//
// It is the staging ground for Fix128 arithmetic: mantissa products and
// coefficient-scaled dividends are computed here in full before rounding
// narrows them back to 128 bits with an explicit range check. Because every
// staged value starts life at no more than 128 bits, the arithmetic in
// between cannot overflow; the one boundary that can still be hit, negating
// MinI256, is treated as a broken invariant and panics.
type I256 struct {
	hi, hm, lm, lo uint64
}

// I256FromRaw is the complement to I256.Raw(); it creates an I256 from four
// uint64s, most significant limb first.
func I256FromRaw(hi, hm, lm, lo uint64) I256 {
	return I256{hi: hi, hm: hm, lm: lm, lo: lo}
}

func I256From64(v int64) I256 {
	var ext uint64
	if v < 0 {
		ext = maxUint64
	}
	return I256{hi: ext, hm: ext, lm: ext, lo: uint64(v)}
}

func I256From128(v I128) (out I256) {
	out.lm, out.lo = v.hi, v.lo
	if v.hi&signBit != 0 {
		out.hi, out.hm = maxUint64, maxUint64
	}
	return out
}

func (i I256) IsZero() bool { return i == zeroI256 }

// Raw returns access to the I256 as four uint64s, most significant limb
// first. See I256FromRaw() for the counterpart.
func (i I256) Raw() (hi, hm, lm, lo uint64) { return i.hi, i.hm, i.lm, i.lo }

func (i I256) String() string {
	return i.AsBigInt().String()
}

// IntoBigInt copies this I256 into a big.Int, allowing you to retain and
// recycle memory.
func (i I256) IntoBigInt(b *big.Int) {
	i.AsU256().IntoBigInt(b)
	if i.hi&signBit != 0 {
		b.Xor(b, maxBigU256).Add(b, big1).Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I256 into it.
func (i I256) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU256 performs a direct cast of an I256 to a U256. Negative numbers
// become their two's complement magnitude-encoded values.
func (i I256) AsU256() U256 {
	return U256{hi: i.hi, hm: i.hm, lm: i.lm, lo: i.lo}
}

// AsI128 truncates the I256 to its low 128 bits. Values outside the range
// will over/underflow. See IsI128() if you want to check before you
// convert.
func (i I256) AsI128() I128 {
	return I128{hi: i.lm, lo: i.lo}
}

// IsI128 reports whether i can be represented in an I128: the upper limbs
// must be nothing but the sign, extended.
func (i I256) IsI128() bool {
	if i.lm&signBit != 0 {
		return i.hi == maxUint64 && i.hm == maxUint64
	}
	return i.hi == 0 && i.hm == 0
}

// AsInt64 truncates the I256 to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you
// convert.
func (i I256) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as an int64.
func (i I256) IsInt64() bool {
	if i.lo&signBit != 0 {
		return i.hi == maxUint64 && i.hm == maxUint64 && i.lm == maxUint64
	}
	return i.hi == 0 && i.hm == 0 && i.lm == 0
}

func (i I256) Sign() int {
	if i == zeroI256 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I256) Inc() (v I256) {
	var c uint64
	v.lo, c = bits.Add64(i.lo, 1, 0)
	v.lm, c = bits.Add64(i.lm, 0, c)
	v.hm, c = bits.Add64(i.hm, 0, c)
	v.hi, _ = bits.Add64(i.hi, 0, c)
	return v
}

func (i I256) Dec() (v I256) {
	var b uint64
	v.lo, b = bits.Sub64(i.lo, 1, 0)
	v.lm, b = bits.Sub64(i.lm, 0, b)
	v.hm, b = bits.Sub64(i.hm, 0, b)
	v.hi, _ = bits.Sub64(i.hi, 0, b)
	return v
}

// Add returns i+n. A sum of two operands widened from 128 bits always fits;
// anything wider wraps.
func (i I256) Add(n I256) (v I256) {
	var c uint64
	v.lo, c = bits.Add64(i.lo, n.lo, 0)
	v.lm, c = bits.Add64(i.lm, n.lm, c)
	v.hm, c = bits.Add64(i.hm, n.hm, c)
	v.hi, _ = bits.Add64(i.hi, n.hi, c)
	return v
}

// Sub returns i-n, with the same wrap caveat as Add.
func (i I256) Sub(n I256) (v I256) {
	var b uint64
	v.lo, b = bits.Sub64(i.lo, n.lo, 0)
	v.lm, b = bits.Sub64(i.lm, n.lm, b)
	v.hm, b = bits.Sub64(i.hm, n.hm, b)
	v.hi, _ = bits.Sub64(i.hi, n.hi, b)
	return v
}

// Neg returns -i. Negating MinI256 panics rather than wrapping: that
// magnitude cannot arise from operands widened out of the 128-bit layouts,
// so reaching it means a caller has broken the staging invariant.
func (i I256) Neg() (v I256) {
	if i == MinI256 {
		panic("i256: negation overflow")
	}
	var b uint64
	v.lo, b = bits.Sub64(0, i.lo, 0)
	v.lm, b = bits.Sub64(0, i.lm, b)
	v.hm, b = bits.Sub64(0, i.hm, b)
	v.hi, _ = bits.Sub64(0, i.hi, b)
	return v
}

// Abs returns the absolute value of i. It shares Neg's panic at MinI256.
func (i I256) Abs() I256 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// ashr1 shifts right by one with sign extension: a floor division by two
// that cannot overflow.
func (i I256) ashr1() (v I256) {
	v.lo = i.lo>>1 | i.lm<<63
	v.lm = i.lm>>1 | i.hm<<63
	v.hm = i.hm>>1 | i.hi<<63
	v.hi = uint64(int64(i.hi) >> 1)
	return v
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
func (i I256) Cmp(n I256) int {
	if i == n {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		// Same sign: two's complement order matches unsigned limb order.
		if i.AsU256().Cmp(n.AsU256()) > 0 {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I256) Equal(n I256) bool {
	return i == n
}

// Mul returns the product of two I256s, computed on the magnitudes with
// the sign reapplied. Products belong to the caller's staging invariant:
// two operands widened from 128 bits can never overflow the 256-bit
// product.
func (i I256) Mul(n I256) I256 {
	sign := 1
	if i.Sign() < 0 {
		sign = -1
		i = i.Neg()
	}
	if n.Sign() < 0 {
		sign = -sign
		n = n.Neg()
	}

	p := i.AsU256().Mul(n.AsU256()).AsI256()
	if sign < 0 {
		return p.Neg()
	}
	return p
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by     with the result truncated towards zero
//	r = i - by*q
//
func (i I256) QuoRem(by I256) (q, r I256) {
	qSign, rSign := 1, 1
	if i.Sign() < 0 {
		qSign, rSign = -1, -1
		i = i.Neg()
	}
	if by.Sign() < 0 {
		qSign = -qSign
		by = by.Neg()
	}

	qu, ru := i.AsU256().QuoRem(by.AsU256())
	q, r = qu.AsI256(), ru.AsI256()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0; see QuoRem for details.
func (i I256) Quo(by I256) (q I256) {
	q, _ = i.QuoRem(by)
	return q
}
