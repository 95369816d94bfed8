package fixedpoint

import (
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned integer with 128 bits of precision. It carries the
// magnitudes for the signed I128 arithmetic that backs Fix128.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }

// U128FromBigInt creates a U128 from a big.Int and reports whether the
// value was representable. Negative or oversized values truncate to the
// nearest bound.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if intSize != 64 {
		panic("fixedpoint: only 64-bit big.Words are supported")
	}
	words := v.Bits()
	switch len(words) {
	case 0:
		return U128{}, true
	case 1:
		return U128{lo: uint64(words[0])}, true
	case 2:
		return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
	default:
		return MaxU128, false
	}
}

// U128FromFloat64 creates a U128 from a float64, truncating any fractional
// portion towards zero. NaN, negative and oversized inputs are out of
// range.
func U128FromFloat64(f float64) (out U128, inRange bool) {
	if f == 0 {
		return U128{}, true
	} else if f != f || f < 0 {
		return U128{}, false
	} else if f < maxUint64Float {
		// Exclusive: the constant rounds up to 2**64, which uint64() cannot
		// convert. The two-limb split below carries it exactly.
		return U128{lo: uint64(f)}, true
	} else if f < maxUint64Float*wrapUint64Float {
		return U128{hi: uint64(f / wrapUint64Float), lo: uint64(modpos(f, wrapUint64Float))}, true
	}
	return MaxU128, false
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw()
// for the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) IntoBigInt(b *big.Int) {
	if intSize != 64 {
		panic("fixedpoint: only 64-bit big.Words are supported")
	}
	words := b.Bits()
	if ln := len(words); ln < 2 {
		words = append(words, make([]big.Word, 2-ln)...)
	}
	words = words[:2]
	words[0] = big.Word(u.lo)
	words[1] = big.Word(u.hi)
	b.SetBits(words)
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	return (float64(u.hi) * wrapUint64Float) + float64(u.lo)
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret
// it as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{hi: u.hi, lo: u.lo}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

func (u U128) Inc() (v U128) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + c
	return v
}

func (u U128) Add(n U128) (v U128) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n < 128 {
		v.hi = u.lo << (n - 64)
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n < 128 {
		v.lo = u.hi >> (n - 64)
	}
	return v
}

// Mul returns the low 128 bits of the product; bits above the 128th wrap.
// See mul128to256 for the full product.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

// mul64 returns the low 128 bits of u multiplied by a single limb.
func (u U128) mul64(n uint64) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n)
	dest.hi += u.hi * n
	return dest
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by     with the result truncated towards zero
//	r = u - by*q
//
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 {
		if by.lo == 0 {
			panic("u128: division by zero")
		}
		if u.hi < by.lo {
			q.lo, r.lo = bits.Div64(u.hi, u.lo, by.lo)
		} else {
			q.hi = u.hi / by.lo
			q.lo, r.lo = bits.Div64(u.hi%by.lo, u.lo, by.lo)
		}
		return q, r
	}

	// The divisor is at least 2**64, so the quotient fits a single limb.
	// Divide the top bits of the operands to produce a trial quotient
	// guaranteed to sit within one of the real one (Hacker's Delight 9-5),
	// then correct it against the remainder.
	n := uint(bits.LeadingZeros64(by.hi))
	v1 := by.Lsh(n)
	u1 := u.Rsh(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = U128From64(tq)
	r = u.Sub(by.mul64(tq))
	if r.Cmp(by) >= 0 {
		q = q.Inc()
		r = r.Sub(by)
	}
	return q, r
}
