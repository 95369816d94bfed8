package fixedpoint

import (
	"math/big"
	"math/bits"
	"strconv"
)

// U256 is an unsigned integer with 256 bits of precision. It exists to
// carry the magnitudes for I256, the staging ground where Fix128 products
// and scaled dividends live before rounding narrows them back down.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256FromRaw(hi, hm, lm, lo uint64) U256 {
	return U256{hi: hi, hm: hm, lm: lm, lo: lo}
}

func U256From128(in U128) U256 {
	hi, lo := in.Raw()
	return U256{lm: hi, lo: lo}
}

func U256From64(in uint64) U256 {
	return U256{lo: in}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns access to the U256 as four uint64s, most significant limb
// first. See U256FromRaw() for the counterpart.
func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi, u.hm, u.lm, u.lo }

func (u U256) String() string {
	if u.hi == 0 && u.hm == 0 && u.lm == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U256) IntoBigInt(b *big.Int) {
	if intSize != 64 {
		panic("fixedpoint: only 64-bit big.Words are supported")
	}
	words := b.Bits()
	if ln := len(words); ln < 4 {
		words = append(words, make([]big.Word, 4-ln)...)
	}
	words = words[:4]
	words[0] = big.Word(u.lo)
	words[1] = big.Word(u.lm)
	words[2] = big.Word(u.hm)
	words[3] = big.Word(u.hi)
	b.SetBits(words)
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsU128 truncates the U256 to its low 128 bits. See IsU128() if you want
// to check before you convert.
func (u U256) AsU128() U128 { return U128{hi: u.lm, lo: u.lo} }

// IsU128 reports whether u can be represented in a U128.
func (u U256) IsU128() bool { return u.hi == 0 && u.hm == 0 }

// AsI256 performs a direct cast of a U256 to an I256, which will interpret
// it as a two's complement value.
func (u U256) AsI256() I256 {
	return I256{hi: u.hi, hm: u.hm, lm: u.lm, lo: u.lo}
}

// halves splits the U256 into its upper and lower 128 bits.
func (u U256) halves() (hi, lo U128) {
	return U128{hi: u.hi, lo: u.hm}, U128{hi: u.lm, lo: u.lo}
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(n U256) bool { return u == n }

func (u U256) And(n U256) U256 {
	u.hi &= n.hi
	u.hm &= n.hm
	u.lm &= n.lm
	u.lo &= n.lo
	return u
}

func (u U256) Add(n U256) (v U256) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.lm, c = bits.Add64(u.lm, n.lm, c)
	v.hm, c = bits.Add64(u.hm, n.hm, c)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (u U256) Sub(n U256) (v U256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.lm, b = bits.Sub64(u.lm, n.lm, b)
	v.hm, b = bits.Sub64(u.hm, n.hm, b)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u U256) Dec() (v U256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, 1, 0)
	v.lm, b = bits.Sub64(u.lm, 0, b)
	v.hm, b = bits.Sub64(u.hm, 0, b)
	v.hi, _ = bits.Sub64(u.hi, 0, b)
	return v
}

// Mul returns the low 256 bits of the product; bits above the 256th wrap.
// The fixed-point pipelines only ever multiply values widened from 128
// bits, whose products cannot reach the wrap.
func (u U256) Mul(n U256) U256 {
	uhi, ulo := u.halves()
	nhi, nlo := n.halves()

	out := mul128to256(ulo, nlo)
	cross := ulo.Mul(nhi).Add(uhi.Mul(nlo))
	upper := U128{hi: out.hi, lo: out.hm}.Add(cross)
	return U256{hi: upper.hi, hm: upper.lo, lm: out.lm, lo: out.lo}
}

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	} else if u.hi != 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 192
	}
	return 256
}

func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: (u.hi << n) | (u.hm >> (64 - n)),
			hm: (u.hm << n) | (u.lm >> (64 - n)),
			lm: (u.lm << n) | (u.lo >> (64 - n)),
			lo: u.lo << n,
		}

	} else if n == 64 {
		return U256{hi: u.hm, hm: u.lm, lm: u.lo}

	} else if n < 128 {
		n -= 64
		return U256{
			hi: (u.hm << n) | (u.lm >> (64 - n)),
			hm: (u.lm << n) | (u.lo >> (64 - n)),
			lm: u.lo << n,
		}

	} else if n == 128 {
		return U256{hi: u.lm, hm: u.lo}

	} else if n < 192 {
		n -= 128
		return U256{
			hi: (u.lm << n) | (u.lo >> (64 - n)),
			hm: u.lo << n,
		}

	} else if n == 192 {
		return U256{hi: u.lo}
	} else if n < 256 {
		return U256{hi: u.lo << (n - 192)}
	} else {
		return U256{}
	}
}

func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: u.hi >> n,
			hm: (u.hm >> n) | (u.hi << (64 - n)),
			lm: (u.lm >> n) | (u.hm << (64 - n)),
			lo: (u.lo >> n) | (u.lm << (64 - n)),
		}

	} else if n == 64 {
		return U256{hm: u.hi, lm: u.hm, lo: u.lm}

	} else if n < 128 {
		n -= 64
		return U256{
			hm: u.hi >> n,
			lm: (u.hm >> n) | (u.hi << (64 - n)),
			lo: (u.lm >> n) | (u.hm << (64 - n)),
		}

	} else if n == 128 {
		return U256{lm: u.hi, lo: u.hm}

	} else if n < 192 {
		n -= 128
		return U256{
			lm: u.hi >> n,
			lo: (u.hm >> n) | (u.hi << (64 - n)),
		}

	} else if n == 192 {
		return U256{lo: u.hi}

	} else if n < 256 {
		return U256{lo: u.hi >> (n - 192)}

	} else {
		return U256{}
	}
}

// quoRem64 divides u by a single non-zero limb with a chain of 128-by-64
// divisions, most significant limb first.
func (u U256) quoRem64(v uint64) (q U256, r uint64) {
	q.hi, r = u.hi/v, u.hi%v
	q.hm, r = bits.Div64(r, u.hm, v)
	q.lm, r = bits.Div64(r, u.lm, v)
	q.lo, r = bits.Div64(r, u.lo, v)
	return q, r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by     with the result truncated towards zero
//	r = u - by*q
//
func (u U256) QuoRem(by U256) (q, r U256) {
	if u.hi|u.hm|u.lm == 0 && by.hi|by.hm|by.lm == 0 {
		if by.lo == 0 {
			panic("u256: division by zero")
		}
		return U256{lo: u.lo / by.lo}, U256{lo: u.lo % by.lo}
	}

	if by.hi|by.hm|by.lm == 0 {
		if by.lo == 0 {
			panic("u256: division by zero")
		}
		q, r64 := u.quoRem64(by.lo)
		return q, U256{lo: r64}
	}

	byLeading0 := by.LeadingZeros()
	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 255 {
		q = u.Rsh(byTrailing0)
		r = by.Dec().And(u)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	return quorem256bin(u, by, u.LeadingZeros(), byLeading0)
}

func quorem256bin(u, by U256, uLeading0, byLeading0 uint) (q, r U256) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q.lo |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}
