package fixedpoint

import "math/bits"

// mul128to256 returns the full 256-bit product of two unsigned 128-bit
// values, built from the four 64-bit limb products. The carries out of the
// middle limbs cannot overflow the top limb: the largest possible product
// is (2**128 - 1)**2, which is less than 2**256.
func mul128to256(u, v U128) U256 {
	p0hi, p0lo := bits.Mul64(u.lo, v.lo)
	p1hi, p1lo := bits.Mul64(u.hi, v.lo)
	p2hi, p2lo := bits.Mul64(u.lo, v.hi)
	p3hi, p3lo := bits.Mul64(u.hi, v.hi)

	lm, c1 := bits.Add64(p0hi, p1lo, 0)
	lm, c2 := bits.Add64(lm, p2lo, 0)

	hm, c3 := bits.Add64(p1hi, p2hi, c1)
	hm, c4 := bits.Add64(hm, p3lo, c2)

	return U256{hi: p3hi + c3 + c4, hm: hm, lm: lm, lo: p0lo}
}

func sign64(v int64) int {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

// addInt64 returns a+b, reporting whether the sum stayed inside int64.
func addInt64(a, b int64) (int64, bool) {
	if b > 0 && a > maxInt64-b {
		return 0, false
	}
	if b < 0 && a < minInt64-b {
		return 0, false
	}
	return a + b, true
}

// subInt64 returns a-b, reporting whether the difference stayed inside
// int64.
func subInt64(a, b int64) (int64, bool) {
	if b < 0 && a > maxInt64+b {
		return 0, false
	}
	if b > 0 && a < minInt64+b {
		return 0, false
	}
	return a - b, true
}

// addI128 returns a+b, reporting whether the sum stayed inside I128. The
// sum overflows only when both operands share a sign the result does not.
func addI128(a, b I128) (I128, bool) {
	s := a.Add(b)
	if a.hi&signBit == b.hi&signBit && s.hi&signBit != a.hi&signBit {
		return s, false
	}
	return s, true
}

// subI128 returns a-b, reporting whether the difference stayed inside I128.
func subI128(a, b I128) (I128, bool) {
	d := a.Sub(b)
	if a.hi&signBit != b.hi&signBit && d.hi&signBit != a.hi&signBit {
		return d, false
	}
	return d, true
}
