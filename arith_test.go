package fixedpoint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestMul128To256(t *testing.T) {
	for idx, tc := range []struct {
		u, v U128
		out  U256
	}{
		{u64(0), u64(0), U256{}},
		{u64(1), u64(1), U256{lo: 1}},
		{u64(maxUint64), u64(maxUint64), U256{lm: 0xFFFFFFFFFFFFFFFE, lo: 1}},
		{MaxU128, u64(1), U256{lm: maxUint64, lo: maxUint64}},
		{MaxU128, MaxU128, u256s("115792089237316195423570985008687907852589419931798687112530834793049593217025")},

		// Middle-limb carries must reach the top limb intact:
		{U128{hi: 1, lo: maxUint64}, U128{hi: 1, lo: maxUint64}, u256s("0x3 FFFFFFFFFFFFFFFC 0000000000000001")},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s", idx, tc.u, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, mul128to256(tc.u, tc.v))
			tt.MustEqual(tc.out, mul128to256(tc.v, tc.u))
		})
	}
}

func TestMul128To256Random(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 50000; i++ {
		u1, u2 := randU128(scratch), randU128(scratch)
		rb := new(big.Int).Mul(u1.AsBigInt(), u2.AsBigInt())
		tt.MustEqual(rb.String(), mul128to256(u1, u2).String(), "failed at index %d", i)
	}
}

func TestSign64(t *testing.T) {
	for idx, tc := range []struct {
		in   int64
		sign int
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{maxInt64, 1},
		{minInt64, -1},
	} {
		t.Run(fmt.Sprintf("%d/%d", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.sign, sign64(tc.in))
		})
	}
}

func TestAddInt64(t *testing.T) {
	for idx, tc := range []struct {
		a, b, sum int64
		ok        bool
	}{
		{1, 2, 3, true},
		{-1, 1, 0, true},
		{maxInt64, 0, maxInt64, true},
		{maxInt64, minInt64, -1, true},
		{minInt64, 1, minInt64 + 1, true},

		{maxInt64, 1, 0, false},
		{1, maxInt64, 0, false},
		{minInt64, -1, 0, false},
		{-1, minInt64, 0, false},
	} {
		t.Run(fmt.Sprintf("%d/%d+%d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			sum, ok := addInt64(tc.a, tc.b)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.sum, sum)
		})
	}
}

func TestSubInt64(t *testing.T) {
	for idx, tc := range []struct {
		a, b, diff int64
		ok         bool
	}{
		{5, 3, 2, true},
		{3, 5, -2, true},
		{minInt64, 0, minInt64, true},
		{-1, minInt64, maxInt64, true},
		{maxInt64, maxInt64, 0, true},

		{minInt64, 1, 0, false},
		{maxInt64, -1, 0, false},
		{0, minInt64, 0, false}, // -MinInt64 does not fit
	} {
		t.Run(fmt.Sprintf("%d/%d-%d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			diff, ok := subInt64(tc.a, tc.b)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.diff, diff)
		})
	}
}

func TestAddI128(t *testing.T) {
	for idx, tc := range []struct {
		a, b, sum I128
		ok        bool
	}{
		{i64(1), i64(2), i64(3), true},
		{i64(-1), i64(1), i64(0), true},
		{MaxI128, i64(0), MaxI128, true},
		{MinI128, i64(1), MinI128.Add(i64(1)), true},
		{MaxI128, MinI128, i64(-1), true},

		{MaxI128, i64(1), MinI128, false},
		{MinI128, i64(-1), MaxI128, false},
		{i64(-1), MinI128, MaxI128, false},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			sum, ok := addI128(tc.a, tc.b)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.sum, sum)
		})
	}
}

func TestAddI128Random(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 10000; i++ {
		a, b := randI128(scratch), randI128(scratch)
		rb := new(big.Int).Add(a.AsBigInt(), b.AsBigInt())
		fits := rb.Cmp(minBigI128) >= 0 && rb.Cmp(maxBigI128) <= 0

		sum, ok := addI128(a, b)
		tt.MustEqual(fits, ok, "%s + %s", a, b)
		if ok {
			tt.MustEqual(rb.String(), sum.String(), "%s + %s", a, b)
		}
	}
}

func TestSubI128(t *testing.T) {
	for idx, tc := range []struct {
		a, b, diff I128
		ok         bool
	}{
		{i64(5), i64(3), i64(2), true},
		{i64(3), i64(5), i64(-2), true},
		{MinI128, i64(0), MinI128, true},
		{i64(-1), MinI128, MaxI128, true},
		{MaxI128, MaxI128, i64(0), true},

		{MinI128, i64(1), MaxI128, false},
		{MaxI128, i64(-1), MinI128, false},
		{i64(0), MinI128, MinI128, false}, // -MinI128 does not fit
	} {
		t.Run(fmt.Sprintf("%d/%s-%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			diff, ok := subI128(tc.a, tc.b)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.diff, diff)
		})
	}
}

func TestSubI128Random(t *testing.T) {
	tt := assert.WrapTB(t)
	scratch := make([]byte, 16)

	for i := 0; i < 10000; i++ {
		a, b := randI128(scratch), randI128(scratch)
		rb := new(big.Int).Sub(a.AsBigInt(), b.AsBigInt())
		fits := rb.Cmp(minBigI128) >= 0 && rb.Cmp(maxBigI128) <= 0

		diff, ok := subI128(a, b)
		tt.MustEqual(fits, ok, "%s - %s", a, b)
		if ok {
			tt.MustEqual(rb.String(), diff.String(), "%s - %s", a, b)
		}
	}
}

func BenchmarkMul128to256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = mul128to256(BenchU128In1, BenchU128In2)
	}
}
