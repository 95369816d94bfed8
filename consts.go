package fixedpoint

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	minInt64Float = float64(minInt64) // -(1<<63), exact
	maxInt64Float = float64(maxInt64) // rounds up to 1<<63; compare exclusively

	maxUint64Float  = float64(maxUint64)     // rounds up to 1<<64; compare exclusively
	wrapUint64Float = float64(maxUint64) + 1 // 1<<64

	maxI128Float = float64(170141183460469231731687303715884105727)  // rounds up to 1<<127; compare exclusively
	minI128Float = float64(-170141183460469231731687303715884105728) // -(1<<127), exact

	signBit = 0x8000000000000000

	intSize = 32 << (^uint(0) >> 63)
)

// Fix64 keeps 9 fractional decimal digits in an int64 mantissa; Fix128
// keeps 18 in an I128. The coefficient is the power of ten that scales a
// mantissa back to the value it represents.
const (
	Fix64Precision  = 9
	Fix64Coef       = 1_000_000_000
	Fix128Precision = 18
	Fix128Coef      = 1_000_000_000_000_000_000
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	MaxI256 = I256{hi: 0x7FFFFFFFFFFFFFFF, hm: maxUint64, lm: maxUint64, lo: maxUint64}
	MinI256 = I256{hi: 0x8000000000000000}
	MaxU256 = U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}

	MaxFix64  = Fix64{bits: maxInt64}
	MinFix64  = Fix64{bits: minInt64}
	ZeroFix64 = Fix64{}
	OneFix64  = Fix64{bits: Fix64Coef}

	MaxFix128  = Fix128{bits: MaxI128}
	MinFix128  = Fix128{bits: MinI128}
	ZeroFix128 = Fix128{}
	OneFix128  = Fix128{bits: i128Coef}

	zeroI128 I128
	zeroU128 U128
	zeroI256 I256
	zeroU256 U256

	// Coefficients pre-widened for the rounding pipelines.
	i128Coef    = I128From64(Fix128Coef)
	wideCoef64  = I128From64(Fix64Coef)
	wideCoef128 = I256From128(i128Coef)
	halfCoef64  = I128From64(Fix64Coef / 2)
	halfCoef128 = I256From128(I128From64(Fix128Coef / 2))

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
	maxBigInt64  = new(big.Int).SetUint64(maxInt64)
	minBigInt64  = new(big.Int).SetInt64(minInt64)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	minBigI128, _ = new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	maxBigI128, _ = new(big.Int).SetString("170141183460469231731687303715884105727", 10)

	maxBigU256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	minBigI256, _ = new(big.Int).SetString("-57896044618658097711785492504343953926634992332820282019728792003956564819968", 10)
	maxBigI256, _ = new(big.Int).SetString("57896044618658097711785492504343953926634992332820282019728792003956564819967", 10)
)

// pow10x64[n] is 10**n. 10**18 is the largest power of ten an int64 can
// hold.
var pow10x64 = [19]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// pow10x128[n] is 10**n. 10**38 is the largest power of ten an I128 can
// hold.
var pow10x128 [39]I128

func init() {
	p, ten := I128From64(1), I128From64(10)
	for i := range pow10x128 {
		pow10x128[i] = p
		p = p.Mul(ten)
	}
}
