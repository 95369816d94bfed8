package fixedpoint

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFix64Decimal(t *testing.T) {
	for idx, in := range []string{
		"0.0", "1.0", "-1.5", "10.042", "0.000000001",
		"9223372036.854775807", "-9223372036.854775808",
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, in), func(t *testing.T) {
			d := fix64s(in).Decimal()
			require.True(t, d.Equal(decimal.RequireFromString(in)), "%s != %s", d, in)

			back, err := Fix64FromDecimal(d)
			require.NoError(t, err)
			require.Equal(t, fix64s(in), back)
		})
	}
}

func TestFix64FromDecimal(t *testing.T) {
	v, err := Fix64FromDecimal(decimal.New(5, 0))
	require.NoError(t, err)
	require.Equal(t, fix64s("5"), v)

	v, err = Fix64FromDecimal(decimal.New(10042, -3))
	require.NoError(t, err)
	require.Equal(t, fix64s("10.042"), v)

	// Digits beyond the scale are rejected, not rounded:
	_, err = Fix64FromDecimal(decimal.RequireFromString("0.0000000001"))
	require.EqualError(t, err, "fixedpoint: 0.0000000001 has more than 9 digits after the decimal point")

	_, err = Fix64FromDecimal(decimal.RequireFromString("10000000000"))
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Fix64FromDecimal(decimal.New(1, 30))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestFix128Decimal(t *testing.T) {
	for idx, in := range []string{
		"0.0", "1.0", "-1.5", "10.042", "0.000000000000000001",
		"170141183460469231731.687303715884105727",
		"-170141183460469231731.687303715884105728",
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, in), func(t *testing.T) {
			d := fix128s(in).Decimal()
			require.True(t, d.Equal(decimal.RequireFromString(in)), "%s != %s", d, in)

			back, err := Fix128FromDecimal(d)
			require.NoError(t, err)
			require.Equal(t, fix128s(in), back)
		})
	}
}

func TestFix128FromDecimal(t *testing.T) {
	v, err := Fix128FromDecimal(decimal.New(5, 0))
	require.NoError(t, err)
	require.Equal(t, fix128s("5"), v)

	// Values a Fix64 cannot hold fit here without fuss:
	v, err = Fix128FromDecimal(decimal.RequireFromString("18446744073709551615.5"))
	require.NoError(t, err)
	require.Equal(t, fix128s("18446744073709551615.5"), v)

	_, err = Fix128FromDecimal(decimal.RequireFromString("0.0000000000000000001"))
	require.EqualError(t, err, "fixedpoint: 0.0000000000000000001 has more than 18 digits after the decimal point")

	_, err = Fix128FromDecimal(decimal.RequireFromString("200000000000000000000"))
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Fix128FromDecimal(decimal.New(1, 40))
	require.ErrorIs(t, err, ErrOverflow)
}
