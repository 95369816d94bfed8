package fixedpoint

import (
	"database/sql/driver"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestFix64JSON(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		wire string
	}{
		{"0", `"0.0"`},
		{"10.042", `"10.042"`},
		{"-10.042", `"-10.042"`},
		{"9223372036.854775807", `"9223372036.854775807"`},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			data, err := json.Marshal(fix64s(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.wire, string(data))

			var back Fix64
			require.NoError(t, json.Unmarshal(data, &back))
			require.Equal(t, fix64s(tc.in), back)
		})
	}
}

func TestFix64JSONUnmarshal(t *testing.T) {
	// Bare JSON numbers are accepted on the way in:
	var v Fix64
	require.NoError(t, json.Unmarshal([]byte(`10.042`), &v))
	require.Equal(t, fix64s("10.042"), v)

	require.NoError(t, json.Unmarshal([]byte(`42`), &v))
	require.Equal(t, fix64s("42"), v)

	// A null leaves the current value alone:
	v = fix64s("1.5")
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	require.Equal(t, fix64s("1.5"), v)

	require.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
	require.Error(t, json.Unmarshal([]byte(`"7.02e5"`), &v))
	require.ErrorIs(t, json.Unmarshal([]byte(`"9223372036.854775808"`), &v), ErrOverflow)
}

func TestFix64JSONStruct(t *testing.T) {
	type order struct {
		Price Fix64  `json:"price"`
		Note  string `json:"note"`
	}

	data, err := json.Marshal(order{Price: fix64s("19.99"), Note: "sale"})
	require.NoError(t, err)
	require.Equal(t, `{"price":"19.99","note":"sale"}`, string(data))

	var back order
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, fix64s("19.99"), back.Price)
}

func TestFix64Text(t *testing.T) {
	text, err := fix64s("-10.042").MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-10.042", string(text))

	var v Fix64
	require.NoError(t, v.UnmarshalText([]byte("-10.042")))
	require.Equal(t, fix64s("-10.042"), v)

	require.Error(t, v.UnmarshalText([]byte("rubbish")))
}

func TestFix64Msgpack(t *testing.T) {
	for idx, in := range []string{"0", "10.042", "-10.042", "9223372036.854775807"} {
		t.Run(fmt.Sprintf("%d/%s", idx, in), func(t *testing.T) {
			data, err := msgpack.Marshal(fix64s(in))
			require.NoError(t, err)

			// The wire form is the canonical string:
			var s string
			require.NoError(t, msgpack.Unmarshal(data, &s))
			require.Equal(t, fix64s(in).String(), s)

			var back Fix64
			require.NoError(t, msgpack.Unmarshal(data, &back))
			require.Equal(t, fix64s(in), back)
		})
	}
}

func TestFix64MsgpackForeign(t *testing.T) {
	// Values encoded by other writers as plain numbers still decode:
	data, err := msgpack.Marshal(int64(42))
	require.NoError(t, err)
	var v Fix64
	require.NoError(t, msgpack.Unmarshal(data, &v))
	require.Equal(t, fix64s("42"), v)

	data, err = msgpack.Marshal(-1.5)
	require.NoError(t, err)
	require.NoError(t, msgpack.Unmarshal(data, &v))
	require.Equal(t, fix64s("-1.5"), v)

	// A uint64 beyond int64 cannot fit once scaled:
	data, err = msgpack.Marshal(uint64(maxUint64))
	require.NoError(t, err)
	require.ErrorIs(t, msgpack.Unmarshal(data, &v), ErrOverflow)
}

func TestFix64SQL(t *testing.T) {
	v, err := fix64s("10.042").Value()
	require.NoError(t, err)
	require.Equal(t, driver.Value("10.042"), v)

	var x Fix64
	require.NoError(t, x.Scan("10.042"))
	require.Equal(t, fix64s("10.042"), x)

	require.NoError(t, x.Scan([]byte("-0.75")))
	require.Equal(t, fix64s("-0.75"), x)

	require.NoError(t, x.Scan(int64(42)))
	require.Equal(t, fix64s("42"), x)

	require.NoError(t, x.Scan(1.5))
	require.Equal(t, fix64s("1.5"), x)

	require.ErrorIs(t, x.Scan(uint64(1)), ErrOverflow)
	require.ErrorIs(t, x.Scan(int64(9223372037)), ErrOverflow)

	require.EqualError(t, x.Scan(nil), "fixedpoint: cannot scan <nil> into a Fix64")
	require.EqualError(t, x.Scan(true), "fixedpoint: cannot scan bool into a Fix64")
}

func TestFix128JSON(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		wire string
	}{
		{"0", `"0.0"`},
		{"10.042", `"10.042"`},
		{"-10.042", `"-10.042"`},
		{"170141183460469231731.687303715884105727", `"170141183460469231731.687303715884105727"`},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			data, err := json.Marshal(fix128s(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.wire, string(data))

			var back Fix128
			require.NoError(t, json.Unmarshal(data, &back))
			require.Equal(t, fix128s(tc.in), back)
		})
	}
}

func TestFix128JSONUnmarshal(t *testing.T) {
	var v Fix128
	require.NoError(t, json.Unmarshal([]byte(`10.042`), &v))
	require.Equal(t, fix128s("10.042"), v)

	v = fix128s("1.5")
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	require.Equal(t, fix128s("1.5"), v)

	require.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
	require.ErrorIs(t, json.Unmarshal([]byte(`"170141183460469231731.687303715884105728"`), &v), ErrOverflow)
}

func TestFix128Text(t *testing.T) {
	text, err := fix128s("-10.042").MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-10.042", string(text))

	var v Fix128
	require.NoError(t, v.UnmarshalText([]byte("-10.042")))
	require.Equal(t, fix128s("-10.042"), v)

	require.Error(t, v.UnmarshalText([]byte("rubbish")))
}

func TestFix128Msgpack(t *testing.T) {
	for idx, in := range []string{
		"0", "10.042", "-10.042", "170141183460469231731.687303715884105727",
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, in), func(t *testing.T) {
			data, err := msgpack.Marshal(fix128s(in))
			require.NoError(t, err)

			var s string
			require.NoError(t, msgpack.Unmarshal(data, &s))
			require.Equal(t, fix128s(in).String(), s)

			var back Fix128
			require.NoError(t, msgpack.Unmarshal(data, &back))
			require.Equal(t, fix128s(in), back)
		})
	}
}

func TestFix128MsgpackForeign(t *testing.T) {
	data, err := msgpack.Marshal(int64(42))
	require.NoError(t, err)
	var v Fix128
	require.NoError(t, msgpack.Unmarshal(data, &v))
	require.Equal(t, fix128s("42"), v)

	data, err = msgpack.Marshal(-1.5)
	require.NoError(t, err)
	require.NoError(t, msgpack.Unmarshal(data, &v))
	require.Equal(t, fix128s("-1.5"), v)

	// The 128-bit layout has room for any uint64, unlike Fix64:
	data, err = msgpack.Marshal(uint64(maxUint64))
	require.NoError(t, err)
	require.NoError(t, msgpack.Unmarshal(data, &v))
	require.Equal(t, fix128s("18446744073709551615"), v)
}

func TestFix128SQL(t *testing.T) {
	v, err := fix128s("10.042").Value()
	require.NoError(t, err)
	require.Equal(t, driver.Value("10.042"), v)

	var x Fix128
	require.NoError(t, x.Scan("10.042"))
	require.Equal(t, fix128s("10.042"), x)

	require.NoError(t, x.Scan([]byte("-0.75")))
	require.Equal(t, fix128s("-0.75"), x)

	require.NoError(t, x.Scan(int64(minInt64)))
	require.Equal(t, fix128s("-9223372036854775808"), x)

	require.NoError(t, x.Scan(1.5))
	require.Equal(t, fix128s("1.5"), x)

	require.NoError(t, x.Scan(uint64(maxUint64)))
	require.Equal(t, fix128s("18446744073709551615"), x)

	require.EqualError(t, x.Scan(nil), "fixedpoint: cannot scan <nil> into a Fix128")
	require.EqualError(t, x.Scan(true), "fixedpoint: cannot scan bool into a Fix128")
}
