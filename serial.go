package fixedpoint

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// Fixed-point values travel as their canonical decimal strings: exact,
// readable, and safe from the float64 mangling that a JSON number would
// invite. Inbound values are more forgiving and also accept integers and
// floats.
var (
	_ json.Marshaler           = Fix64{}
	_ json.Unmarshaler         = (*Fix64)(nil)
	_ encoding.TextMarshaler   = Fix64{}
	_ encoding.TextUnmarshaler = (*Fix64)(nil)
	_ msgpack.CustomEncoder    = Fix64{}
	_ msgpack.CustomDecoder    = (*Fix64)(nil)
	_ driver.Valuer            = Fix64{}
	_ sql.Scanner              = (*Fix64)(nil)

	_ json.Marshaler           = Fix128{}
	_ json.Unmarshaler         = (*Fix128)(nil)
	_ encoding.TextMarshaler   = Fix128{}
	_ encoding.TextUnmarshaler = (*Fix128)(nil)
	_ msgpack.CustomEncoder    = Fix128{}
	_ msgpack.CustomDecoder    = (*Fix128)(nil)
	_ driver.Valuer            = Fix128{}
	_ sql.Scanner              = (*Fix128)(nil)
)

func (x Fix64) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Fix64) UnmarshalText(text []byte) error {
	v, err := Fix64FromString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Fix64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts the quoted form MarshalJSON writes as well as a
// bare JSON number. A JSON null leaves the value untouched.
func (x *Fix64) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := Fix64FromString(s)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Fix64) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

func (x *Fix64) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return err
	}
	out, err := scanFix64(v)
	if err != nil {
		return err
	}
	*x = out
	return nil
}

// Value implements driver.Valuer; values are stored as their canonical
// strings.
func (x Fix64) Value() (driver.Value, error) {
	return x.String(), nil
}

// Scan implements sql.Scanner, accepting strings, byte slices, integers
// and floats. NULL is rejected; wrap the column in sql.NullString or
// similar if it is nullable.
func (x *Fix64) Scan(v interface{}) error {
	out, err := scanFix64(v)
	if err != nil {
		return err
	}
	*x = out
	return nil
}

func scanFix64(v interface{}) (Fix64, error) {
	switch v := v.(type) {
	case string:
		return Fix64FromString(v)
	case []byte:
		return Fix64FromString(string(v))
	case int64:
		return Fix64From64(v)
	case uint64:
		// Loose msgpack decoding only yields a uint64 when the value
		// exceeds int64, which the scale factor can never absorb.
		return Fix64{}, ErrOverflow
	case float64:
		return Fix64FromFloat64(v)
	default:
		return Fix64{}, fmt.Errorf("fixedpoint: cannot scan %T into a Fix64", v)
	}
}

func (x Fix128) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Fix128) UnmarshalText(text []byte) error {
	v, err := Fix128FromString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Fix128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts the quoted form MarshalJSON writes as well as a
// bare JSON number. A JSON null leaves the value untouched.
func (x *Fix128) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := Fix128FromString(s)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Fix128) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

func (x *Fix128) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return err
	}
	out, err := scanFix128(v)
	if err != nil {
		return err
	}
	*x = out
	return nil
}

// Value implements driver.Valuer; values are stored as their canonical
// strings.
func (x Fix128) Value() (driver.Value, error) {
	return x.String(), nil
}

// Scan implements sql.Scanner, accepting strings, byte slices, integers
// and floats. NULL is rejected; wrap the column in sql.NullString or
// similar if it is nullable.
func (x *Fix128) Scan(v interface{}) error {
	out, err := scanFix128(v)
	if err != nil {
		return err
	}
	*x = out
	return nil
}

func scanFix128(v interface{}) (Fix128, error) {
	switch v := v.(type) {
	case string:
		return Fix128FromString(v)
	case []byte:
		return Fix128FromString(string(v))
	case int64:
		return Fix128From64(v), nil
	case uint64:
		return Fix128From128(U128From64(v).AsI128())
	case float64:
		return Fix128FromFloat64(v)
	default:
		return Fix128{}, fmt.Errorf("fixedpoint: cannot scan %T into a Fix128", v)
	}
}
