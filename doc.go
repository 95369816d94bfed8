/*
Package fixedpoint provides fixed-point decimal numbers for money and
other exact quantities: Fix64 carries 9 fractional digits in an int64
mantissa, Fix128 carries 18 in a 128-bit mantissa.

Both are value types; all operations return new values. Arithmetic never
wraps: sums and differences are checked, and multiplication and division
compute the exact result in a wider integer, round it in a caller-chosen
direction (Floor or Ceil), and report ErrOverflow if the rounded result
does not fit.

Simple example:

	price := fixedpoint.MustFix64FromString("41.5")
	qty := fixedpoint.MustFix64FromString("3.00000002")
	total, err := price.Mul(qty, fixedpoint.Floor)
	if err != nil {
		// handle overflow
	}
	fmt.Println(total)
	// Output: 124.50000083

Fixed-point values can be created from a variety of sources:

	Fix64FromRaw(bits int64) Fix64
	Fix64From64(v int64) (Fix64, error)
	Fix64FromString(s string) (Fix64, error)
	Fix64FromFloat64(f float64) (Fix64, error)
	Fix64FromMantExp(num int64, exp int32) (Fix64, error)
	Fix64FromDecimal(d decimal.Decimal) (Fix64, error)

and their Fix128 counterparts. Fix64 and Fix128 support the following
marshalling interfaces:

	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder
	- driver.Valuer
	- sql.Scanner

The serialized form is always the canonical decimal string.

The signed 128 and 256 bit integers backing the arithmetic (I128, U128,
I256, U256) are exported as well; they are useful on their own whenever
an int64 is too small.
*/
package fixedpoint
