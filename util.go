package fixedpoint

import (
	"fmt"
	"strings"
)

// splitDecimal validates a plain decimal string and splits it into parts:
// the sign, the integer and fractional digits concatenated, and the count
// of fractional digits. The accepted syntax is an optional '+' or '-',
// one or more digits, then optionally a '.' followed by one or more
// digits. Exponents are not accepted, and neither side of the point may
// be empty; ".5" and "5." are both rejected.
func splitDecimal(s string, maxFrac int) (neg bool, digits string, fracLen int, err error) {
	orig := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
		if fracPart == "" {
			return false, "", 0, fmt.Errorf("fixedpoint: %q is not a fixed-point number", orig)
		}
	}
	if intPart == "" {
		return false, "", 0, fmt.Errorf("fixedpoint: %q is not a fixed-point number", orig)
	}
	if len(fracPart) > maxFrac {
		return false, "", 0, fmt.Errorf("fixedpoint: %q has more than %d digits after the decimal point", orig, maxFrac)
	}

	for i := 0; i < len(intPart); i++ {
		if intPart[i] < '0' || intPart[i] > '9' {
			return false, "", 0, fmt.Errorf("fixedpoint: %q is not a fixed-point number", orig)
		}
	}
	for i := 0; i < len(fracPart); i++ {
		if fracPart[i] < '0' || fracPart[i] > '9' {
			return false, "", 0, fmt.Errorf("fixedpoint: %q is not a fixed-point number", orig)
		}
	}
	return neg, intPart + fracPart, len(fracPart), nil
}
