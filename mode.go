package fixedpoint

// RoundMode selects the direction an inexact result moves. Operations that
// can lose precision take the mode explicitly; there is no package default.
type RoundMode int8

const (
	// Floor rounds towards negative infinity.
	Floor RoundMode = -1

	// Ceil rounds towards positive infinity.
	Ceil RoundMode = 1
)

func (m RoundMode) String() string {
	switch m {
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	default:
		return "invalid"
	}
}

// rounds reports whether a quotient truncated towards zero must be stepped
// one unit further to honour the mode. sign is the sign of the exact result
// and is only meaningful when the remainder is known to be non-zero: a
// positive inexact result is already floored by truncation, a negative one
// is already ceiled.
func (m RoundMode) rounds(sign int) bool {
	return int(m) == sign
}
