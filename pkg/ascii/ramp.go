package ascii

// DefaultRamp is the fixed character ramp ordered darkest to lightest.
// Index 9 is a space: fully bright pixels render as empty cells.
const DefaultRamp = Ramp("@%#*+=-:. ")

// Ramp is an ordered sequence of characters used as an intensity lookup
// table. Index selection is monotonic with intensity: low values map to the
// visually dense characters at the front, high values to the sparse ones at
// the back. A Ramp must be non-empty and at most 256 characters long.
type Ramp string

// Len returns the number of characters in the ramp.
func (r Ramp) Len() int {
	return len(r)
}

// Index returns the ramp index for an 8-bit intensity value.
// The mapping is min(len-1, intensity/(256/len)), matching integer floor
// division on both sides. For the default 10-character ramp the divisor is
// 25, so 0..24 map to index 0 and 250..255 all clamp to index 9.
func (r Ramp) Index(intensity uint8) int {
	scale := 256 / len(r)
	idx := int(intensity) / scale
	if idx > len(r)-1 {
		idx = len(r) - 1
	}
	return idx
}

// Char returns the ramp character for an 8-bit intensity value.
func (r Ramp) Char(intensity uint8) byte {
	return r[r.Index(intensity)]
}
