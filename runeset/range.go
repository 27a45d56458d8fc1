package runeset

import "fmt"

// Range is one inclusive span of runes [Lo, Hi].
//
// A single rune is the degenerate span Lo == Hi. A Range with Lo > Hi is
// empty: it contains no rune and contributes nothing to a Set. Ranges are
// plain immutable values; the zero Range holds exactly the NUL rune.
type Range struct {
	// Lo is the first rune of the span.
	Lo rune

	// Hi is the last rune of the span, inclusive.
	Hi rune
}

// Single returns the degenerate Range holding exactly c.
func Single(c rune) Range {
	return Range{Lo: c, Hi: c}
}

// Contains reports whether c falls within the span bounds.
// Complexity: O(1).
func (r Range) Contains(c rune) bool {
	return r.Lo <= c && c <= r.Hi
}

// Empty reports whether the span holds no runes at all (Lo > Hi).
func (r Range) Empty() bool {
	return r.Lo > r.Hi
}

// Len returns the number of runes the span holds; 0 when empty.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}

	return int(r.Hi-r.Lo) + 1
}

// String renders the span as a quoted rune for degenerate spans,
// 'lo'..'hi' otherwise, and <empty> for spans with Lo > Hi.
func (r Range) String() string {
	switch {
	case r.Empty():
		return "<empty>"
	case r.Lo == r.Hi:
		return fmt.Sprintf("%q", r.Lo)
	default:
		return fmt.Sprintf("%q..%q", r.Lo, r.Hi)
	}
}
