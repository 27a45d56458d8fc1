package runeset

import (
	"sort"
	"strings"
)

// linearScanMax bounds the set sizes probed linearly in Contains;
// larger sets switch to binary search.
const linearScanMax = 16

// Set is an immutable, normalized collection of inclusive rune ranges,
// sorted by Lo with no two entries overlapping or touching.
//
// Build one with New; the zero Set is valid, empty, and contains nothing.
// A Set never changes after construction, so concurrent Contains calls
// need no synchronization.
type Set struct {
	ranges []Range
}

// New builds the normal form of the given ranges: empty entries are
// dropped, the rest are sorted by Lo (ties by Hi) and fused whenever two
// entries overlap or sit directly next to each other, so that
// New(Range{'a', 'c'}, Range{'b', 'd'}) and New(Range{'a', 'd'}) are
// indistinguishable. The input slice is copied, never retained or
// reordered in place.
// Complexity: O(k log k) for k input ranges.
func New(ranges ...Range) Set {
	kept := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return Set{}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Lo != kept[j].Lo {
			return kept[i].Lo < kept[j].Lo
		}

		return kept[i].Hi < kept[j].Hi
	})

	// Single pass: fuse each range into the previous entry on overlap or
	// direct adjacency (cur.Lo <= prev.Hi+1), otherwise start a new entry.
	merged := kept[:1]
	for _, cur := range kept[1:] {
		last := &merged[len(merged)-1]
		if cur.Lo <= last.Hi+1 {
			if cur.Hi > last.Hi {
				last.Hi = cur.Hi
			}

			continue
		}
		merged = append(merged, cur)
	}

	return Set{ranges: merged}
}

// Contains reports whether c belongs to the set. Small sets are probed
// linearly; larger ones by binary search over the sorted ranges.
// An empty Set always reports false.
// Complexity: O(log n).
func (s Set) Contains(c rune) bool {
	if len(s.ranges) <= linearScanMax {
		for _, r := range s.ranges {
			if c < r.Lo {
				return false
			}
			if c <= r.Hi {
				return true
			}
		}

		return false
	}

	lo, hi := 0, len(s.ranges)
	for lo < hi {
		m := lo + (hi-lo)/2
		switch r := s.ranges[m]; {
		case c < r.Lo:
			hi = m
		case c > r.Hi:
			lo = m + 1
		default:
			return true
		}
	}

	return false
}

// Len returns the number of normalized ranges.
func (s Set) Len() int {
	return len(s.ranges)
}

// Size returns the total number of runes the set covers.
// Complexity: O(n).
func (s Set) Size() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Len()
	}

	return n
}

// Ranges returns a fresh copy of the normalized ranges in ascending order.
// Mutating the result does not affect the set.
func (s Set) Ranges() []Range {
	if len(s.ranges) == 0 {
		return nil
	}
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)

	return out
}

// Min returns the smallest rune in the set; ok is false when the set is empty.
func (s Set) Min() (c rune, ok bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}

	return s.ranges[0].Lo, true
}

// Max returns the largest rune in the set; ok is false when the set is empty.
func (s Set) Max() (c rune, ok bool) {
	if len(s.ranges) == 0 {
		return 0, false
	}

	return s.ranges[len(s.ranges)-1].Hi, true
}

// String renders the normalized ranges space-separated inside brackets,
// e.g. [a-zA-Z0-9_] prints as ['0'..'9' 'A'..'Z' '_' 'a'..'z'].
func (s Set) String() string {
	if len(s.ranges) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, r := range s.ranges {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')

	return b.String()
}
