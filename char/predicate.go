package char

import (
	"strings"

	"github.com/torsv454/charclass/runeset"
)

// Any returns the predicate matching every rune.
func Any() Predicate { return Predicate{kind: kindAny} }

// None returns the predicate matching no rune at all. It is also the
// behavior of the zero Predicate.
func None() Predicate { return Predicate{} }

// Of returns the predicate matching exactly the rune c.
func Of(c rune) Predicate {
	return fromSet(runeset.New(runeset.Single(c)))
}

// Range returns the predicate matching every rune between lo and hi
// inclusive. The bounds are taken as given, never reordered: lo > hi
// yields the never-matching predicate.
func Range(lo, hi rune) Predicate {
	return fromSet(runeset.New(runeset.Range{Lo: lo, Hi: hi}))
}

// AnyOf returns the predicate matching exactly the runes of s.
// Duplicates and ordering are irrelevant; consecutive code points fuse
// into ranges during normalization. Malformed UTF-8 bytes in s decode to
// U+FFFD, as in any Go string iteration; use Pattern for strict input.
func AnyOf(s string) Predicate {
	ranges := make([]runeset.Range, 0, len(s))
	for _, c := range s {
		ranges = append(ranges, runeset.Single(c))
	}
	return fromSet(runeset.New(ranges...))
}

// NoneOf returns the predicate matching every rune except those of s.
// It is the negation of AnyOf(s).
func NoneOf(s string) Predicate {
	return AnyOf(s).Not()
}

// fromSet wraps a normalized set as a predicate, collapsing the empty set
// to None so that Range('z', 'a'), AnyOf("") and Pattern("") all share a
// single representation.
func fromSet(s runeset.Set) Predicate {
	if s.Len() == 0 {
		return None()
	}
	return Predicate{kind: kindSet, set: s}
}

// Test reports whether c satisfies the predicate. Union members are tried
// left to right and short-circuit on the first hit; negation inverts the
// inner verdict.
func (p Predicate) Test(c rune) bool {
	switch p.kind {
	case kindAny:
		return true
	case kindSet:
		return p.set.Contains(c)
	case kindClass:
		return p.classFn(c)
	case kindNot:
		return !p.members[0].Test(c)
	case kindOr:
		for _, m := range p.members {
			if m.Test(c) {
				return true
			}
		}
		return false
	default: // kindNone
		return false
	}
}

// String renders the predicate for diagnostics: "any", "none", the
// normalized range list for sets, the class name, "!inner" for negations
// and "(a | b)" for unions.
func (p Predicate) String() string {
	switch p.kind {
	case kindAny:
		return "any"
	case kindSet:
		return p.set.String()
	case kindClass:
		return p.className
	case kindNot:
		return "!" + p.members[0].String()
	case kindOr:
		parts := make([]string, len(p.members))
		for i, m := range p.members {
			parts[i] = m.String()
		}
		return "(" + strings.Join(parts, " | ") + ")"
	default:
		return "none"
	}
}
