package char

import (
	"errors"

	"github.com/torsv454/charclass/runeset"
)

// kind discriminates the predicate variants. The zero kind is kindNone so
// that the zero Predicate matches nothing.
type kind uint8

const (
	kindNone kind = iota
	kindAny
	kindSet
	kindClass
	kindNot
	kindOr
)

// Predicate is an immutable boolean test over a single rune.
//
// Build one with the package constructors (Any, None, Of, Range, AnyOf,
// NoneOf, Pattern, the named classes) and compose with Not and Or. The
// value never changes afterwards and may be shared freely across
// goroutines. The zero Predicate behaves like None().
type Predicate struct {
	kind kind

	// set holds the normalized ranges for kindSet.
	set runeset.Set

	// className and classFn carry a functional class (Digit, Letter, ...):
	// the display name and the test itself.
	className string
	classFn   func(rune) bool

	// members holds the inner predicate for kindNot (exactly one entry)
	// and the union for kindOr (two or more entries, never another Or).
	members []Predicate
}

// ErrPatternSyntax reports a pattern string the grammar cannot consume.
// Pattern failures wrap it; branch with errors.Is, or pull the offending
// offset out with errors.As and *PatternError.
var ErrPatternSyntax = errors.New("char: malformed pattern")
