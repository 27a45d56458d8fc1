package char

import (
	"fmt"
	"unicode/utf8"

	"github.com/torsv454/charclass/runeset"
)

// PatternError describes the first position of a pattern string the
// grammar could not consume.
type PatternError struct {
	// Pos is the byte offset where consumption stopped.
	Pos int

	// Rest is the unconsumed remainder of the input, starting at Pos.
	Rest string
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("char: malformed pattern at byte %d: unconsumed %q", e.Pos, e.Rest)
}

// Unwrap ties every PatternError to ErrPatternSyntax, so callers can
// branch with errors.Is without keeping the concrete value around.
func (e *PatternError) Unwrap() error { return ErrPatternSyntax }

// Pattern compiles a compact character-class specification into a
// Predicate:
//
//	pattern := '^'? token*
//	token   := range | literal
//	range   := char '-' char
//	literal := char
//
// A leading '^' negates the whole class; anywhere else it is an ordinary
// literal. Tokens are consumed left to right with an ordered choice per
// token: the three-rune range shape wins when it fits, otherwise a single
// literal is taken, and the decision is never revisited. A trailing or
// dangling '-' therefore matches itself: "a-" means {'a', '-'}, not an
// unterminated range. Inverted ranges such as "z-a" contribute nothing.
//
// The collected ranges are normalized into one sorted, merged set;
// "a-fA-F0-9" and "A-Fa-f5-90-4" compile to identical predicates. An
// empty specification (or one whose tokens all cancel out) yields None,
// and "^" alone the negation of None, which matches everything.
//
// The grammar accepts any sequence of runes, so the only rejected input
// is a malformed UTF-8 encoding, reported as a *PatternError wrapping
// ErrPatternSyntax.
func Pattern(s string) (Predicate, error) {
	runes, err := patternRunes(s)
	if err != nil {
		return None(), err
	}

	negate := false
	if len(runes) > 0 && runes[0] == '^' {
		negate = true
		runes = runes[1:]
	}

	ranges := make([]runeset.Range, 0, len(runes))
	for i := 0; i < len(runes); {
		if i+2 < len(runes) && runes[i+1] == '-' {
			ranges = append(ranges, runeset.Range{Lo: runes[i], Hi: runes[i+2]})
			i += 3
			continue
		}
		ranges = append(ranges, runeset.Single(runes[i]))
		i++
	}

	p := fromSet(runeset.New(ranges...))
	if negate {
		p = p.Not()
	}
	return p, nil
}

// MustPattern is like Pattern but panics on a malformed specification.
// Use it for package-level predicates, in the spirit of
// regexp.MustCompile.
func MustPattern(s string) Predicate {
	p, err := Pattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// patternRunes decodes s into runes, failing on the first malformed
// UTF-8 sequence. A literal U+FFFD in valid input passes through.
func patternRunes(s string) ([]rune, error) {
	runes := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &PatternError{Pos: i, Rest: s[i:]}
		}
		runes = append(runes, r)
		i += size
	}
	return runes, nil
}
