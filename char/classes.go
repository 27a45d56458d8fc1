package char

import "unicode"

// Digit returns the predicate matching Unicode decimal digits, as decided
// by unicode.IsDigit.
func Digit() Predicate { return class("digit", unicode.IsDigit) }

// Letter returns the predicate matching Unicode letters, as decided by
// unicode.IsLetter.
func Letter() Predicate { return class("letter", unicode.IsLetter) }

// LetterOrDigit returns the predicate matching Unicode letters and
// decimal digits.
func LetterOrDigit() Predicate {
	return class("letter-or-digit", func(c rune) bool {
		return unicode.IsLetter(c) || unicode.IsDigit(c)
	})
}

// LowerCase returns the predicate matching lower-case letters, as decided
// by unicode.IsLower.
func LowerCase() Predicate { return class("lowercase", unicode.IsLower) }

// UpperCase returns the predicate matching upper-case letters, as decided
// by unicode.IsUpper.
func UpperCase() Predicate { return class("uppercase", unicode.IsUpper) }

// Whitespace returns the predicate matching white space, as decided by
// unicode.IsSpace.
func Whitespace() Predicate { return class("whitespace", unicode.IsSpace) }

// Word returns the predicate matching letters, digits and the underscore,
// the usual identifier alphabet.
func Word() Predicate {
	return class("word", func(c rune) bool {
		return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
	})
}

// Func wraps an arbitrary rune test as a predicate. The name only shows
// up in String; a nil fn yields None.
func Func(name string, fn func(rune) bool) Predicate {
	if fn == nil {
		return None()
	}
	return class(name, fn)
}

func class(name string, fn func(rune) bool) Predicate {
	return Predicate{kind: kindClass, className: name, classFn: fn}
}
