// Package char builds immutable predicates over single runes — the
// leaf-level matching primitive that character-class rules of a parser
// toolkit are made of.
//
// What
//
//   - Constructors: Any, None, Of, Range, AnyOf, NoneOf, plus the named
//     classes Digit, Letter, LetterOrDigit, LowerCase, UpperCase,
//     Whitespace, Word and the Func escape hatch.
//   - Pattern / MustPattern compile compact specifications such as
//     "a-zA-Z0-9_" or the negated "^aeiou" into a predicate backed by a
//     normalized runeset.Set.
//   - Combinators: Not (negation; double negation collapses) and Or
//     (flat union, tested left to right, short-circuits on the first hit).
//   - Query: Test(c) — true iff the rune belongs to the class.
//
// Why
//
//   - Parser construction composes large grammars out of tiny character
//     decisions; those decisions want to be cheap (O(log n) at worst) and
//     freely shareable. Every Predicate is an immutable value: build it
//     once, hand it around, query it from any goroutine without locks.
//
// The algebraic simplifications run eagerly at construction time —
// negations unwrap, unions splice flat, empty sets collapse to None — so
// Test dispatches over a branch-minimal shape at match time.
//
// Complexity
//
//   - Test: O(1) for Any/None/classes, O(log n) for compiled sets,
//     plus one hop per union member until the first hit.
//   - Pattern: O(len(input)).
package char
