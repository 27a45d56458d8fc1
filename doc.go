// Package charclass is a small toolkit for describing classes of
// characters — the single-rune decisions every scanner, lexer and parser
// combinator is built on.
//
// 🚀 What is charclass?
//
//	A compact, thread-safe library that brings together:
//		• Rune sets: sorted, merged, inclusive ranges with O(log n) membership
//		• Predicates: any/none, literal sets, Unicode classes, custom functions
//		• Combinators: negation and flat unions with eager simplification
//		• Patterns: "a-zA-Z0-9_" or "^aeiou" compiled into normalized sets
//		• A CLI: charpat, to inspect and probe classes from the shell
//
// ✨ Why choose charclass?
//
//   - Minimal API – a handful of constructors, Test, Not, Or, Pattern
//   - Immutable values – build once, share across goroutines without locks
//   - Predictable cost – membership is a binary search, never a regexp
//
// Everything is organized under two subpackages and one command:
//
//	runeset/     — normalized rune ranges: the storage and lookup layer
//	char/        — predicates, combinators and the pattern compiler
//	cmd/charpat/ — command-line front end over both
//
// Quick example:
//
//	ident := char.Letter().Or(char.Digit(), char.Of('_'))
//	hex := char.MustPattern("a-fA-F0-9")
//	hex.Test('c') // true
//
//	go get github.com/torsv454/charclass
package charclass
