package char_test

import (
	"fmt"

	"github.com/torsv454/charclass/char"
)

// ExamplePattern compiles a compact hex-digit class and probes it.
func ExamplePattern() {
	hex, err := char.Pattern("a-fA-F0-9")
	if err != nil {
		panic(err)
	}

	fmt.Println(hex)
	fmt.Println(hex.Test('c'), hex.Test('G'))
	// Output:
	// ['0'..'9' 'A'..'F' 'a'..'f']
	// true false
}

// ExamplePattern_negated shows the leading caret: everything outside the
// listed class.
func ExamplePattern_negated() {
	noVowel := char.MustPattern("^aeiou")

	fmt.Println(noVowel.Test('x'), noVowel.Test('e'))
	// Output: true false
}

func ExamplePredicate_Or() {
	identifier := char.Letter().Or(char.Digit(), char.Of('_'))

	fmt.Println(identifier)
	fmt.Println(identifier.Test('_'), identifier.Test('-'))
	// Output:
	// (letter | digit | ['_'])
	// true false
}

func ExamplePredicate_Not() {
	nonDigit := char.Digit().Not()

	fmt.Println(nonDigit)
	fmt.Println(nonDigit.Test('a'), nonDigit.Test('7'))
	// Output:
	// !digit
	// true false
}
