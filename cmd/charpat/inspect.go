package main

import (
	"fmt"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/torsv454/charclass/char"
	"github.com/torsv454/charclass/runeset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pattern>",
	Short: "print the normalized rune ranges of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, err := compile(args[0])
	if err != nil {
		return err
	}

	cover := coverage(p)
	fmt.Printf("pattern:   %s\n", args[0])
	fmt.Printf("predicate: %s\n", p)
	for _, r := range cover.Ranges() {
		fmt.Printf("  %-28s %d rune(s)\n", r, r.Len())
	}
	fmt.Printf("total: %d rune(s) in %d range(s)\n", cover.Size(), cover.Len())

	return nil
}

// coverage rebuilds the matched set by sweeping the whole rune domain, so
// it reports any predicate shape, classes and unions included.
func coverage(p char.Predicate) runeset.Set {
	var ranges []runeset.Range
	for c := rune(0); c <= unicode.MaxRune; c++ {
		if !p.Test(c) {
			continue
		}
		lo := c
		for c < unicode.MaxRune && p.Test(c+1) {
			c++
		}
		ranges = append(ranges, runeset.Range{Lo: lo, Hi: c})
	}

	return runeset.New(ranges...)
}
