package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test <pattern> <text>...",
	Short: "test every rune of the given texts against a pattern",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	p, err := compile(args[0])
	if err != nil {
		return err
	}

	total, missed := 0, 0
	for _, text := range args[1:] {
		for _, c := range text {
			total++
			verdict := "match"
			if !p.Test(c) {
				missed++
				verdict = "miss"
			}
			fmt.Printf("%q\t%s\n", c, verdict)
		}
	}
	fmt.Printf("%d/%d matched\n", total-missed, total)

	if missed > 0 {
		return fmt.Errorf("%d of %d runes did not match", missed, total)
	}

	return nil
}
