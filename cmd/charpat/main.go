// Command charpat compiles the compact character-class patterns of the
// char package and inspects or applies the result.
//
//	charpat inspect 'a-fA-F0-9'
//	charpat test '^aeiou' "some text"
//	CHARPAT_NEGATE=true charpat inspect 'a-z'
package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/torsv454/charclass/char"
)

const envPrefix = "CHARPAT"

var (
	logLevel string
	negate   bool
)

var rootCmd = &cobra.Command{
	Use:   "charpat",
	Short: "compile and probe compact character-class patterns",
	Long: `charpat compiles the pattern mini-language of the char package
("a-zA-Z0-9_", "^aeiou", ...) and either reports the normalized rune
ranges of the class or tests input text against it.

Every flag can also be set through the environment as CHARPAT_<FLAG>,
with dashes turned into underscores (CHARPAT_LOG_LEVEL covers
--log-level); flags given on the command line win over the environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.WarnLevel.String(),
		"log verbosity: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&negate, "negate", false,
		"negate the compiled predicate before use")
	rootCmd.AddCommand(inspectCmd, testCmd)
}

// compile builds the predicate for a pattern argument, honoring --negate.
// On bad input the failure offset is logged before the error is returned.
func compile(pattern string) (char.Predicate, error) {
	p, err := char.Pattern(pattern)
	if err != nil {
		var perr *char.PatternError
		if errors.As(err, &perr) {
			log.WithFields(log.Fields{
				"pos":  perr.Pos,
				"rest": fmt.Sprintf("%q", perr.Rest),
			}).Error("pattern rejected")
		}
		return char.None(), err
	}
	if negate {
		p = p.Not()
	}
	log.WithField("predicate", p.String()).Debug("pattern compiled")

	return p, nil
}

func main() {
	// Parse the known flags up front so that explicit values are already
	// marked as set when the environment is consulted.
	_ = rootCmd.ParseFlags(os.Args[1:])
	if err := setFlagsFromEnv(rootCmd.PersistentFlags(), envPrefix); err != nil {
		log.WithError(err).Fatal("reading flags from environment")
	}
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("charpat failed")
	}
}
