package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// setFlagsFromEnv fills every flag of fs that was not set on the command
// line from the environment variable <prefix>_<FLAG>, dashes mapped to
// underscores. Empty variables are ignored, and an explicit flag always
// wins over the environment.
func setFlagsFromEnv(fs *pflag.FlagSet, prefix string) error {
	var err error
	alreadySet := make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) { alreadySet[f.Name] = true })
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || alreadySet[f.Name] {
			return
		}
		key := prefix + "_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if val := os.Getenv(key); val != "" {
			if serr := fs.Set(f.Name, val); serr != nil {
				err = fmt.Errorf("invalid value %q for %s: %v", val, key, serr)
			}
		}
	})

	return err
}
