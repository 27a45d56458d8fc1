package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() (*pflag.FlagSet, *string, *bool) {
	fs := pflag.NewFlagSet("charpat", pflag.ContinueOnError)
	level := fs.String("log-level", "warn", "")
	neg := fs.Bool("negate", false, "")

	return fs, level, neg
}

func TestSetFlagsFromEnv(t *testing.T) {
	fs, level, neg := newTestFlagSet()
	t.Setenv("CHARPAT_LOG_LEVEL", "debug")
	t.Setenv("CHARPAT_NEGATE", "true")

	require.NoError(t, setFlagsFromEnv(fs, "CHARPAT"))
	assert.Equal(t, "debug", *level)
	assert.True(t, *neg)
}

// TestSetFlagsFromEnv_FlagWins checks that an explicit command-line value
// is never overwritten by the environment.
func TestSetFlagsFromEnv_FlagWins(t *testing.T) {
	fs, level, _ := newTestFlagSet()
	require.NoError(t, fs.Parse([]string{"--log-level", "error"}))
	t.Setenv("CHARPAT_LOG_LEVEL", "debug")

	require.NoError(t, setFlagsFromEnv(fs, "CHARPAT"))
	assert.Equal(t, "error", *level)
}

func TestSetFlagsFromEnv_BadValue(t *testing.T) {
	fs, _, _ := newTestFlagSet()
	t.Setenv("CHARPAT_NEGATE", "definitely")

	err := setFlagsFromEnv(fs, "CHARPAT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHARPAT_NEGATE")
}

func TestSetFlagsFromEnv_EmptyIgnored(t *testing.T) {
	fs, level, neg := newTestFlagSet()
	t.Setenv("CHARPAT_LOG_LEVEL", "")
	t.Setenv("CHARPAT_NEGATE", "")

	require.NoError(t, setFlagsFromEnv(fs, "CHARPAT"))
	assert.Equal(t, "warn", *level)
	assert.False(t, *neg)
}
