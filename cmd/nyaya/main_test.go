package main

import (
	"flag"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newLogLevelContext(t *testing.T, level string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", level, "")
	require.NoError(t, set.Set("log-level", level))
	return cli.NewContext(&cli.App{}, set, nil)
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			assert.NoError(t, setupLogger(newLogLevelContext(t, level)), level)
		}
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		err := setupLogger(newLogLevelContext(t, "verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestSummarize(t *testing.T) {
	t.Run("short content unchanged", func(t *testing.T) {
		assert.Equal(t, "short text", summarize("short text"))
	})

	t.Run("whitespace collapsed", func(t *testing.T) {
		assert.Equal(t, "a b c", summarize("a\n  b\t c"))
	})

	t.Run("long content truncated", func(t *testing.T) {
		long := strings.Repeat("word ", 50)
		out := summarize(long)
		assert.LessOrEqual(t, len(out), 123)
		assert.True(t, strings.HasSuffix(out, "..."))
	})
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	ctx := cli.NewContext(&cli.App{}, set, nil)

	err := searchCommand(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is required")
}

func TestReindexCommandRejectsUnknownNamespace(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("namespace", "people", "")
	ctx := cli.NewContext(&cli.App{}, set, nil)

	err := reindexCommand(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid namespace")
}
