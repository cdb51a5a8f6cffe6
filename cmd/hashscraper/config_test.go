package main_test

import (
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/bamchi/hashscraper/cmd/hashscraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLConfig(t *testing.T) {
	t.Parallel()

	parse := func(t *testing.T, config string, args ...string) *main.CLI {
		t.Helper()

		resolver, err := main.YAMLConfig(strings.NewReader(config))
		require.NoError(t, err)

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Resolvers(resolver), kong.Exit(func(int) {}))
		require.NoError(t, err)
		_, err = parser.Parse(append([]string{"usage"}, args...))
		require.NoError(t, err)
		return cli
	}

	t.Run("fills flags from the file", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, "backend: browser\napi_key: hs-123\nconcurrency: 4\ntimeout: 15s\nverbose: true\n")

		assert.Equal(t, "browser", cli.Backend)
		assert.Equal(t, "hs-123", cli.APIKey)
		assert.Equal(t, 4, cli.Concurrency)
		assert.Equal(t, 15*time.Second, cli.Timeout)
		assert.True(t, cli.Verbose)
	})

	t.Run("command line wins over the file", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, "extractor: trafilatura\n", "--extractor", "readability")

		assert.Equal(t, "readability", cli.Extractor)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, "")

		assert.Equal(t, "api", cli.Backend)
		assert.Equal(t, 60*time.Second, cli.Timeout)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAMLConfig(strings.NewReader("backend: [unterminated"))

		require.Error(t, err)
	})
}
