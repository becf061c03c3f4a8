package cliparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagUsages(t *testing.T) {
	t.Parallel()

	t.Run("listing", func(t *testing.T) {
		t.Parallel()
		out, err := FlagUsages(Schema{
			{Name: "unicorn", Aliases: []string{"u"}, Usage: "unicorn name"},
			{Name: "meow", Default: "dog", Usage: "what the cat says"},
			{Name: "dryRun", Type: TypeBoolean, Aliases: []string{"n", "simulate"}, Usage: "do nothing"},
			{Name: "depth", Type: TypeNumber, Default: 3},
		})
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "-u, --unicorn string")
		assert.Contains(t, lines[0], "unicorn name")
		assert.Contains(t, lines[1], "--meow string")
		assert.Contains(t, lines[1], `(default "dog")`)
		assert.Contains(t, lines[2], "-n, --dry-run")
		assert.Contains(t, lines[2], "do nothing (aliases: --simulate)")
		assert.Contains(t, lines[3], "--depth float")
		assert.Contains(t, lines[3], "(default 3)")
	})
	t.Run("invalid schema", func(t *testing.T) {
		t.Parallel()
		_, err := FlagUsages(Schema{{Name: "a", Aliases: []string{"x"}}, {Name: "b", Aliases: []string{"x"}}})
		require.Error(t, err)
	})
}
