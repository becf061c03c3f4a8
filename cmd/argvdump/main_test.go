package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfridman/cliparse"
)

type testEnv struct {
	stdout, stderr bytes.Buffer
	exits          []int
}

func (te *testEnv) env() *cliparse.Env {
	return &cliparse.Env{
		Args:     func() []string { return nil },
		Stdout:   &te.stdout,
		Stderr:   &te.stderr,
		Exit:     func(code int) { te.exits = append(te.exits, code) },
		SetTitle: func(string) {},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	pkg := writeFile(t, "package.json", `{"name": "fixture", "version": "1.0.0", "description": "Custom description"}`)
	schema := writeFile(t, "schema.yaml", `
unicorn:
  alias: u
meow:
  default: dog
camelCaseOption:
  default: foo
`)

	t.Run("keys", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"-schema", schema, "-manifest", pkg, "-keys", "--", "-u", "cat"}, te.env())
		require.NoError(t, err)
		assert.Equal(t, "u\nunicorn\nmeow\ncamelCaseOption\n", te.stdout.String())
	})
	t.Run("camel case option", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"-schema", schema, "-manifest", pkg, "--", "--camel-case-option", "bar"}, te.env())
		require.NoError(t, err)
		var out struct {
			Input []any          `json:"input"`
			Flags map[string]any `json:"flags"`
		}
		require.NoError(t, json.Unmarshal(te.stdout.Bytes(), &out))
		assert.Equal(t, "bar", out.Flags["camelCaseOption"])
		assert.Equal(t, "dog", out.Flags["meow"])
		assert.Empty(t, out.Input)
	})
	t.Run("show version", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"-manifest", pkg, "--", "--version"}, te.env())
		require.NoError(t, err)
		assert.Equal(t, "1.0.0\n", te.stdout.String())
		assert.Equal(t, []int{0}, te.exits)
	})
	t.Run("show help", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"-schema", schema, "-manifest", pkg, "--", "--help"}, te.env())
		require.NoError(t, err)
		assert.Contains(t, te.stdout.String(), "\n  Custom description\n\n  Usage\n    $ argvdump [flags] [-- argv...]\n")
		assert.Contains(t, te.stdout.String(), "  Options\n")
		assert.Equal(t, []int{0}, te.exits)
	})
	t.Run("json output", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"-manifest", pkg, "-infer", "-separator", "--", "5", "--foo-bar", "--", "x"}, te.env())
		require.NoError(t, err)
		var out struct {
			Input   []any          `json:"input"`
			Flags   map[string]any `json:"flags"`
			Unknown []string       `json:"unknown"`
		}
		require.NoError(t, json.Unmarshal(te.stdout.Bytes(), &out))
		assert.Equal(t, []any{float64(5)}, out.Input)
		assert.Equal(t, map[string]any{"fooBar": true, "--": []any{"x"}}, out.Flags)
		assert.Equal(t, []string{"foo-bar"}, out.Unknown)
	})
	t.Run("interspersed tool flags", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"7", "-infer", "-manifest", pkg}, te.env())
		require.NoError(t, err)
		assert.Contains(t, te.stdout.String(), `"input": [
    7
  ]`)
	})
	t.Run("line", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"-manifest", pkg, "-line", `--name "a b" pos`}, te.env())
		require.NoError(t, err)
		var out struct {
			Input []any          `json:"input"`
			Flags map[string]any `json:"flags"`
		}
		require.NoError(t, json.Unmarshal(te.stdout.Bytes(), &out))
		assert.Equal(t, []any{"pos"}, out.Input)
		assert.Equal(t, "a b", out.Flags["name"])
	})
	t.Run("unknown flag warning", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"-schema", schema, "-manifest", pkg, "--", "--unicron", "x"}, te.env())
		require.NoError(t, err)
		assert.Contains(t, te.stderr.String(), "unknown flag")
		assert.Contains(t, te.stderr.String(), "unicorn")
	})
	t.Run("tool help", func(t *testing.T) {
		t.Parallel()
		te := &testEnv{}
		err := run([]string{"-h"}, te.env())
		require.ErrorIs(t, err, flag.ErrHelp)
	})
	t.Run("bad schema", func(t *testing.T) {
		t.Parallel()
		bad := writeFile(t, "bad.hcl", "flag \"a\" {\n  type = \"text\"\n}\n")
		te := &testEnv{}
		err := run([]string{"-schema", bad, "-manifest", pkg}, te.env())
		require.Error(t, err)
	})
}
