package cliparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFlag(t *testing.T) {
	t.Parallel()

	r, err := Parse(&Options{
		Args: []string{"--dry-run", "--count=3", "--name", "x"},
		Flags: Schema{
			Typed("dryRun", TypeBoolean),
			Typed("count", TypeNumber),
			Typed("missing", TypeString),
		},
		BooleanDefault: BoolDefault{Omit: true},
		Env:            (&testEnv{}).env(),
	})
	require.NoError(t, err)

	t.Run("typed values", func(t *testing.T) {
		assert.True(t, GetFlag[bool](r, "dryRun"))
		assert.True(t, GetFlag[bool](r, "dry-run"))
		assert.Equal(t, float64(3), GetFlag[float64](r, "count"))
		assert.Equal(t, "x", GetFlag[string](r, "name"))
	})
	t.Run("absent flag is the zero value", func(t *testing.T) {
		assert.Equal(t, "", GetFlag[string](r, "missing"))
		assert.False(t, r.Has("missing"))
		_, ok := r.Lookup("missing")
		assert.False(t, ok)
	})
	t.Run("flag type mismatch", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			msg, ok := r.(string)
			require.True(t, ok)
			assert.Contains(t, msg, `type mismatch for flag "count": holds float64, requested int`)
		}()
		_ = GetFlag[int](r, "count")
	})
}

func TestCheckAndSetEnv(t *testing.T) {
	t.Parallel()

	def := checkAndSetEnv(nil)
	require.NotNil(t, def.Args)
	require.NotNil(t, def.Stdout)
	require.NotNil(t, def.Stderr)
	require.NotNil(t, def.Exit)
	require.NotNil(t, def.SetTitle)

	te := &testEnv{}
	partial := &Env{Stdout: &te.stdout}
	got := checkAndSetEnv(partial)
	assert.Same(t, &te.stdout, got.Stdout)
	assert.NotNil(t, got.Exit)
	assert.Nil(t, partial.Exit, "caller's env must not be modified")
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "show help", ErrShowHelp.String())
	assert.Equal(t, "show version", ErrShowVersion.String())
	assert.Equal(t, "invalid schema", ErrInvalidSchema.String())
	assert.Equal(t, "unknown error", ErrorCode(42).String())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Equal(t, "show help: <nil>", (&Error{code: ErrShowHelp}).Error())
	assert.Equal(t, "show version: exit code 0", newExitError(ErrShowVersion, 0).Error())
}
