package cliparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in   string
		want Type
	}{
		{"", TypeString},
		{"string", TypeString},
		{"boolean", TypeBoolean},
		{"bool", TypeBoolean},
		{"Number", TypeNumber},
	} {
		got, err := ParseType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseType("int")
	require.ErrorContains(t, err, `unknown flag type "int"`)

	text, err := TypeNumber.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "number", string(text))
	var typ Type
	require.NoError(t, typ.UnmarshalText([]byte("boolean")))
	assert.Equal(t, TypeBoolean, typ)
	_, err = Type(7).MarshalText()
	require.Error(t, err)
	assert.Equal(t, "Type(7)", Type(7).String())
}

func TestSchema(t *testing.T) {
	t.Parallel()

	schema := Schema{
		{Name: "unicorn", Aliases: []string{"u"}},
		{Name: "dryRun", Type: TypeBoolean},
		{Name: "F", Type: TypeBoolean},
	}
	require.NoError(t, schema.Validate())

	t.Run("lookup", func(t *testing.T) {
		for _, name := range []string{"unicorn", "u", "dry-run", "dryRun"} {
			_, ok := schema.Lookup(name)
			assert.True(t, ok, name)
		}
		f, ok := schema.Lookup("F")
		require.True(t, ok)
		assert.Equal(t, TypeBoolean, f.Type)
		_, ok = schema.Lookup("f")
		assert.False(t, ok, "single-character names are case-sensitive")
	})
	t.Run("suggest", func(t *testing.T) {
		assert.Equal(t, []string{"unicorn"}, schema.Suggest("--unicron"))
		assert.Equal(t, []string{"dry-run"}, schema.Suggest("dryrun"))
		assert.Empty(t, schema.Suggest("zzzzzz"))
	})
	t.Run("number defaults become float64", func(t *testing.T) {
		l, err := newLookup(Schema{{Name: "n", Type: TypeNumber, Default: int64(4)}})
		require.NoError(t, err)
		assert.Equal(t, float64(4), l.entries[0].flag.Default)
	})
}
