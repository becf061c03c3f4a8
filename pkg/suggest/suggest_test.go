package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		candidates []string
		maxResults int
		expected   []string
	}{
		{
			name:       "typo",
			target:     "unicron",
			candidates: []string{"unicorn", "meow", "u"},
			maxResults: 3,
			expected:   []string{"unicorn"},
		},
		{
			name:       "separators and case are ignored",
			target:     "dryrun",
			candidates: []string{"dry-run", "verbose"},
			maxResults: 3,
			expected:   []string{"dry-run"},
		},
		{
			name:       "prefix ranks below exact",
			target:     "help",
			candidates: []string{"helper", "help", "world"},
			maxResults: 2,
			expected:   []string{"help", "helper"},
		},
		{
			name:       "duplicates reported once",
			target:     "color",
			candidates: []string{"colour", "colour", "color"},
			maxResults: 5,
			expected:   []string{"color", "colour"},
		},
		{
			name:       "empty target",
			target:     "",
			candidates: []string{"hello", "world"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "no matches",
			target:     "xyz",
			candidates: []string{"hello", "world"},
			maxResults: 2,
			expected:   []string{},
		},
		{
			name:       "invalid max results",
			target:     "hello",
			candidates: []string{"hello", "world"},
			maxResults: -1,
			expected:   []string{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FindSimilar(tt.target, tt.candidates, tt.maxResults))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected float64
	}{
		{"hello", "hello", 1.0},
		{"Hello", "hello", 1.0},
		{"camel-case", "camelCase", 1.0},
		{"hel", "hello", 0.9},
		{"hello", "world", 0.2},
		{"", "", 1.0},
		{"hello", "", 0.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, similarity(tt.a, tt.b), 0.001, "similarity of %q and %q", tt.a, tt.b)
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected int
	}{
		{"hello", "hello", 0},
		{"hello", "hallo", 1},
		{"hello", "hello1", 1},
		{"hello", "hell", 1},
		{"", "hello", 5},
		{"hello", "", 5},
		{"", "", 0},
		{"hello", "world", 4},
		{"héllo", "hello", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, distance(tt.a, tt.b), "distance between %q and %q", tt.a, tt.b)
	}
}
