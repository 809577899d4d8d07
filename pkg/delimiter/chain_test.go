package delimiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strcalc/pkg/delimiter"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("empty delimiter list returns nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, delimiter.Apply(nil, []string{"1,2"}))
		assert.Empty(t, delimiter.Apply([]delimiter.Delimiter{}, []string{"1,2"}))
	})

	t.Run("nil tokens", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, delimiter.Apply([]delimiter.Delimiter{delimiter.Comma()}, nil))
	})

	t.Run("applies delimiters in sequence", func(t *testing.T) {
		t.Parallel()
		delims := []delimiter.Delimiter{delimiter.Comma(), delimiter.Space()}
		got := delimiter.Apply(delims, []string{"1 2 3,4,5 6"})
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, got)
	})

	t.Run("order does not change the token set for literal splits", func(t *testing.T) {
		t.Parallel()
		a := delimiter.Apply([]delimiter.Delimiter{delimiter.Comma(), delimiter.Space()}, []string{"1 2,3"})
		b := delimiter.Apply([]delimiter.Delimiter{delimiter.Space(), delimiter.Comma()}, []string{"1 2,3"})
		assert.ElementsMatch(t, a, b)
	})

	t.Run("second delimiter sees output of the first", func(t *testing.T) {
		t.Parallel()
		var seen []string
		spy := delimiter.Func(func(tokens []string) []string {
			seen = append(seen, tokens...)
			return tokens
		})
		delimiter.Apply([]delimiter.Delimiter{delimiter.Comma(), spy}, []string{"1,2"})
		assert.Equal(t, []string{"1", "2"}, seen)
	})

	t.Run("drops empty and whitespace tokens", func(t *testing.T) {
		t.Parallel()
		delims := []delimiter.Delimiter{delimiter.Comma()}
		got := delimiter.Apply(delims, []string{"1,, ,\t,2,"})
		assert.Equal(t, []string{"1", "2"}, got)
	})

	t.Run("unconfigured separator survives", func(t *testing.T) {
		t.Parallel()
		got := delimiter.Apply([]delimiter.Delimiter{delimiter.Comma()}, []string{"1 2"})
		assert.Equal(t, []string{"1 2"}, got)
	})
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		delims   []delimiter.Delimiter
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			delims:   []delimiter.Delimiter{delimiter.Comma(), delimiter.Space()},
			expected: []string{},
		},
		{
			name:     "single space",
			input:    " ",
			delims:   []delimiter.Delimiter{delimiter.Comma(), delimiter.Space()},
			expected: []string{},
		},
		{
			name:     "comma only",
			input:    "1,2,3",
			delims:   []delimiter.Delimiter{delimiter.Comma()},
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "mixed",
			input:    "1 2 3 4 5 6 7 8 9 10,11,101",
			delims:   []delimiter.Delimiter{delimiter.Comma(), delimiter.Space()},
			expected: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "101"},
		},
		{
			name:     "no delimiters",
			input:    "1,2",
			delims:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, delimiter.Tokenize(tt.input, tt.delims...))
		})
	}
}
