package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "single element",
			input:    []string{"foo"},
			expected: []string{"foo"},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  foo  ", "bar  ", "  baz"},
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"foo", "bar", "foo", "baz", "bar"},
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"foo", "", "  ", "bar"},
			expected: []string{"foo", "bar"},
		},
		{
			name:     "combined: trim, dedupe, remove empty",
			input:    []string{"  foo ", "bar", "foo", "", "  ", "bar"},
			expected: []string{"foo", "bar"},
		},
		{
			name:     "preserves case",
			input:    []string{"Foo", "foo", "FOO"},
			expected: []string{"Foo", "foo", "FOO"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupeAndTrim(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "jimenez", Fold(" Jiménez "))
	assert.Equal(t, "nunez", Fold("NÚÑEZ"))
	assert.Equal(t, "capacitacion", Fold("CAPACITACIÓN"))
	assert.Equal(t, "garcon", Fold("Garçon"))
	assert.Equal(t, "a la", Fold("À la"))
	assert.Equal(t, "jimenez", Fold("Jime\u0301nez"))
	assert.Equal(t, "ångstrom", Fold("Ångström"))
}

func TestFoldLettersPairUp(t *testing.T) {
	assert.Equal(t, len([]rune(AccentedLetters)), len([]rune(BaseLetters)))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "ana maria", CollapseSpaces("  ana   maria \t"))
}
