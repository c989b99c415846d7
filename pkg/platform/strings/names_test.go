package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNamePart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty becomes blank",
			input:    "",
			expected: " ",
		},
		{
			name:     "single letter upper-cased",
			input:    "a",
			expected: "A",
		},
		{
			name:     "single space kept",
			input:    " ",
			expected: " ",
		},
		{
			name:     "mixed case",
			input:    "iVANOV",
			expected: "Ivanov",
		},
		{
			name:     "surrounding and internal spaces stripped",
			input:    "  ivan ov ",
			expected: "Ivanov",
		},
		{
			name:     "tabs and newlines stripped",
			input:    "\tpetrov\n",
			expected: "Petrov",
		},
		{
			name:     "only whitespace becomes blank",
			input:    "   ",
			expected: " ",
		},
		{
			name:     "cyrillic",
			input:    "иВАНОВ",
			expected: "Иванов",
		},
		{
			name:     "single cyrillic letter",
			input:    "я",
			expected: "Я",
		},
		{
			name:     "hyphenated keeps only the first rune upper",
			input:    "rimsky-KORSAKOV",
			expected: "Rimsky-korsakov",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNamePart(tt.input))
		})
	}
}

func TestJoinNameParts(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "three parts",
			parts:    []string{"Ivanov", "Ivan", "Ivanovich"},
			expected: "Ivanov Ivan Ivanovich",
		},
		{
			name:     "blank middle keeps inner spacing",
			parts:    []string{"Ivanov", " ", "A"},
			expected: "Ivanov   A",
		},
		{
			name:     "blank tail trimmed",
			parts:    []string{"Ivanov", "Ivan", " "},
			expected: "Ivanov Ivan",
		},
		{
			name:     "all blank",
			parts:    []string{" ", " ", " "},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinNameParts(tt.parts...))
		})
	}
}
