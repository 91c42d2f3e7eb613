package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		input    string
		expected string
	}{
		{name: "fits", max: 10, input: "short", expected: "short"},
		{name: "ellipsis", max: 8, input: "addressFrontIMG", expected: "addre..."},
		{name: "too narrow for ellipsis", max: 3, input: "abcdef", expected: "abc"},
		{name: "exact", max: 6, input: "abcdef", expected: "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.max, tt.input))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight(5, "ab"))
	assert.Equal(t, "abcdef", PadRight(3, "abcdef"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 variable", Pluralize(1, "variable"))
	assert.Equal(t, "0 variables", Pluralize(0, "variable"))
	assert.Equal(t, "3 pipelines", Pluralize(3, "pipeline"))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
	assert.Equal(t, 5, DisplayWidth("\x1b[1mhello\x1b[0m"))
}
