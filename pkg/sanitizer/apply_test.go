package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gtinkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "no transforms",
			input:      " 73513537 ",
			transforms: nil,
			expected:   " 73513537 ",
		},
		{
			name:       "single transform",
			input:      " 73513537 ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "73513537",
		},
		{
			name:  "transforms run in order",
			input: "ean: 7351-3537",
			transforms: []func(string) string{
				sanitizer.ExtractNumbers,
				func(s string) string { return strings.TrimPrefix(s, "7") },
			},
			expected: "3513537",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ExtractNumbers)
	assert.Equal(t, "4006381333931", clean(" EAN 4006381 333931 "))
	assert.Equal(t, "", clean("   "))
}
