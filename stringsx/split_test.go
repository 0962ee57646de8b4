package stringsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitX(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		want  []string
	}{
		{"empty input", "", ",", nil},
		{"space separator", "hello world", " ", []string{"hello", "world"}},
		{"separator not found", "abc", ",", []string{"abc"}},
		{"multiple separators", "a,b,c", ",", []string{"a", "b", "c"}},
		{"adjacent separators", "a,,c", ",", []string{"a", "", "c"}},
		{"trailing separator", "a,b,", ",", []string{"a", "b", ""}},
		{"multi-character separator", "a::b::c", "::", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitX(tt.input, tt.sep))
		})
	}
}
