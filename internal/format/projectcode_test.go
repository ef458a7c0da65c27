package format

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		code     string
		expected CodeKey
	}{
		{"SR1.2", CodeKey{Family: 0, Level: 1, Project: 2, Code: "SR1.2"}},
		{"EH2.3.1", CodeKey{Family: 0, Level: 2, Project: 3, Sub: 1, Code: "EH2.3.1"}},
		{"PS001", CodeKey{Family: 1, Code: "PS001"}},
		{"PS015", CodeKey{Family: 1, Code: "PS015"}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCode(tt.code))
		})
	}
}

func TestCodeLess_Ordering(t *testing.T) {
	// Pathway codes always precede presentation codes; numeric
	// components order numerically, not lexicographically.
	assert.True(t, CodeLess("SR1.2", "SR1.10"))
	assert.True(t, CodeLess("SR1.10", "SR2.1"))
	assert.True(t, CodeLess("SR2.1", "PS001"))
	assert.True(t, CodeLess("PS001", "PS015"))
	assert.False(t, CodeLess("PS001", "SR9.9"))
}

func TestCodeLess_StrictTotalOrder(t *testing.T) {
	codes := []string{"PS015", "EH2.3", "SR1.10", "PS001", "SR1.2", "SR2.1", "EH2.3.1"}

	for _, a := range codes {
		assert.False(t, CodeLess(a, a), "irreflexive: %s", a)
		for _, b := range codes {
			if a == b {
				continue
			}
			require.NotEqual(t, CodeLess(a, b), CodeLess(b, a),
				"asymmetric: %s vs %s", a, b)
		}
	}

	sort.Slice(codes, func(i, j int) bool { return CodeLess(codes[i], codes[j]) })
	assert.Equal(t,
		[]string{"SR1.2", "SR1.10", "SR2.1", "EH2.3", "EH2.3.1", "PS001", "PS015"},
		codes)
}
