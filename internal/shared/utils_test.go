package shared

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"8 bytes yields 16 hex chars", 8, 16},
		{"16 bytes yields 32 hex chars", 16, 32},
		{"zero size yields empty string", 0, 0},
	}

	re := regexp.MustCompile(`^[0-9a-f]*$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := MakeRandHexString(tt.size)
			require.NoError(t, err)
			assert.Len(t, s, tt.want)
			assert.Regexp(t, re, s)
		})
	}
}

func TestMakeRandHexString_Unique(t *testing.T) {
	a, err := MakeRandHexString(8)
	require.NoError(t, err)
	b, err := MakeRandHexString(8)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
