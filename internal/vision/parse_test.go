package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSON = `{"title":"A cat","caption":"A small cat sits on a windowsill.","tags":["cat","pet","window","cute","animal"]}`

func TestParseResult_PlainJSON(t *testing.T) {
	res, ok := ParseResult(validJSON)
	require.True(t, ok)
	assert.Equal(t, "A cat", res.Title)
	assert.Equal(t, "A small cat sits on a windowsill.", res.Caption)
	assert.Equal(t, []string{"cat", "pet", "window", "cute", "animal"}, res.Tags)
}

func TestParseResult_StripsCodeFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n" + validJSON + "\n```"},
		{"bare fence", "```\n" + validJSON + "\n```"},
		{"fence without newlines", "```json" + validJSON + "```"},
		{"surrounding whitespace", "  \n```json\n" + validJSON + "\n```\n  "},
	}

	want, ok := ParseResult(validJSON)
	require.True(t, ok)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := ParseResult(tt.raw)
			require.True(t, ok)
			assert.Equal(t, want, res, "fenced response must parse to the same result as unwrapped")
		})
	}
}

func TestParseResult_FallbackOnMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose", "Sure! Here is a description of your image."},
		{"empty", ""},
		{"truncated json", `{"title":"A cat","caption":`},
		{"missing title", `{"caption":"something","tags":["a"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := ParseResult(tt.raw)
			assert.False(t, ok)
			assert.Equal(t, FallbackResult(), res)
		})
	}
}

func TestParseResult_SanitizesOutput(t *testing.T) {
	long := "This title is far longer than sixty characters and must be truncated somewhere"
	raw := `{"title":"` + long + `","caption":"  padded  ","tags":["Urban Scene"," SUNSET ","","ok"]}`

	res, ok := ParseResult(raw)
	require.True(t, ok)
	assert.Len(t, res.Title, 60)
	assert.Equal(t, "padded", res.Caption)
	assert.Equal(t, []string{"urbanscene", "sunset", "ok"}, res.Tags)
}

func TestFallbackResult(t *testing.T) {
	res := FallbackResult()
	assert.Equal(t, "Untitled Image", res.Title)
	assert.Equal(t, "Image analysis unavailable", res.Caption)
	assert.Equal(t, []string{"image"}, res.Tags)
}
