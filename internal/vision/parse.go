package vision

import (
	"encoding/json"
	"strings"
)

const maxTitleLen = 60

// Result is the structured outcome of an image analysis.
type Result struct {
	Title   string   `json:"title"`
	Caption string   `json:"caption"`
	Tags    []string `json:"tags"`
}

// FallbackResult is the fixed substitute used when the classifier's output
// cannot be parsed. A metadata record is always produced, even for
// malformed output.
func FallbackResult() Result {
	return Result{
		Title:   "Untitled Image",
		Caption: "Image analysis unavailable",
		Tags:    []string{"image"},
	}
}

// ParseResult parses the classifier's raw text response. Markdown code
// fences are stripped before structural parsing. If parsing fails or the
// title is missing, the fallback result is returned and ok is false.
func ParseResult(raw string) (Result, bool) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var res Result
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return FallbackResult(), false
	}

	res = sanitize(res)
	if res.Title == "" {
		return FallbackResult(), false
	}
	return res, true
}

// sanitize enforces the structural constraints the prompt asks for, since
// the model does not always honor them.
func sanitize(res Result) Result {
	res.Title = strings.TrimSpace(res.Title)
	if len(res.Title) > maxTitleLen {
		res.Title = res.Title[:maxTitleLen]
	}
	res.Caption = strings.TrimSpace(res.Caption)

	tags := make([]string, 0, len(res.Tags))
	for _, tag := range res.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		tag = strings.ReplaceAll(tag, " ", "")
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	res.Tags = tags

	return res
}
