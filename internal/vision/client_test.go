package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pixelprompt/internal/common"
)

func newClientAgainst(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return &Client{api: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func TestDescribe_BuildsMultimodalRequest(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"` + strings.ReplaceAll(validJSON, `"`, `\"`) + `"}}]}`))
	}))
	defer srv.Close()

	c := newClientAgainst(t, srv)
	raw, err := c.Describe(context.Background(), []byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, validJSON, raw)

	assert.Equal(t, "gpt-4o-mini", captured["model"])

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)

	content, ok := messages[0].(map[string]any)["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 2)

	text := content[0].(map[string]any)
	assert.Equal(t, "text", text["type"])
	assert.Contains(t, text["text"], "ONLY valid JSON")

	image := content[1].(map[string]any)
	assert.Equal(t, "image_url", image["type"])
	url := image["image_url"].(map[string]any)["url"].(string)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"), "image must be passed as a base64 data URL")
}

func TestDescribe_APIErrorIsClassifierError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newClientAgainst(t, srv)
	_, err := c.Describe(context.Background(), []byte("img"), "image/jpeg")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrClassifier)
}

func TestDescribe_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newClientAgainst(t, srv)
	_, err := c.Describe(context.Background(), []byte("img"), "image/jpeg")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrClassifier)
}
