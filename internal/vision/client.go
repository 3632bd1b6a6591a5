// Package vision invokes the vision-language classifier and parses its
// free-text output into structured image metadata.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dmitrijs2005/pixelprompt/internal/common"
)

// analysisPrompt instructs the model to return only the structured result.
// The output is still treated as untrusted free text; see ParseResult.
const analysisPrompt = `Analyze this image and provide a JSON response with the following structure:
{
  "title": "A concise, descriptive title for the image (max 60 characters)",
  "caption": "A detailed caption describing the image content, style, and key elements (2-3 sentences)",
  "tags": ["tag1", "tag2", "tag3", "tag4", "tag5"]
}

Focus on:
- Visual content (objects, people, scenes, colors, composition)
- Style and mood
- SEO-friendly tags (use lowercase, no spaces, descriptive keywords)
- Return ONLY valid JSON, no markdown formatting or additional text`

// Client calls the OpenAI chat-completions API with a multimodal request.
// It is constructed once at cold start and is safe for concurrent use.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a classifier client for the given API key and model.
func NewClient(apiKey, model string) *Client {
	return &Client{api: openai.NewClient(apiKey), model: model}
}

// Describe sends the image to the classifier and returns its raw text
// response. Transport and API failures are classifier errors, eligible for
// redelivery by the triggering event system.
func (c *Client) Describe(ctx context.Context, image []byte, contentType string) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(image))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: analysisPrompt},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion failed: %v", common.ErrClassifier, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion response", common.ErrClassifier)
	}
	return resp.Choices[0].Message.Content, nil
}
