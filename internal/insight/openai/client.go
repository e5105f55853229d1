package openai

import (
	"context"
	"encoding/json"
	"fmt"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/shopsaathi/saathi/internal/insight"
)

const defaultModel = gopenai.GPT4oMini

// Client generates insights via the OpenAI chat completions API. The prompt
// asks for strict JSON, which is decoded into the structured reply the
// requester expects; anything that does not decode is an error, which the
// requester recovers into fallback text.
type Client struct {
	api   *gopenai.Client
	model string
}

// New builds a client. baseURL overrides the API endpoint (useful for
// compatible gateways and tests); model defaults to gpt-4o-mini.
func New(apiKey, baseURL, model string) *Client {
	cfg := gopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if model == "" {
		model = defaultModel
	}

	return &Client{api: gopenai.NewClientWithConfig(cfg), model: model}
}

func (c *Client) GenerateInsights(ctx context.Context, prompt string, _ insight.Language) (*insight.Reply, error) {
	resp, err := c.api.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &gopenai.ChatCompletionResponseFormat{
			Type: gopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []gopenai.ChatCompletionMessage{
			{
				Role:    gopenai.ChatMessageRoleSystem,
				Content: "You are a retail analytics assistant. Always reply with compact valid JSON.",
			},
			{
				Role:    gopenai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: no choices returned")
	}

	var reply insight.Reply
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &reply); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}

	return &reply, nil
}
