package llm

import (
	"context"
	"fmt"
	"strings"

	"ai-math-tutor/config"
	"ai-math-tutor/pkg/logger"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// Request describes one chat completion call. APIKey is supplied by the
// caller per request and never retained; the config key is only a fallback.
type Request struct {
	APIKey      string
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Complete performs a single chat-completion attempt and returns the
// trimmed assistant content. No retries; an upstream failure fails the call.
func Complete(ctx context.Context, req Request) (string, error) {
	key := req.APIKey
	if key == "" {
		key = config.Cfg.OpenAI.Key
	}
	if key == "" {
		return "", fmt.Errorf("missing openai key")
	}

	client := openai.NewClient(option.WithAPIKey(key))
	body := chatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
	}
	var out chatResponse
	if err := client.Post(ctx, "/chat/completions", body, &out); err != nil {
		logger.Error(err, "%v: chat completion failed", config.ModuleOpenAI)
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		logger.Errorf("%v: no choices returned", config.ModuleOpenAI)
		return "", fmt.Errorf("no choices returned")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
