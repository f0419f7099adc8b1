package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medigraph/app/config"

	"github.com/sashabaranov/go-openai"
)

const maxCallDuration = 30 * time.Second

// Completer is the single capability the pipeline needs from a hosted
// language model. Tests substitute a deterministic stub.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

type Client struct {
	client *openai.Client
	model  string
}

var _ Completer = (*Client)(nil)

func NewClient(cfg config.ModelConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.Token)

	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: maxCallDuration,
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxCallDuration)
	defer cancel()

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	aiResponse, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:               c.model,
			Messages:            messages,
			MaxCompletionTokens: req.MaxTokens,
			Temperature:         req.Temperature,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	result := aiResponse.Choices[0].Message.Content
	return strings.TrimSpace(result), nil
}
