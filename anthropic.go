package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"freesync/internal/match"
)

const anthropicMaxTokens = 1024

// AnthropicClientConfig represents the configuration for the Anthropic API client.
type AnthropicClientConfig struct {
	AuthToken  string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// AnthropicClient adapts the Anthropic messages API to [match.Completer].
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

var _ match.Completer = (*AnthropicClient)(nil)

// NewAnthropicClient creates a new [AnthropicClient] with the given configuration.
func NewAnthropicClient(config AnthropicClientConfig) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(config.AuthToken),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimSuffix(config.BaseURL, "/v1")))
	}
	if config.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(config.HTTPClient))
	}
	return &AnthropicClient{
		client: anthropic.NewClient(opts...),
		model:  config.Model,
	}
}

// Complete implements match.Completer. The messages API has no JSON response
// mode; the system prompt's output contract has to do the work.
func (c *AnthropicClient) Complete(ctx context.Context, system, user string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			*anthropic.NewTextBlock(system).OfText,
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return "", &match.BackendError{StatusCode: apierr.StatusCode, Err: err}
		}
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			sb.WriteString(b.Text)
		}
	}
	if sb.Len() == 0 {
		return "{}", nil
	}
	return sb.String(), nil
}
