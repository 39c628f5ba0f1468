package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"freesync/internal/match"
)

// OpenAIClientConfig represents the configuration for an OpenAI-compatible
// backend, OpenRouter included.
type OpenAIClientConfig struct {
	AuthToken   string
	BaseURL     string
	Model       string
	ServiceTier string
	HTTPClient  *http.Client
}

// OpenAIClient adapts an OpenAI-compatible chat-completions endpoint to
// [match.Completer], asking for a JSON-object response.
type OpenAIClient struct {
	client      openai.Client
	model       string
	serviceTier string
}

var _ match.Completer = (*OpenAIClient)(nil)

// NewOpenAIClient creates a new [OpenAIClient] with the given configuration.
func NewOpenAIClient(config OpenAIClientConfig) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(config.AuthToken),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	if config.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(config.HTTPClient))
	}
	return &OpenAIClient{
		client:      openai.NewClient(opts...),
		model:       config.Model,
		serviceTier: config.ServiceTier,
	}
}

// Complete implements match.Completer.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
	if c.serviceTier != "" {
		params.ServiceTier = openai.ChatCompletionNewParamsServiceTier(c.serviceTier)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &match.BackendError{StatusCode: apierr.StatusCode, Err: err}
		}
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "{}", nil
	}
	return resp.Choices[0].Message.Content, nil
}
