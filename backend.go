package main

import (
	"freesync/internal/match"
)

// completerForConfig builds the language-model backend from settings. A nil
// Completer with no error means no credential is configured; matching then
// degrades to normalization only.
func completerForConfig(cfg Config) (match.Completer, error) {
	key := cfg.apiKey()
	if key == "" {
		return nil, nil
	}
	switch cfg.API {
	case "", "openrouter", "openai":
		return NewOpenAIClient(OpenAIClientConfig{
			AuthToken:   key,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			ServiceTier: cfg.ServiceTier,
		}), nil
	case "anthropic":
		return NewAnthropicClient(AnthropicClientConfig{
			AuthToken: key,
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
		}), nil
	default:
		return nil, newUserErrorf("unknown api %q; valid values are openrouter and anthropic", cfg.API)
	}
}
