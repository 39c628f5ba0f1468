package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompleterForConfig(t *testing.T) {
	t.Run("no credential means no backend", func(t *testing.T) {
		c, err := completerForConfig(Config{API: "openrouter"})
		require.NoError(t, err)
		require.Nil(t, c)
	})

	t.Run("openrouter", func(t *testing.T) {
		t.Setenv("FREESYNC_TEST_KEY", "sk-test")
		c, err := completerForConfig(Config{API: "openrouter", APIKeyEnv: "FREESYNC_TEST_KEY"})
		require.NoError(t, err)
		require.IsType(t, &OpenAIClient{}, c)
	})

	t.Run("anthropic", func(t *testing.T) {
		t.Setenv("FREESYNC_TEST_KEY", "sk-test")
		c, err := completerForConfig(Config{API: "anthropic", APIKeyEnv: "FREESYNC_TEST_KEY"})
		require.NoError(t, err)
		require.IsType(t, &AnthropicClient{}, c)
	})

	t.Run("unknown api", func(t *testing.T) {
		t.Setenv("FREESYNC_TEST_KEY", "sk-test")
		_, err := completerForConfig(Config{API: "carrier-pigeon", APIKeyEnv: "FREESYNC_TEST_KEY"})
		require.ErrorContains(t, err, "unknown api")
	})
}
