package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	for input, want := range map[string]string{
		"GPT 4":            "gpt4",
		"gpt-4":            "gpt4",
		"MiniMax M2.1":     "minimaxm2.1",
		"minimax-m2.1":     "minimaxm2.1",
		"glm-4.7-free":     "glm4.7free",
		"  Claude 3 !!":    "claude3",
		"":                 "",
		"---///!!!":        "",
		"Llama-3.1-70B":    "llama3.170b",
		"ÜBER modell":      "bermodell",
		"DeepSeek R1 0528": "deepseekr10528",
	} {
		require.Equal(t, want, Normalize(input), "input: %q", input)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"GPT 4", "glm-4.7-free", "Claude 3.5 Sonnet", "", "a.b.c"} {
		require.Equal(t, Normalize(s), Normalize(Normalize(s)))
	}
}
