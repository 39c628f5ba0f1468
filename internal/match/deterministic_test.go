package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	t.Run("plain normalization", func(t *testing.T) {
		ix := BuildIndex([]string{"gpt-4", "claude-3", "gemini-pro"})
		got := Deterministic([]string{"GPT 4", "Claude 3"}, ix)
		require.ElementsMatch(t, []string{"gpt-4", "claude-3"}, got)
	})

	t.Run("free suffix rule", func(t *testing.T) {
		ix := BuildIndex([]string{"big-pickle", "minimax-m2.1-free", "glm-4.7-free"})
		got := Deterministic([]string{"Big Pickle", "MiniMax M2.1", "GLM 4.7"}, ix)
		require.ElementsMatch(t,
			[]string{"big-pickle", "minimax-m2.1-free", "glm-4.7-free"}, got)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		ix := BuildIndex([]string{"Model-A", "MODEL-B", "model-c"})
		got := Deterministic([]string{"MODEL A", "model b", "Model C"}, ix)
		require.Len(t, got, 3)
	})

	t.Run("unmatched names dropped", func(t *testing.T) {
		ix := BuildIndex([]string{"model-a", "model-b"})
		got := Deterministic([]string{"Model A", "Unknown", "Missing"}, ix)
		require.Equal(t, []string{"model-a"}, got)
	})

	t.Run("duplicate names collapse", func(t *testing.T) {
		ix := BuildIndex([]string{"model-a"})
		got := Deterministic([]string{"Model A", "model a", "MODEL-A"}, ix)
		require.Equal(t, []string{"model-a"}, got)
	})

	t.Run("empty inputs", func(t *testing.T) {
		require.Empty(t, Deterministic(nil, BuildIndex(nil)))
		require.Empty(t, Deterministic([]string{"anything"}, BuildIndex(nil)))
		require.Empty(t, Deterministic(nil, BuildIndex([]string{"model-a"})))
	})

	t.Run("free suffix only via suffix lookup", func(t *testing.T) {
		// "glm4.7" alone must not hit "glm-4.7-free"; only the "+free"
		// augmented key may.
		ix := BuildIndex([]string{"glm-4.7-free"})
		_, ok := ix.Lookup(Normalize("GLM 4.7"))
		require.False(t, ok)
		require.Equal(t, []string{"glm-4.7-free"}, Deterministic([]string{"GLM 4.7"}, ix))
	})
}

func TestDeterministicSoundness(t *testing.T) {
	universe := []string{"gpt-4", "claude-3", "glm-4.7-free", "big-pickle"}
	ix := BuildIndex(universe)
	got := Deterministic([]string{"GPT 4", "GLM 4.7", "Nonsense", "big pickle"}, ix)
	for _, id := range got {
		require.Contains(t, universe, id)
	}
}
