package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefilter(t *testing.T) {
	t.Run("token overlap", func(t *testing.T) {
		got := Prefilter(
			[]string{"gpt-4", "claude-3", "gemini-pro"},
			[]string{"GPT 4"},
		)
		require.Contains(t, got, "gpt-4")
		require.NotContains(t, got, "gemini-pro")
	})

	t.Run("free-suffixed always included", func(t *testing.T) {
		got := Prefilter(
			[]string{"glm-4.7-free", "totally-unrelated-free", "other-model"},
			[]string{"Some Name"},
		)
		require.Contains(t, got, "glm-4.7-free")
		require.Contains(t, got, "totally-unrelated-free")
		require.NotContains(t, got, "other-model")
	})

	t.Run("numeric tokens with dots", func(t *testing.T) {
		got := Prefilter([]string{"minimax-m2.1"}, []string{"MiniMax M2.1"})
		require.Contains(t, got, "minimax-m2.1")
	})

	t.Run("single-letter runs ignored", func(t *testing.T) {
		// "A" tokenizes to nothing; only two-plus letter runs count.
		got := Prefilter([]string{"b-c-d"}, []string{"A"})
		require.Empty(t, got)
	})

	t.Run("empty candidate set is valid", func(t *testing.T) {
		require.Empty(t, Prefilter([]string{"alpha-one"}, []string{"zz 99"}))
		require.Empty(t, Prefilter(nil, []string{"anything"}))
	})
}

// Any identifier equal to a display name up to case and punctuation must
// survive the prefilter.
func TestPrefilterSoundness(t *testing.T) {
	universe := []string{"gpt-4", "claude-3", "glm-4.7-free", "llama-3.1-70b"}
	names := []string{"GPT 4", "Claude 3", "Llama 3.1 70B"}
	got := Prefilter(universe, names)
	ix := BuildIndex(got)
	for _, name := range names {
		_, ok := ix.Lookup(Normalize(name))
		require.True(t, ok, "prefilter dropped exact match for %q", name)
	}
}
