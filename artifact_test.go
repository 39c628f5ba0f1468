package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/require"
)

func TestNewArtifact(t *testing.T) {
	a := newArtifact(
		[]string{"minimax-m2.1-free", "glm-4.7-free", "big-pickle"},
		"https://example.com/models?max_price=0",
		ArtifactCounts{Universe: 10, FreePriced: 3, Extracted: 3},
	)
	require.Equal(t, []string{"big-pickle", "glm-4.7-free", "minimax-m2.1-free"}, a.Models)
	require.Equal(t, 3, a.Counts.Matched)
	require.False(t, a.GeneratedAt.IsZero())
	require.Equal(t, time.UTC, a.GeneratedAt.Location())
}

func TestNewArtifactEmpty(t *testing.T) {
	a := newArtifact(nil, "https://example.com", ArtifactCounts{})
	require.NotNil(t, a.Models)
	require.Empty(t, a.Models)
	require.Zero(t, a.Counts.Matched)
}

func TestArtifactGolden(t *testing.T) {
	a := Artifact{
		Models:      []string{"glm-4.7-free", "minimax-m2.1-free"},
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		SourceURL:   "https://example.com/models?max_price=0",
		Counts: ArtifactCounts{
			Universe:   4,
			FreePriced: 2,
			Extracted:  2,
			Matched:    2,
		},
	}
	out, err := a.marshal()
	require.NoError(t, err)
	golden.RequireEqual(t, out)
}

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "free-models.json")
	a := newArtifact([]string{"glm-4.7-free"}, "https://example.com", ArtifactCounts{})
	require.NoError(t, writeArtifact(path, a))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Artifact
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, a.Models, got.Models)

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetchArtifact(t *testing.T) {
	want := newArtifact([]string{"glm-4.7-free"}, "https://example.com", ArtifactCounts{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		out, err := want.marshal()
		require.NoError(t, err)
		_, _ = w.Write(out)
	}))
	defer srv.Close()

	got, err := fetchArtifact(t.Context(), srv.URL, nil)
	require.NoError(t, err)
	require.Equal(t, want.Models, got.Models)
	require.Equal(t, want.Counts, got.Counts)
}

func TestFetchArtifactServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := fetchArtifact(t.Context(), srv.URL, nil)
	require.ErrorContains(t, err, "unexpected status")
}
