package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"
)

// Artifact is the published free-model snapshot: the resolved identifiers
// plus enough metadata to judge where they came from and how complete the
// run was.
type Artifact struct {
	Models      []string       `json:"models"`
	GeneratedAt time.Time      `json:"generated_at"`
	SourceURL   string         `json:"source_url"`
	Counts      ArtifactCounts `json:"counts"`
}

// ArtifactCounts are raw diagnostics from the scrape run.
type ArtifactCounts struct {
	Universe   int `json:"universe"`
	FreePriced int `json:"free_priced"`
	Extracted  int `json:"extracted"`
	Matched    int `json:"matched"`
}

// newArtifact wraps resolved identifiers into an artifact. The model list is
// sorted so the published file is deterministic run to run.
func newArtifact(models []string, sourceURL string, counts ArtifactCounts) Artifact {
	sorted := make([]string, len(models))
	copy(sorted, models)
	sort.Strings(sorted)
	counts.Matched = len(sorted)
	return Artifact{
		Models:      sorted,
		GeneratedAt: time.Now().UTC(),
		SourceURL:   sourceURL,
		Counts:      counts,
	}
}

func (a Artifact) marshal() ([]byte, error) {
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal artifact: %w", err)
	}
	return append(out, '\n'), nil
}

// writeArtifact serializes the artifact to path, or stdout for "-".
func writeArtifact(path string, a Artifact) error {
	out, err := a.marshal()
	if err != nil {
		return err
	}
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(out)
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil { //nolint:gosec,mnd
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// fetchArtifact downloads a published artifact.
func fetchArtifact(ctx context.Context, url string, client *http.Client) (Artifact, error) {
	var a Artifact
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return a, fmt.Errorf("artifact request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return a, fmt.Errorf("artifact request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return a, fmt.Errorf("artifact request: unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		return a, fmt.Errorf("artifact response: %w", err)
	}
	return a, nil
}
