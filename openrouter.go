package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// modelsResponse mirrors the provider's /models payload. Pricing comes back
// as decimal strings; "0" on both prompt and completion marks a free tier.
type modelsResponse struct {
	Data []struct {
		ID      string `json:"id"`
		Pricing struct {
			Prompt     string `json:"prompt"`
			Completion string `json:"completion"`
		} `json:"pricing"`
	} `json:"data"`
}

// fetchIdentifierUniverse returns every model identifier the provider knows,
// in whatever order the endpoint serves them, plus the count of identifiers
// the provider itself prices at zero, kept as an artifact diagnostic.
func fetchIdentifierUniverse(ctx context.Context, url, apiKey string, client *http.Client) ([]string, int, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("models request: %w", err)
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("models request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("models request: unexpected status %s", resp.Status)
	}

	var result modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("models response: %w", err)
	}

	ids := make([]string, 0, len(result.Data))
	freePriced := 0
	for _, m := range result.Data {
		if m.ID == "" {
			continue
		}
		ids = append(ids, m.ID)
		if m.Pricing.Prompt == "0" && m.Pricing.Completion == "0" {
			freePriced++
		}
	}
	return ids, freePriced, nil
}
