package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"freesync/internal/cache"
)

const artifactCacheID = "artifact"

// cachedArtifact returns the published artifact, preferring the local TTL
// cache. force bypasses the cache; fresh downloads are cached for the
// configured TTL.
func cachedArtifact(ctx context.Context, cfg Config, force bool) (Artifact, error) {
	var art Artifact
	ttl, err := cfg.cacheTTL()
	if err != nil {
		return art, err
	}
	ec, err := cache.NewExpiring[Artifact](cfg.CachePath)
	if err != nil {
		return art, syncError{err, "Could not open the artifact cache."}
	}

	if !force {
		err := readCachedArtifact(ec, &art)
		if err == nil {
			logger.Debug("artifact served from cache")
			return art, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("unreadable artifact cache, refetching", "err", err)
		}
	}

	art, err = fetchArtifact(ctx, cfg.ArtifactURL, nil)
	if err != nil {
		return art, syncError{err, "Could not fetch the published artifact."}
	}
	expiresAt := time.Now().Add(ttl).Unix()
	if err := ec.Write(artifactCacheID, expiresAt, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(art)
	}); err != nil {
		logger.Warn("could not cache artifact", "err", err)
	}
	return art, nil
}

// runApply is the local half: fetch the artifact and patch the target
// configuration file's model-list key.
func runApply(ctx context.Context, cfg Config, force bool) error {
	if cfg.ArtifactURL == "" {
		return newUserErrorf("artifact-url is not configured")
	}
	if cfg.TargetConfig == "" {
		return newUserErrorf("target-config is not configured")
	}
	art, err := cachedArtifact(ctx, cfg, force)
	if err != nil {
		return err
	}
	if err := patchConfigFile(cfg.TargetConfig, cfg.TargetKey, art.Models); err != nil {
		return err
	}
	logger.Info("patched config", "path", cfg.TargetConfig, "key", cfg.TargetKey, "models", len(art.Models))
	return nil
}

// patchConfigFile sets the dot-separated key in the JSON file at path to the
// given model list, creating intermediate objects as needed and leaving every
// other key alone. The write goes through a temp file and rename.
func patchConfigFile(path, key string, models []string) error {
	if key == "" {
		return newUserErrorf("target-key is not configured")
	}

	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Patching a missing file creates it.
	case err != nil:
		return syncError{err, "Could not read the target config."}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return syncError{err, "Target config is not valid JSON."}
		}
	}

	if err := setKeyPath(doc, strings.Split(key, "."), models); err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return syncError{err, "Could not serialize the target config."}
	}
	out = append(out, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil { //nolint:gosec,mnd
		return syncError{err, "Could not write the target config."}
	}
	if err := os.Rename(tmp, path); err != nil {
		return syncError{err, "Could not replace the target config."}
	}
	return nil
}

func setKeyPath(doc map[string]any, path []string, value any) error {
	for i, part := range path {
		if part == "" {
			return newUserErrorf("target-key has an empty segment")
		}
		if i == len(path)-1 {
			doc[part] = value
			return nil
		}
		next, ok := doc[part].(map[string]any)
		if !ok {
			if _, exists := doc[part]; exists {
				return newUserErrorf("target-key segment %q is not an object in the target config", part)
			}
			next = map[string]any{}
			doc[part] = next
		}
		doc = next
	}
	return nil
}

func readCachedArtifact(ec *cache.ExpiringCache[Artifact], art *Artifact) error {
	return ec.Read(artifactCacheID, func(r io.Reader) error {
		return json.NewDecoder(r).Decode(art)
	})
}
