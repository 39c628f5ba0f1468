package match

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// pair is one resolved (display name, identifier) claim from the backend.
type pair struct {
	DisplayName string `json:"displayName"`
	APIID       string `json:"apiId"`
}

const excerptLen = 200

// parsePairs extracts match pairs from the raw backend response. Three
// shapes are accepted, in order: an object with a "matches" array, a bare
// array, and an object whose first array-valued key holds the pairs.
// Anything else is zero matches, never an error; the caller's fallback
// logic absorbs it.
func parsePairs(raw string, logger *log.Logger) []pair {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var ps []pair
		if err := json.Unmarshal([]byte(trimmed), &ps); err != nil {
			logger.Warn("unparseable backend response", "excerpt", excerpt(trimmed))
			return nil
		}
		return validPairs(ps)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		logger.Warn("unparseable backend response", "excerpt", excerpt(trimmed))
		return nil
	}
	if v, ok := obj["matches"]; ok {
		var ps []pair
		if err := json.Unmarshal(v, &ps); err != nil {
			logger.Warn("malformed matches array", "excerpt", excerpt(trimmed))
			return nil
		}
		return validPairs(ps)
	}
	// No "matches" key. Take the first key whose value is a pair array;
	// keys are walked in sorted order so the choice is deterministic.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var ps []pair
		if err := json.Unmarshal(obj[k], &ps); err == nil {
			return validPairs(ps)
		}
	}
	logger.Warn("unrecognized backend response shape", "excerpt", excerpt(trimmed))
	return nil
}

// validPairs drops elements that do not conform to the pair schema.
func validPairs(ps []pair) []pair {
	out := ps[:0]
	for _, p := range ps {
		if strings.TrimSpace(p.DisplayName) == "" || strings.TrimSpace(p.APIID) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func excerpt(s string) string {
	if len(s) <= excerptLen {
		return s
	}
	return s[:excerptLen] + "…"
}
