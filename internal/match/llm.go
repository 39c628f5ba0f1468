package match

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const systemPrompt = `You match human-readable AI model names to canonical API identifiers.
You are given a list of display names taken from a pricing page and a list of
candidate API identifiers. For every display name, pick the identifier it
refers to, or omit the name if no candidate fits. Never invent identifiers.
Respond with a JSON object of the form
{"matches": [{"displayName": "...", "apiId": "..."}]}.`

// matchLLM runs the full resolution pipeline: prompt the backend with the
// prefiltered candidates, keep the pairs that name real identifiers, resolve
// the leftovers deterministically, and if the whole thing came up empty or
// the backend call failed terminally, fall back to the deterministic result
// over all names. It never fails; the worst case is whatever normalization
// alone can find.
func (m *Matcher) matchLLM(ctx context.Context, identifiers, names []string, ix *Index) []string {
	candidates := Prefilter(identifiers, names)

	raw, err := m.completeWithRetry(ctx, systemPrompt, userPrompt(names, candidates))
	if err != nil {
		m.logger.Warn("backend failed, falling back to normalization", "err", err)
		return Deterministic(names, ix)
	}

	rs := newResultSet()
	matched := map[string]struct{}{}
	for _, p := range parsePairs(raw, m.logger) {
		id, ok := ix.Canonical(p.APIID)
		if !ok {
			m.logger.Warn("backend returned unknown identifier, dropping",
				"displayName", p.DisplayName, "apiId", p.APIID)
			continue
		}
		rs.add(id)
		matched[p.DisplayName] = struct{}{}
	}

	var unmatched []string
	for _, name := range names {
		if _, ok := matched[name]; !ok {
			unmatched = append(unmatched, name)
		}
	}
	if len(unmatched) > 0 {
		m.logger.Info("resolving names the backend missed", "count", len(unmatched))
		rs.addAll(Deterministic(unmatched, ix))
	}

	if rs.empty() {
		// Total backend washout. Start over from the full name list so
		// normalization gets every chance it would have had without it.
		return Deterministic(names, ix)
	}
	return rs.ids()
}

func userPrompt(names, candidates []string) string {
	var sb strings.Builder
	sb.WriteString("Display names:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	sb.WriteString("\nCandidate identifiers:\n")
	for _, id := range candidates {
		fmt.Fprintf(&sb, "- %s\n", id)
	}
	return sb.String()
}

// completeWithRetry calls the backend up to cfg.MaxRetries times, doubling
// the delay between attempts. Non-retryable failures surface immediately;
// running out of attempts surfaces an [ExhaustedError].
func (m *Matcher) completeWithRetry(ctx context.Context, system, user string) (string, error) {
	delay := m.cfg.InitialDelay
	var last error
	for attempt := 1; attempt <= m.cfg.MaxRetries; attempt++ {
		if attempt > 1 {
			m.logger.Info("retrying backend call", "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
		raw, err := m.completer.Complete(ctx, system, user)
		if err == nil {
			return raw, nil
		}
		if !retryable(err) {
			return "", err
		}
		last = err
	}
	return "", &ExhaustedError{Attempts: m.cfg.MaxRetries, Last: last}
}
