// Package match resolves human-readable model display names against the
// canonical API identifier universe. Normalization does most of the work; a
// language model handles the names normalization cannot, and every backend
// problem degrades back to normalization instead of failing the run.
package match

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Completer is the language-model backend. Implementations send one
// system/user prompt pair and return the raw response content, wrapping API
// failures in [BackendError].
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config carries the knobs for one matcher instance. Zero values fall back
// to the defaults below.
type Config struct {
	// MaxRetries bounds attempts against the backend per call.
	MaxRetries int
	// InitialDelay is the backoff before the second attempt; it doubles
	// on every further one.
	InitialDelay time.Duration
}

const (
	defaultMaxRetries   = 3
	defaultInitialDelay = time.Second
)

// Matcher resolves display names to identifiers. A nil completer means no
// backend credential is configured; matching then runs on normalization
// alone.
type Matcher struct {
	cfg       Config
	completer Completer
	logger    *log.Logger
}

// New builds a Matcher. completer and logger may both be nil.
func New(cfg Config, completer Completer, logger *log.Logger) *Matcher {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = defaultInitialDelay
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Matcher{cfg: cfg, completer: completer, logger: logger}
}

// Match resolves names against identifiers, preferring the language model
// and degrading to [Deterministic] whenever the backend is absent, fails, or
// returns nothing usable. The result is a deduplicated subset of
// identifiers in resolution order; callers wanting a stable external order
// must sort it. The only error it returns is [InvalidInputError].
func (m *Matcher) Match(ctx context.Context, identifiers, names []string) ([]string, error) {
	if err := validate(identifiers, names); err != nil {
		return nil, err
	}
	ix := BuildIndex(identifiers)
	if len(names) == 0 || len(identifiers) == 0 {
		return []string{}, nil
	}
	if m.completer == nil {
		m.logger.Info("no backend credential, matching on normalization only")
		return Deterministic(names, ix), nil
	}
	return m.matchLLM(ctx, identifiers, names, ix), nil
}

// MatchDeterministic is the normalization-only entry point. Same validation
// contract as [Matcher.Match].
func (m *Matcher) MatchDeterministic(identifiers, names []string) ([]string, error) {
	if err := validate(identifiers, names); err != nil {
		return nil, err
	}
	return Deterministic(names, BuildIndex(identifiers)), nil
}
