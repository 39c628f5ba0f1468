package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/sync/errgroup"

	"freesync/internal/match"
)

// extractNamesJS walks the rendered pricing page and collects the heading
// text of every model card or table row whose visible pricing is zero. The
// page is a client-rendered React app, so this runs after hydration.
const extractNamesJS = `(() => {
	const names = new Set();
	const isFree = (text) => /\$0(\.0+)?(\s*\/|\s|$)|(^|\s)free(\s|$)/i.test(text);
	for (const row of document.querySelectorAll('tr, [class*="card"], li')) {
		const text = row.textContent || '';
		if (!isFree(text)) continue;
		const heading = row.querySelector('h1, h2, h3, h4, a[href*="/models/"], a[href*="model="], [class*="name"]');
		if (!heading) continue;
		const name = heading.textContent.trim();
		if (name) names.add(name);
	}
	return Array.from(names);
})()`

// extractDisplayNames drives a headless browser over the pricing page and
// returns the display names of the free-tier offerings. The list is trimmed
// and deduplicated but otherwise raw; resolution happens in internal/match.
func extractDisplayNames(ctx context.Context, url string, timeout time.Duration) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var raw []string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(2*time.Second), // let the client-side render settle
		chromedp.Evaluate(extractNamesJS, &raw),
	)
	if err != nil {
		return nil, fmt.Errorf("extract display names: %w", err)
	}

	seen := map[string]struct{}{}
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// runScrape is the remote half: fetch the identifier universe, extract the
// free-tier display names, resolve one against the other, and publish the
// artifact.
func runScrape(ctx context.Context, cfg Config, out string) error {
	delay, err := cfg.initialDelay()
	if err != nil {
		return err
	}
	browserTimeout, err := cfg.browserTimeout()
	if err != nil {
		return err
	}

	var (
		universe   []string
		freePriced int
		names      []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		universe, freePriced, err = fetchIdentifierUniverse(gctx, cfg.ModelsURL, cfg.apiKey(), nil)
		return err
	})
	g.Go(func() error {
		var err error
		names, err = extractDisplayNames(gctx, cfg.PricingURL, browserTimeout)
		return err
	})
	if err := g.Wait(); err != nil {
		return syncError{err, "Could not gather inputs for matching."}
	}
	logger.Info("gathered inputs", "universe", len(universe), "names", len(names))

	completer, err := completerForConfig(cfg)
	if err != nil {
		return err
	}
	m := match.New(match.Config{
		MaxRetries:   cfg.MaxRetries,
		InitialDelay: delay,
	}, completer, logger)

	models, err := m.Match(ctx, universe, names)
	if err != nil {
		return syncError{err, "Matching rejected its inputs."}
	}

	art := newArtifact(models, cfg.PricingURL, ArtifactCounts{
		Universe:   len(universe),
		FreePriced: freePriced,
		Extracted:  len(names),
	})
	logger.Info("resolved free models", "matched", len(art.Models))
	return writeArtifact(out, art)
}
