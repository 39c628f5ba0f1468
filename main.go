package main

import (
	"errors"
	"fmt"
	"os"

	timea "github.com/caarlos0/timea.go"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"freesync/internal/cache"
)

// Version is set at build time.
var Version = "dev"

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var config Config

var rootCmd = &cobra.Command{
	Use:           "freesync",
	Short:         "Keep a local tool config in sync with the provider's free models",
	Long:          "Freesync resolves the free-tier model names on a provider's pricing page\nagainst its API identifiers and keeps a local JSON config in sync with the result.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		config, err = ensureConfig()
		if err != nil {
			return err
		}
		if config.Quiet {
			logger.SetLevel(log.WarnLevel)
		}
		return nil
	},
}

var scrapeOut string

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Resolve the pricing page's free models and publish the artifact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runScrape(cmd.Context(), config, scrapeOut)
	},
}

var (
	applyForce  bool
	applyConfig string
	applyKey    string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Fetch the published artifact and patch the target config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config
		if applyConfig != "" {
			cfg.TargetConfig = applyConfig
		}
		if applyKey != "" {
			cfg.TargetKey = applyKey
		}
		return runApply(cmd.Context(), cfg, applyForce)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the local artifact cache state",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return runStatus(config)
	},
}

func runStatus(cfg Config) error {
	s := stdoutStyles()
	ec, err := cache.NewExpiring[Artifact](cfg.CachePath)
	if err != nil {
		return syncError{err, "Could not open the artifact cache."}
	}
	expiry, err := ec.Expiry(artifactCacheID)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Println(s.Comment.Render("artifact cache is empty; run `freesync apply`"))
		return nil
	}
	if err != nil {
		return syncError{err, "Could not inspect the artifact cache."}
	}

	var art Artifact
	if err := readCachedArtifact(ec, &art); err != nil {
		return syncError{err, "Could not read the cached artifact."}
	}
	if !isOutputTTY() {
		for _, m := range art.Models {
			fmt.Println(m)
		}
		return nil
	}
	fmt.Printf(
		"%d free models, generated %s, cache expires %s\n",
		len(art.Models),
		s.Timeago.Render(timea.Of(art.GeneratedAt)),
		s.Timeago.Render(timea.Of(expiry)),
	)
	return nil
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeOut, "out", "o", "-", "Artifact destination; - writes to stdout")
	applyCmd.Flags().BoolVarP(&applyForce, "force", "f", false, "Refetch even if the cached artifact is fresh")
	applyCmd.Flags().StringVar(&applyConfig, "config", "", "Target config file; overrides target-config")
	applyCmd.Flags().StringVar(&applyKey, "key", "", "Dot-separated key to patch; overrides target-key")
	rootCmd.SetUsageFunc(usageFunc)
	rootCmd.AddCommand(scrapeCmd, applyCmd, statusCmd, manCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
