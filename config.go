package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/duration"
	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

var help = map[string]string{
	"api":             "Language-model backend used for fuzzy matching (openrouter, anthropic).",
	"model":           "Model the backend uses to resolve display names.",
	"base-url":        "Base URL of the OpenAI-compatible backend.",
	"api-key-env":     "Environment variable holding the backend API key.",
	"service-tier":    "Service tier requested from the backend, if any.",
	"max-retries":     "Maximum number of attempts per backend call.",
	"initial-delay":   "Backoff before the second attempt; doubles each retry.",
	"models-url":      "Endpoint listing every known model identifier.",
	"pricing-url":     "Pricing page the display names are scraped from.",
	"artifact-url":    "Published free-model artifact fetched by apply.",
	"cache-ttl":       "How long a fetched artifact stays fresh in the local cache.",
	"cache-path":      "Directory for the local artifact cache.",
	"target-config":   "JSON configuration file apply patches.",
	"target-key":      "Dot-separated key in the target config receiving the model list.",
	"browser-timeout": "Time budget for the headless-browser extraction.",
	"quiet":           "Only log warnings and errors.",
}

// Config holds the main configuration and is mapped to the YAML settings file.
type Config struct {
	API            string `yaml:"api" env:"API"`
	Model          string `yaml:"model" env:"MODEL"`
	BaseURL        string `yaml:"base-url" env:"BASE_URL"`
	APIKeyEnv      string `yaml:"api-key-env" env:"API_KEY_ENV"`
	ServiceTier    string `yaml:"service-tier" env:"SERVICE_TIER"`
	MaxRetries     int    `yaml:"max-retries" env:"MAX_RETRIES"`
	InitialDelay   string `yaml:"initial-delay" env:"INITIAL_DELAY"`
	ModelsURL      string `yaml:"models-url" env:"MODELS_URL"`
	PricingURL     string `yaml:"pricing-url" env:"PRICING_URL"`
	ArtifactURL    string `yaml:"artifact-url" env:"ARTIFACT_URL"`
	CacheTTL       string `yaml:"cache-ttl" env:"CACHE_TTL"`
	CachePath      string `yaml:"cache-path" env:"CACHE_PATH"`
	TargetConfig   string `yaml:"target-config" env:"TARGET_CONFIG"`
	TargetKey      string `yaml:"target-key" env:"TARGET_KEY"`
	BrowserTimeout string `yaml:"browser-timeout" env:"BROWSER_TIMEOUT"`
	Quiet          bool   `yaml:"quiet" env:"QUIET"`

	SettingsPath string `yaml:"-"`
}

// apiKey reads the backend credential. Empty means the matcher runs on
// normalization only.
func (c Config) apiKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

func (c Config) initialDelay() (time.Duration, error) {
	return parseDuration("initial-delay", c.InitialDelay)
}

func (c Config) cacheTTL() (time.Duration, error) {
	return parseDuration("cache-ttl", c.CacheTTL)
}

func (c Config) browserTimeout() (time.Duration, error) {
	return parseDuration("browser-timeout", c.BrowserTimeout)
}

func parseDuration(name, value string) (time.Duration, error) {
	d, err := duration.Parse(value)
	if err != nil {
		return 0, syncError{err, fmt.Sprintf("Could not parse %s %q.", name, value)}
	}
	return d, nil
}

func ensureConfig() (Config, error) {
	var c Config
	sp, err := xdg.ConfigFile(filepath.Join("freesync", "freesync.yml"))
	if err != nil {
		return c, syncError{err, "Could not find settings path."}
	}
	c.SettingsPath = sp

	dir := filepath.Dir(sp)
	if dirErr := os.MkdirAll(dir, 0o700); dirErr != nil { //nolint:mnd
		return c, syncError{dirErr, "Could not create settings directory."}
	}

	if dirErr := writeConfigFile(sp); dirErr != nil {
		return c, dirErr
	}
	content, err := os.ReadFile(sp)
	if err != nil {
		return c, syncError{err, "Could not read settings file."}
	}
	if err := yaml.Unmarshal(content, &c); err != nil {
		return c, syncError{err, "Could not parse settings file."}
	}

	if err := env.ParseWithOptions(&c, env.Options{Prefix: "FREESYNC_"}); err != nil {
		return c, syncError{err, "Could not parse environment into settings."}
	}

	if c.CachePath == "" {
		c.CachePath = filepath.Join(xdg.DataHome, "freesync")
	}
	if err := os.MkdirAll(c.CachePath, 0o700); err != nil { //nolint:mnd
		return c, syncError{err, "Could not create cache directory."}
	}

	return c, nil
}

func writeConfigFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return createConfigFile(path)
	} else if err != nil {
		return syncError{err, "Could not stat settings path."}
	}
	return nil
}

func createConfigFile(path string) error {
	tmpl := template.Must(template.New("config").Parse(configTemplate))

	f, err := os.Create(path)
	if err != nil {
		return syncError{err, "Could not create settings file."}
	}
	defer func() { _ = f.Close() }()

	m := struct {
		Help map[string]string
	}{
		Help: help,
	}
	if err := tmpl.Execute(f, m); err != nil {
		return syncError{err, "Could not render settings template."}
	}
	return nil
}
