// Package file provides TOML-backed application configuration.
// Configuration lives in a single file under the newsdex config
// directory; a missing file yields defaults.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/newsdex/internal/fingerprint"
)

// Config is the root application configuration.
type Config struct {
	// DataDir is where the article database lives.
	// Empty means ~/.newsdex/data.
	DataDir string `toml:"data_dir"`

	// Feeds are the RSS/Atom feed URLs to ingest.
	Feeds []string `toml:"feeds"`

	Ingest      IngestConfig      `toml:"ingest"`
	Fingerprint FingerprintConfig `toml:"fingerprint"`
}

// IngestConfig tunes the ingestion pass.
type IngestConfig struct {
	// RecentWindow is how many recently stored links the exact-dedup
	// filter checks against.
	RecentWindow int `toml:"recent_window"`

	// FetchWorkers is the article download concurrency.
	FetchWorkers int `toml:"fetch_workers"`

	// RequestRate throttles article downloads, in requests per second.
	RequestRate float64 `toml:"request_rate"`
}

// FingerprintConfig tunes the near-duplicate detection engine.
type FingerprintConfig struct {
	// ShingleSize is the token width of content shingles.
	ShingleSize int `toml:"shingle_size"`

	// SignatureSize is the number of MinHash bands per signature.
	// Larger is more accurate and more expensive.
	SignatureSize int `toml:"signature_size"`

	// Punctuation is the character set stripped before tokenising.
	Punctuation string `toml:"punctuation"`

	// Threshold is the similarity at which a pair is reported as a
	// near-duplicate.
	Threshold float64 `toml:"threshold"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// DefaultPath returns ~/.newsdex/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".newsdex", "config.toml"), nil
}

// Load reads the configuration from a path. A missing file returns
// defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the configuration to a path, creating directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Ingest.RecentWindow == 0 {
		cfg.Ingest.RecentWindow = 100
	}
	if cfg.Ingest.FetchWorkers == 0 {
		cfg.Ingest.FetchWorkers = 4
	}
	if cfg.Ingest.RequestRate == 0 {
		cfg.Ingest.RequestRate = 2.0
	}
	if cfg.Fingerprint.ShingleSize == 0 {
		cfg.Fingerprint.ShingleSize = fingerprint.DefaultShingleSize
	}
	if cfg.Fingerprint.SignatureSize == 0 {
		cfg.Fingerprint.SignatureSize = fingerprint.DefaultSignatureSize
	}
	if cfg.Fingerprint.Punctuation == "" {
		cfg.Fingerprint.Punctuation = fingerprint.DefaultPunctuation
	}
	if cfg.Fingerprint.Threshold == 0 {
		cfg.Fingerprint.Threshold = 0.8
	}
}
