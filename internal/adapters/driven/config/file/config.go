// Package file loads the Kartka configuration from a TOML file.
// Configuration is read once at process start into a typed value that
// is passed into each component constructor; nothing consults the file
// afterwards.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/kartka-labs/kartka-cli/internal/core/domain"
)

// Config is the process-wide configuration.
type Config struct {
	// ScanDir holds loose page images awaiting a scan run.
	ScanDir string `toml:"scan_dir"`

	// IndexDir is the content store's backing directory.
	IndexDir string `toml:"index_dir"`

	// DataDir holds local state (the scan journal database).
	// Defaults to ~/.kartka/data.
	DataDir string `toml:"data_dir"`

	Remote RemoteConfig `toml:"remote"`
	OCR    OCRConfig    `toml:"ocr"`
	Serve  ServeConfig  `toml:"serve"`
}

// RemoteConfig addresses the cloud-synced archive folder.
type RemoteConfig struct {
	// Name is the rclone remote, e.g. "dropbox:".
	Name string `toml:"name"`

	// PreviewBase is the URL prefix search results link to.
	PreviewBase string `toml:"preview_base"`
}

// OCRConfig configures text extraction.
type OCRConfig struct {
	// Languages are Tesseract language codes, e.g. ["eng", "ukr"].
	// Empty means Tesseract's default.
	Languages []string `toml:"languages"`
}

// ServeConfig configures the HTTP boundary.
type ServeConfig struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`

	// UploadsPerSecond is the sustained upload rate limit.
	UploadsPerSecond float64 `toml:"uploads_per_second"`

	// UploadBurst is the upload rate limiter's burst size.
	UploadBurst int `toml:"upload_burst"`
}

// DefaultPath returns the default config file location,
// ~/.kartka/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".kartka", "config.toml"), nil
}

// Load reads and validates the configuration at path.
// If path is empty, the default location is used.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Remote.Name == "" {
		c.Remote.Name = "dropbox:"
	}
	if c.Remote.PreviewBase == "" {
		c.Remote.PreviewBase = "https://www.dropbox.com/home/Apps/kartka"
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = "127.0.0.1:8462"
	}
	if c.Serve.UploadsPerSecond <= 0 {
		c.Serve.UploadsPerSecond = 5
	}
	if c.Serve.UploadBurst <= 0 {
		c.Serve.UploadBurst = 10
	}
}

func (c *Config) validate() error {
	if c.ScanDir == "" {
		return fmt.Errorf("%w: scan_dir is required", domain.ErrInvalidInput)
	}
	if c.IndexDir == "" {
		return fmt.Errorf("%w: index_dir is required", domain.ErrInvalidInput)
	}
	return nil
}
