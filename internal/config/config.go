// Package config holds runtime settings for the staffdir CLI, assembled from
// defaults, environment variables, an optional JSON file and command-line
// flags, in that order: later sources win.
package config

import (
	"os"
	"time"
)

// Config holds the runtime settings.
//
// Fields:
//   - ResourceURL: address of the remote resource holding the whole employee
//     collection (read with GET, replaced with PUT).
//   - PageSize: records per page in list and card views.
//   - ExportDir: directory where a failed replace drops its fallback export.
//   - RequestTimeout: per-request timeout for the persistence client.
type Config struct {
	ResourceURL    string
	PageSize       int
	ExportDir      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ResourceURL = "http://127.0.0.1:8080/users.json"
	c.PageSize = 10
	c.ExportDir = "."
	c.RequestTimeout = 5 * time.Second
}

// Load builds the effective configuration from all sources.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.applyEnv(os.Getenv)
	if err := cfg.applyJSON(jsonPath(os.Args[1:])); err != nil {
		return nil, err
	}
	if err := cfg.applyFlags(os.Args[1:]); err != nil {
		return nil, err
	}
	return cfg, nil
}
