package config

import (
	"strconv"
	"time"
)

// Environment variables recognized by applyEnv. A .env file, if present, is
// loaded into the process environment by main before Load runs.
const (
	envResourceURL = "STAFFDIR_RESOURCE_URL"
	envPageSize    = "STAFFDIR_PAGE_SIZE"
	envExportDir   = "STAFFDIR_EXPORT_DIR"
	envTimeoutSec  = "STAFFDIR_TIMEOUT_SECONDS"
)

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(envResourceURL); v != "" {
		c.ResourceURL = v
	}
	if v := getenv(envPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PageSize = n
		}
	}
	if v := getenv(envExportDir); v != "" {
		c.ExportDir = v
	}
	if v := getenv(envTimeoutSec); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RequestTimeout = time.Duration(n) * time.Second
		}
	}
}
