package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
)

// fileConfig is the DTO for JSON unmarshalling; zero fields leave the
// corresponding Config value untouched.
type fileConfig struct {
	ResourceURL    string `json:"resource_url"`
	PageSize       int    `json:"page_size"`
	ExportDir      string `json:"export_dir"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// jsonPath extracts the config file path from the -c / -config flags, or ""
// when neither is present. Only those two flags are looked at.
func jsonPath(args []string) string {
	var path string
	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(filterArgs(args, []string{"-c", "-config"}))
	return path
}

func (c *Config) applyJSON(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ResourceURL != "" {
		c.ResourceURL = fc.ResourceURL
	}
	if fc.PageSize > 0 {
		c.PageSize = fc.PageSize
	}
	if fc.ExportDir != "" {
		c.ExportDir = fc.ExportDir
	}
	if fc.TimeoutSeconds > 0 {
		c.RequestTimeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	return nil
}
