package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080/users.json", cfg.ResourceURL)
	require.Equal(t, 10, cfg.PageSize)
	require.Equal(t, ".", cfg.ExportDir)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestApplyEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	env := map[string]string{
		envResourceURL: "http://example.com/users.json",
		envPageSize:    "25",
		envTimeoutSec:  "30",
	}
	cfg.applyEnv(func(k string) string { return env[k] })

	require.Equal(t, "http://example.com/users.json", cfg.ResourceURL)
	require.Equal(t, 25, cfg.PageSize)
	require.Equal(t, ".", cfg.ExportDir, "unset vars keep defaults")
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	env := map[string]string{envPageSize: "lots", envTimeoutSec: "-4"}
	cfg.applyEnv(func(k string) string { return env[k] })

	require.Equal(t, 10, cfg.PageSize)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestApplyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"resource_url": "http://json.example/users.json",
		"page_size": 7,
		"export_dir": "/tmp/exports",
		"timeout_seconds": 12
	}`), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, cfg.applyJSON(path))

	require.Equal(t, "http://json.example/users.json", cfg.ResourceURL)
	require.Equal(t, 7, cfg.PageSize)
	require.Equal(t, "/tmp/exports", cfg.ExportDir)
	require.Equal(t, 12*time.Second, cfg.RequestTimeout)
}

func TestApplyJSONPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"page_size": 3}`), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, cfg.applyJSON(path))

	require.Equal(t, 3, cfg.PageSize)
	require.Equal(t, "http://127.0.0.1:8080/users.json", cfg.ResourceURL)
}

func TestApplyJSONErrors(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.NoError(t, cfg.applyJSON(""), "no file configured is fine")
	require.Error(t, cfg.applyJSON(filepath.Join(t.TempDir(), "missing.json")))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	require.Error(t, cfg.applyJSON(bad))
}

func TestJSONPath(t *testing.T) {
	require.Equal(t, "conf.json", jsonPath([]string{"-c", "conf.json"}))
	require.Equal(t, "conf.json", jsonPath([]string{"-config=conf.json"}))
	require.Equal(t, "", jsonPath([]string{"-u", "http://x"}))
}

func TestApplyFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := cfg.applyFlags([]string{"-u", "http://flag.example/users.json", "-s", "15", "-t", "9", "-c", "ignored.json"})
	require.NoError(t, err)

	require.Equal(t, "http://flag.example/users.json", cfg.ResourceURL)
	require.Equal(t, 15, cfg.PageSize)
	require.Equal(t, 9*time.Second, cfg.RequestTimeout)
}

func TestFilterArgs(t *testing.T) {
	args := []string{"-u", "http://x", "-c", "conf.json", "-s=5", "-unknown", "val"}
	got := filterArgs(args, []string{"-u", "-s"})
	require.Equal(t, []string{"-u", "http://x", "-s=5"}, got)
}
