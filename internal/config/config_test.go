package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "test-key")
	path := writeConfig(t, "")

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as existing")
	}
	if cfg.OMDB.APIKey != "test-key" {
		t.Fatalf("expected env fallback api key, got %q", cfg.OMDB.APIKey)
	}
	if cfg.OMDB.BaseURL != defaultOMDBBaseURL {
		t.Fatalf("unexpected base url: %q", cfg.OMDB.BaseURL)
	}
	if cfg.OMDB.RequestIntervalMS != defaultRequestIntervalMS {
		t.Fatalf("unexpected request interval: %d", cfg.OMDB.RequestIntervalMS)
	}
	if !filepath.IsAbs(cfg.Database.Path) {
		t.Fatalf("database path not expanded: %q", cfg.Database.Path)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	path := writeConfig(t, `
[omdb]
api_key = "file-key"
request_interval_ms = 500

[logging]
format = "json"
level = "debug"
`)

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OMDB.APIKey != "file-key" {
		t.Fatalf("unexpected api key: %q", cfg.OMDB.APIKey)
	}
	if cfg.OMDB.RequestIntervalMS != 500 {
		t.Fatalf("unexpected interval: %d", cfg.OMDB.RequestIntervalMS)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	path := writeConfig(t, "")

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected error when api key missing")
	}
	if !strings.Contains(err.Error(), "omdb.api_key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsNegativeInterval(t *testing.T) {
	cfg := Default()
	cfg.OMDB.APIKey = "key"
	cfg.OMDB.RequestIntervalMS = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative interval")
	}
}

func TestEnsureDirectories(t *testing.T) {
	tmp := t.TempDir()
	cfg := Default()
	cfg.Paths.LogDir = filepath.Join(tmp, "logs")
	cfg.Paths.CacheFile = filepath.Join(tmp, "cache", "omdb_cache.json")
	cfg.Database.Path = filepath.Join(tmp, "db", "catalog.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Paths.CacheFile), filepath.Dir(cfg.Database.Path)} {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("expected directory %s: %v", dir, err)
		}
	}
}

func TestCreateSampleParses(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "key")
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	if _, _, _, err := Load(target); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}
