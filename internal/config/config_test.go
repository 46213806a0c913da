package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// setupEnv points the config path at a temp dir and clears the overrides.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("VSTORE_MODEL", "")
	Reset()
	t.Cleanup(Reset)
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	cfgDir := filepath.Join(dir, ConfigDir)
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, ConfigFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := setupEnv(t)
	writeConfig(t, dir, "api_key: sk-from-file\nmodel: gpt-4o\nverbose: true\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-from-file" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.Model)
	}
	if !cfg.Verbose {
		t.Error("verbose should be true")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := setupEnv(t)
	writeConfig(t, dir, "api_key: sk-from-file\nbase_url: https://file.example\n")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	t.Setenv("OPENAI_BASE_URL", "https://env.example")
	t.Setenv("VSTORE_MODEL", "gpt-4o-mini")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-from-env" {
		t.Errorf("api key = %q, env should win", cfg.APIKey)
	}
	if cfg.BaseURL != "https://env.example" {
		t.Errorf("base url = %q, env should win", cfg.BaseURL)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.Model)
	}
}

func TestMissingAPIKey(t *testing.T) {
	setupEnv(t)

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestEnvOnlyWithoutFile(t *testing.T) {
	setupEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env-only")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-env-only" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
}

func TestLoadCaches(t *testing.T) {
	setupEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-first")

	first, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	t.Setenv("OPENAI_API_KEY", "sk-second")
	second, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second != first {
		t.Error("Load should return the cached config")
	}
	if second.APIKey != "sk-first" {
		t.Errorf("cached api key = %q", second.APIKey)
	}

	Reset()
	third, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if third.APIKey != "sk-second" {
		t.Errorf("after Reset, api key = %q", third.APIKey)
	}
}

func TestPathRespectsXDG(t *testing.T) {
	dir := setupEnv(t)
	want := filepath.Join(dir, ConfigDir, ConfigFile)
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
