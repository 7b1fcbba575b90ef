package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Title == "" {
		t.Error("default title should not be empty")
	}
	if cfg.LogLevel != LogInfo {
		t.Errorf("expected default log_level %q, got %q", LogInfo, cfg.LogLevel)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Site.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.Site.OutputDir)
	}
	if cfg.Site.HighlightStyle != "dracula" {
		t.Errorf("expected default highlight_style dracula, got %q", cfg.Site.HighlightStyle)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.techguide.yml")

	original := DefaultConfig()
	original.Title = "Internal Guide"
	original.Subtitle = ""
	original.LogLevel = LogDebug
	original.Server.Port = 9090
	original.Server.AllowAllOrigins = true
	original.Site.OutputDir = "public"
	original.Site.HighlightStyle = "monokai"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round-trip mismatch:\n got  %+v\n want %+v", *loaded, *original)
	}
}

func TestSaveWritesSnakeCaseKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"log_level:", "allow_all_origins:", "highlight_style:", "output_dir:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("saved YAML missing %s:\n%s", key, data)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	if err := os.WriteFile(path, []byte("server:\n  port: 3000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Site.HighlightStyle != "dracula" || cfg.Title != DefaultConfig().Title {
		t.Errorf("defaults lost: %+v", *cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("server: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("TECHGUIDE_LOG_LEVEL", "warn")
	t.Setenv("TECHGUIDE_SERVER__PORT", "9000")
	t.Setenv("TECHGUIDE_SITE__OUTPUT_DIR", "dist")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LogLevel != LogWarn {
		t.Errorf("log_level override failed: got %q", loaded.LogLevel)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("port override failed: got %d", loaded.Server.Port)
	}
	if loaded.Site.OutputDir != "dist" {
		t.Errorf("output_dir override failed: got %q", loaded.Site.OutputDir)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"TECHGUIDE_TITLE", "title"},
		{"TECHGUIDE_LOG_LEVEL", "log_level"},
		{"TECHGUIDE_SERVER__ALLOW_ALL_ORIGINS", "server.allow_all_origins"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty title", func(c *Config) { c.Title = "  " }, "title"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"no output dir", func(c *Config) { c.Site.OutputDir = "" }, "output_dir"},
		{"unknown style", func(c *Config) { c.Site.HighlightStyle = "neon-dreams" }, "highlight_style"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestHighlightStylesAreValid(t *testing.T) {
	for _, s := range HighlightStyles {
		cfg := DefaultConfig()
		cfg.Site.HighlightStyle = s
		if err := cfg.Validate(); err != nil {
			t.Errorf("wizard offers %q but Validate rejects it: %v", s, err)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = LogDebug
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
	cfg.LogLevel = "bogus"
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel fallback = %v, want info", cfg.SlogLevel())
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"80", " 8080 ", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "0", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}
