package config

import (
	"testing"
)

func TestResolveBaseURLPrecedence(t *testing.T) {
	cfg := Config{API: APIConfig{BaseURL: "http://from-config:8000"}}

	tests := []struct {
		name   string
		mccost string
		multi  string
		want   string
	}{
		{"tool env wins", "http://tool:8000", "http://deploy:8000", "http://tool:8000"},
		{"deployment env next", "", "http://deploy:8000", "http://deploy:8000"},
		{"config file last", "", "", "http://from-config:8000"},
		{"whitespace is unset", "   ", "\t", "http://from-config:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MCCOST_API_URL", tt.mccost)
			t.Setenv("MULTICLOUD_API_URL", tt.multi)
			if got := ResolveBaseURL(cfg); got != tt.want {
				t.Fatalf("ResolveBaseURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveBaseURLUnconfigured(t *testing.T) {
	t.Setenv("MCCOST_API_URL", "")
	t.Setenv("MULTICLOUD_API_URL", "")

	if got := ResolveBaseURL(Config{}); got != "" {
		t.Fatalf("ResolveBaseURL = %q, want empty string when nothing is set", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://localhost:8000"
	cfg.General.TimeWindowDays = 7
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.API.BaseURL != cfg.API.BaseURL {
		t.Fatalf("BaseURL = %q, want %q", loaded.API.BaseURL, cfg.API.BaseURL)
	}
	if loaded.General.TimeWindowDays != 7 {
		t.Fatalf("TimeWindowDays = %d, want 7", loaded.General.TimeWindowDays)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Fatalf("Theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.TimeWindowDays != 30 {
		t.Fatalf("TimeWindowDays = %d, want default 30", cfg.General.TimeWindowDays)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want default flexoki-dark", cfg.Appearance.Theme)
	}
}
