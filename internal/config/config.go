// Package config handles mccost configuration: a TOML file under the XDG
// config directory plus environment overrides for the API base URL.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all mccost configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	TimeWindowDays int `toml:"time_window_days"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// envBaseURLVars lists the environment sources checked before the config
// file, highest priority first. MULTICLOUD_API_URL is the name the backend
// deployment exports; MCCOST_API_URL is this tool's own override.
var envBaseURLVars = []string{"MCCOST_API_URL", "MULTICLOUD_API_URL"}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			TimeWindowDays: 30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// LoadEnv loads a .env file from the working directory if one exists.
// Missing files are fine; real environment variables always win.
func LoadEnv() {
	_ = godotenv.Load()
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mccost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mccost")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// ResolveBaseURL returns the API origin from environment variables or the
// config file, in that order, or the empty string when unconfigured. An
// empty result is not an error: consumers must treat it as "no backend"
// and skip network calls entirely.
func ResolveBaseURL(cfg Config) string {
	for _, name := range envBaseURLVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return strings.TrimSpace(cfg.API.BaseURL)
}

// BaseURLSource reports the resolved base URL together with where it came
// from: the environment variable name, "config file", or "" when unset.
func BaseURLSource(cfg Config) (string, string) {
	for _, name := range envBaseURLVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, name
		}
	}
	if v := strings.TrimSpace(cfg.API.BaseURL); v != "" {
		return v, "config file"
	}
	return "", ""
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
