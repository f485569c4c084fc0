package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mwidmann/remindcal/internal/constants"
)

// Config is the on-disk client configuration.
type Config struct {
	// ServerURL is the reminder service base URL.
	ServerURL string `yaml:"server_url"`

	// PollSeconds is the sync loop interval for the TUI.
	PollSeconds int `yaml:"poll_seconds"`

	// WatchCron schedules the headless `watch` refresh, in robfig/cron
	// syntax (descriptors like "@every 10s" are accepted).
	WatchCron string `yaml:"watch_cron"`

	// Timezone is an IANA zone name or "Local"; calendar-day keys are
	// derived in this zone.
	Timezone string `yaml:"timezone"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		ServerURL:   constants.DefaultServerURL,
		PollSeconds: constants.DefaultPollSeconds,
		WatchCron:   constants.DefaultWatchCron,
		Timezone:    "Local",
	}
}

// Normalize fills in zero values so older or hand-edited configs keep
// working.
func (c *Config) Normalize() {
	if c.ServerURL == "" {
		c.ServerURL = constants.DefaultServerURL
	}
	if c.PollSeconds <= 0 {
		c.PollSeconds = constants.DefaultPollSeconds
	}
	if c.WatchCron == "" {
		c.WatchCron = constants.DefaultWatchCron
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
}

// Location resolves the Timezone field to a *time.Location. "Local" (the
// default) and "" mean the system zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Dir returns the config directory, honoring REMINDCAL_CONFIG_DIR for tests
// and unusual setups.
func Dir() (string, error) {
	if dir := os.Getenv("REMINDCAL_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, constants.AppName), nil
}

// Load reads the YAML config at path. A missing file is first-run: the
// default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600 perms.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".remindcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
