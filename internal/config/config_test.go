package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL == "" || cfg.PollSeconds <= 0 {
		t.Errorf("defaults missing: %+v", cfg)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}

	// Reloading reads the file it just wrote.
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *again != *cfg {
		t.Errorf("reload mismatch: %+v vs %+v", again, cfg)
	}
}

func TestLoadNormalizesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server_url: http://example.test:5000\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "http://example.test:5000" {
		t.Errorf("server_url = %q", cfg.ServerURL)
	}
	if cfg.PollSeconds <= 0 || cfg.WatchCron == "" || cfg.Timezone == "" {
		t.Errorf("zero values not normalized: %+v", cfg)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server_url: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Default()
	want.ServerURL = "http://reminders.local:8080"
	want.PollSeconds = 30

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("perms = %v, want 0600", info.Mode().Perm())
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
		wantErr  bool
	}{
		{"default local", "Local", "Local", false},
		{"empty means local", "", "Local", false},
		{"utc", "UTC", "UTC", false},
		{"unknown zone", "Nowhere/Atlantis", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Timezone = tt.timezone

			loc, err := cfg.Location()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Location: %v", err)
			}
			if loc.String() != tt.want {
				t.Errorf("Location() = %q, want %q", loc, tt.want)
			}
		})
	}
}

func TestDirHonorsEnvOverride(t *testing.T) {
	t.Setenv("REMINDCAL_CONFIG_DIR", "/tmp/remindcal-test")
	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if dir != "/tmp/remindcal-test" {
		t.Errorf("Dir() = %q", dir)
	}
}
