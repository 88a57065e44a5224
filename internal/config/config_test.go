package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantWebroot string
	}{
		{
			name:        "webroot set",
			content:     "webroot: /blog\nsite-name: Example\n",
			wantWebroot: "/blog",
		},
		{
			name:        "webroot explicitly empty",
			content:     "webroot: \"\"\nsite-name: Example\n",
			wantWebroot: "",
		},
		{
			name:        "unknown keys tolerated",
			content:     "webroot: /blog\nsocial-profiles: [twitter, facebook]\n",
			wantWebroot: "/blog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Webroot != tt.wantWebroot {
				t.Errorf("Webroot = %q, want %q", cfg.Webroot, tt.wantWebroot)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "webroot: [unclosed\n"))
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("Load() error = %v, want ErrConfigParse", err)
	}
}

func TestLookup(t *testing.T) {
	cfg := &Config{Webroot: "/blog", SiteName: "Example", SiteURL: "https://example.com"}

	tests := []struct {
		key      string
		expected string
	}{
		{"webroot", "/blog"},
		{"site-name", "Example"},
		{"site-url", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := cfg.Lookup(tt.key)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.key, err)
			}
			if got != tt.expected {
				t.Errorf("Lookup(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestLookupUnknownKey(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.Lookup("theme"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Lookup() error = %v, want ErrUnknownKey", err)
	}
}
