// Package config reads the site configuration shared by the bassclef
// tooling and resolves symbolic keys to their string values.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrUnknownKey     = errors.New("unknown config key")
)

// Config holds the site settings this tool reads. The file is shared with
// the rest of the site tooling, so unknown keys are tolerated rather than
// rejected.
type Config struct {
	Webroot  string `yaml:"webroot"`   // base path for static assets, may be empty
	SiteName string `yaml:"site-name"` // informational, unused by the pipeline
	SiteURL  string `yaml:"site-url"`  // informational, unused by the pipeline
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// Lookup resolves a symbolic configuration key to its value. An empty value
// for a known key is legal; an unknown key is an error, never a guess.
func (c *Config) Lookup(key string) (string, error) {
	switch key {
	case "webroot":
		return c.Webroot, nil
	case "site-name":
		return c.SiteName, nil
	case "site-url":
		return c.SiteURL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}
