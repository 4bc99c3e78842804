// Package config loads optional defaults for dnfy from a YAML file under the
// user's config directory. Everything in it can be overridden by flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the file-backed defaults. Pointer fields distinguish "unset"
// from an explicit false.
type Config struct {
	// DNFCommand overrides the detected package manager binary.
	DNFCommand string `yaml:"dnf_command"`
	// SudoCommand overrides the detected privilege-elevation wrapper.
	SudoCommand string `yaml:"sudo_command"`
	// ReverseDisplay controls whether results print best-match-last
	// (next to the prompt). Defaults to true.
	ReverseDisplay *bool `yaml:"reverse_display"`
	// MatchSummaries controls whether search terms are matched against
	// package summaries. Defaults to true.
	MatchSummaries *bool `yaml:"match_summaries"`
}

// DefaultPath returns the conventional config file location,
// typically ~/.config/dnfy/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dnfy", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error: the
// zero Config applies.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) ReverseDisplayEnabled() bool {
	if c.ReverseDisplay == nil {
		return true
	}
	return *c.ReverseDisplay
}

func (c Config) MatchSummariesEnabled() bool {
	if c.MatchSummaries == nil {
		return true
	}
	return *c.MatchSummaries
}
