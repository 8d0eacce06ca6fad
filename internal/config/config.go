package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Fields are pointers so
// an absent key can be told apart from a zero value when merging with flags.
type FileConfig struct {
	// Parsers is the default parser filter expression.
	Parsers *string `yaml:"parsers"`
	// Lines is the default hex dump window height, in 16-byte lines.
	Lines *int `yaml:"lines"`
	// Before is how many bytes ahead of an event a dump starts.
	Before *int64 `yaml:"before"`
	// Output selects the default event output formatter.
	Output   *string `yaml:"output"`
	TimeZone *string `yaml:"timezone"`
	Debug    *bool   `yaml:"debug"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given directory. It supports
// .plaso.yml/.yaml and plaso.yml/.yaml, dotfiles first.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".plaso.yml", ".plaso.yaml", "plaso.yml", "plaso.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "plaso", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
