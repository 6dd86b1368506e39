package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/beltic/credcheck/internal/domain"
)

// YAMLLoader implements domain.ConfigLoader by reading .credcheck.yaml.
type YAMLLoader struct {
	fs afero.Fs
}

// New creates a YAMLLoader reading from fs.
func New(fs afero.Fs) *YAMLLoader { return &YAMLLoader{fs: fs} }

// Load reads the configuration at path.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	name := filepath.Base(path)

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	// Validate before merging so typos in the user's file are reported.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// Marshal renders cfg in the .credcheck.yaml format.
func Marshal(cfg domain.Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

// mergeConfig overlays explicit values on top of the defaults.
func mergeConfig(base, override domain.Config) domain.Config {
	result := base

	// Explicit suites replace the default sweeps entirely.
	if len(override.Suites) > 0 {
		result.Suites = override.Suites
	}
	if override.MaxViolations > 0 {
		result.MaxViolations = override.MaxViolations
	}

	return result
}
