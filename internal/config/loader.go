package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/plancheck/internal/defs"
)

// Load reads .plancheck.yaml from projectRoot and returns the merged
// configuration. A missing file yields defaults. A file with invalid YAML is
// skipped with a warning. A file that parses but fails validation is an error.
func Load(projectRoot string) (*Config, error) {
	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(filepath.Clean(projectRoot), defs.ProjectConfigYAML, cfg)
	if err != nil {
		slog.Warn("failed to load project config, using defaults", "error", err)
		return NewDefaultConfig(), nil
	}
	if !loaded {
		slog.Debug("project config not found, using defaults", "dir", projectRoot)
		return cfg, nil
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
