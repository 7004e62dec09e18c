package insta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// toolConfigNames are the file names probed by LoadToolConfig, in
// priority order.
var toolConfigNames = []string{"insta.yaml", "insta.yml", "insta.toml"}

// ToolConfig is workspace-level tool configuration, read from an
// insta.yaml or insta.toml file next to the tests. It seeds the defaults
// a test suite starts from.
type ToolConfig struct {
	// SnapshotPath overrides the default snapshot directory when
	// non-empty.
	SnapshotPath string `yaml:"snapshot_path" toml:"snapshot_path"`

	// SortMaps turns map sorting on for the whole workspace.
	SortMaps bool `yaml:"sort_maps" toml:"sort_maps"`
}

// LoadToolConfig reads tool configuration from dir, probing insta.yaml,
// insta.yml and insta.toml in that order. A missing file yields the zero
// config; a file that exists but fails to parse is an error.
func LoadToolConfig(dir string) (ToolConfig, error) {
	for _, name := range toolConfigNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return ToolConfig{}, fmt.Errorf("read tool config %s: %w", path, err)
		}
		return parseToolConfig(path, data)
	}
	return ToolConfig{}, nil
}

// parseToolConfig parses file contents, inferring the format from the
// extension.
func parseToolConfig(path string, data []byte) (ToolConfig, error) {
	var cfg ToolConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ToolConfig{}, fmt.Errorf("parse YAML tool config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return ToolConfig{}, fmt.Errorf("parse TOML tool config %s: %w", path, err)
		}
	default:
		return ToolConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return cfg, nil
}

// Settings returns a fresh handle seeded from the tool config. Zero
// fields keep their defaults.
func (tc ToolConfig) Settings() Settings {
	s := New()
	if tc.SnapshotPath != "" {
		s.SetSnapshotPath(tc.SnapshotPath)
	}
	if tc.SortMaps {
		s.SetSortMaps(true)
	}
	return s
}
