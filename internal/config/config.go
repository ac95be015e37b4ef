// Package config loads vectest run configuration from YAML files.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-vectest/internal/schema"
	"github.com/ajroetker/go-vectest/typelist"
)

// Config mirrors the build-time matrix switches of a run: which element
// types to keep, whether to collapse them to one random type, and which
// fixed-size ABI selection to use.
type Config struct {
	Types         []string `yaml:"types"`
	OneRandomType bool     `yaml:"oneRandomType"`
	ABIs          *int     `yaml:"abis"`
	Seed          *int64   `yaml:"seed"`
	Only          string   `yaml:"only"`
	MaxDistance   bool     `yaml:"maxDistance"`
	PlotFile      string   `yaml:"plotFile"`
}

// Load reads and parses a vectest configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data, validating it against the
// embedded schema first.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}
	if err := schema.ValidateConfig(jsonData); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, name := range c.Types {
		if _, ok := typelist.KindFromString(name); !ok {
			return fmt.Errorf("unknown element type %q", name)
		}
	}
	if c.ABIs != nil && (*c.ABIs < 0 || *c.ABIs > 8) {
		return fmt.Errorf("abis must be between 0 and 8, got %d", *c.ABIs)
	}
	return nil
}

// Kinds resolves the configured type names to element kinds. An empty
// list means all types.
func (c *Config) Kinds() []typelist.Kind {
	kinds := make([]typelist.Kind, 0, len(c.Types))
	for _, name := range c.Types {
		if k, ok := typelist.KindFromString(name); ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
