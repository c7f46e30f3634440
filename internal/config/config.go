// Package config handles configuration loading and shared data structures.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Places       []Place    `yaml:"places"`
	ReverseMaxKm float64    `yaml:"reverse_max_km,omitempty"`
	Boundaries   Boundaries `yaml:"boundaries,omitempty"`
}

// Place is a single named gazetteer entry.
type Place struct {
	Name    string   `yaml:"name"`
	Address string   `yaml:"address,omitempty"`
	Aliases []string `yaml:"aliases,omitempty"`
	Lat     float64  `yaml:"lat"`
	Lon     float64  `yaml:"lon"`
}

// Boundaries holds settings for the geoBoundaries download client.
type Boundaries struct {
	URL     string `yaml:"url,omitempty"`
	Timeout int    `yaml:"timeout,omitempty"` // seconds
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
