// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package config handles dartling project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Rendering formats accepted by the format field.
const (
	FormatFreezed = "freezed"
	FormatPlain   = "plain"
)

// Config represents the dartling.yaml project configuration file. Its
// values act as defaults for generate flags left unset.
type Config struct {
	Version int    `yaml:"version"`
	Input   string `yaml:"input,omitempty"`
	Output  string `yaml:"output,omitempty"`
	Format  string `yaml:"format,omitempty"`
	// Serializer defaults to true when omitted.
	Serializer *bool `yaml:"serializer,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	switch c.Format {
	case "", FormatFreezed, FormatPlain:
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	return nil
}

// SerializerEnabled reports whether serialization emission is on.
func (c *Config) SerializerEnabled() bool {
	return c.Serializer == nil || *c.Serializer
}
