// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"os"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for a run of the tool. Values are read from an
// optional YAML file, and may be overridden by flags.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
	HuJSON   bool   `yaml:"hujson"`
	Strict   bool   `yaml:"strict"`
	Path     string `yaml:"path"`
}

var formats = []string{"debug", "summary"}

func defaultConfig() Config {
	return Config{LogLevel: "info", Format: "debug"}
}

// loadConfig reads a YAML config file from path. Settings not mentioned in
// the file keep their default values. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}

// Validate reports an error if c has an unknown format or log level.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return errors.Errorf("unknown format %q (want one of %v)", c.Format, formats)
	}
	if c.logLevel() == hclog.NoLevel {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

func (c Config) logLevel() hclog.Level { return hclog.LevelFromString(c.LogLevel) }
