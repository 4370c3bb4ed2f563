// Package config loads the optional lanscout configuration file.
// Command-line flags take precedence over file values; the file exists so
// recurring options (subnet, deep scan, vendor database) don't have to be
// repeated on every invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the lanscout configuration file.
type Config struct {
	Subnet    string   `yaml:"subnet,omitempty"`    // dotted subnet, auto-detected when empty
	Interface string   `yaml:"interface,omitempty"` // interface handed to the full-scan tool
	Deep      bool     `yaml:"deep"`                // enable hostname/port enrichment
	Ports     []int    `yaml:"ports,omitempty"`     // liveness probe ports
	Timeout   Duration `yaml:"timeout,omitempty"`   // per-probe timeout
	VendorDB  bool     `yaml:"vendor_database"`     // IEEE registry fallback for unknown prefixes
	LogLevel  string   `yaml:"log_level,omitempty"` // zap level: debug, info, warn, error
}

// Duration unmarshals Go duration syntax ("5s", "1500ms") from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Ports:   []int{22, 80, 443},
		Timeout: Duration(2 * time.Second),
	}
}

// DefaultPath returns the conventional config file location, or "" when
// no home directory is known.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lanscout", "config.yaml")
}

// Load reads the config file at path, layered over defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Ports) == 0 {
		cfg.Ports = Default().Ports
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = Default().Timeout
	}
	return cfg, nil
}
