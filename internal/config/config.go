// Package config provides configuration management.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/katalvlaran/keypadchain/internal/logging"
	"github.com/katalvlaran/keypadchain/presscost"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the main application configuration.
// Files may be written in HCL (.hcl) or HCL's JSON syntax (.json):
//
//	depths  = [2, 25]
//	workers = 4
//	commas  = true
//
//	logging {
//	  level = "info"
//	}
type Config struct {
	// Depths lists the robot chain depths to solve, in output order
	Depths []int `hcl:"depths,optional" json:"depths"`

	// Workers bounds concurrent code evaluation; 0 means one per CPU
	Workers int `hcl:"workers,optional" json:"workers"`

	// Format is the result format (text, json)
	Format string `hcl:"format,optional" json:"format"`

	// Commas groups digits of large totals with thousands separators
	Commas bool `hcl:"commas,optional" json:"commas"`

	// TraceLimit caps the length of press sequences printed by trace
	TraceLimit uint64 `hcl:"trace_limit,optional" json:"trace_limit"`

	// Logging contains logging configuration
	Logging *logging.Config `hcl:"logging,block" json:"logging"`
}

// Default returns a default configuration
func Default() *Config {
	lc := logging.DefaultConfig()
	return &Config{
		Depths:     []int{2, 25},
		Workers:    0,
		Format:     FormatText,
		Commas:     false,
		TraceLimit: presscost.DefaultMaxTraceLength,
		Logging:    &lc,
	}
}

// Load loads configuration from an .hcl or .json file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.fillLogging()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillLogging restores defaults for logging attributes a decoded block left empty.
func (c *Config) fillLogging() {
	def := logging.DefaultConfig()
	if c.Logging == nil {
		c.Logging = &def
		return
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Format
	}
	if c.Logging.Output == "" {
		c.Logging.Output = def.Output
	}
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	if len(c.Depths) == 0 {
		return fmt.Errorf("%w: depths must not be empty", ErrInvalid)
	}
	for _, d := range c.Depths {
		if d < 0 {
			return fmt.Errorf("%w: depth %d is negative", ErrInvalid, d)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalid, c.Workers)
	}
	if c.TraceLimit == 0 || c.TraceLimit > presscost.MaxTraceLength {
		return fmt.Errorf("%w: trace_limit %d (want 1..%d)", ErrInvalid, c.TraceLimit, presscost.MaxTraceLength)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatText, FormatJSON)
	}
	return nil
}

// Save saves configuration as JSON, which Load reads back. path must end
// in .json.
func (c *Config) Save(path string) error {
	if filepath.Ext(path) != ".json" {
		return fmt.Errorf("%w: save path %q must end in .json", ErrInvalid, path)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
