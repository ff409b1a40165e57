// Package config loads the HCL configuration of the taf command.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Output formats accepted by the parse and render commands.
const (
	FormatText = "text"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Config represents the complete taf configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Workers  int           `hcl:"workers,optional"`
	Output   *OutputConfig `hcl:"output,block"`
}

// OutputConfig controls how parsed states are written
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  *bool  `hcl:"color,optional"`
}

// UseColor reports whether styled text output is enabled (default true).
func (o *OutputConfig) UseColor() bool {
	return o.Color == nil || *o.Color
}

// Default returns the configuration used when no file is present
func Default() *Config {
	color := true
	return &Config{
		LogLevel: "info",
		Workers:  4,
		Output: &OutputConfig{
			Format: FormatText,
			Color:  &color,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Workers == 0 {
		c.Workers = def.Workers
	}
	if c.Output == nil {
		c.Output = def.Output
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.Workers < 1 || c.Workers > 256 {
		return fmt.Errorf("workers must be between 1 and 256, got %d", c.Workers)
	}
	if c.Output == nil {
		return fmt.Errorf("output block is required")
	}
	switch c.Output.Format {
	case FormatText, FormatTOML, FormatYAML:
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	return nil
}
