// Package config loads the optional YAML run configuration: extra
// clang arguments for parsing and output options for emission.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from a config file or flag.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}

// Config is the root of a run configuration file.
type Config struct {
	Clang  Clang  `yaml:"clang"`
	Output Output `yaml:"output"`
}

// Clang configures the arguments passed to the parser.
type Clang struct {
	// IncludeDirs are added as -I arguments.
	IncludeDirs []string `yaml:"include_dirs,omitempty"`

	// Defines are added as -D arguments, e.g. "FOO" or "FOO=1".
	Defines []string `yaml:"defines,omitempty"`

	// Args are passed through verbatim after includes and defines.
	Args []string `yaml:"args,omitempty"`
}

// Output configures emission.
type Output struct {
	Format Format `yaml:"format,omitempty"`
	Pretty bool   `yaml:"pretty,omitempty"`
}

// Default returns the configuration used when no file is given:
// compact JSON, no extra clang arguments.
func Default() *Config {
	return &Config{Output: Output{Format: FormatJSON}}
}

// LoadFile loads and parses a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses YAML data into a Config, applying defaults and
// validating the output format.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatJSON
	}

	if _, err := ParseFormat(string(cfg.Output.Format)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ClangArgs assembles the clang argument list: include directories,
// then defines, then passthrough arguments.
func (c *Clang) ClangArgs() []string {
	args := make([]string, 0, len(c.IncludeDirs)+len(c.Defines)+len(c.Args))

	for _, dir := range c.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	for _, def := range c.Defines {
		args = append(args, "-D"+def)
	}

	return append(args, c.Args...)
}
