/*
Package config holds the settings of the tablr command line tool.

Settings are read from a TOML file and may be overridden by command line
flags:

	table       = "tables/lalr.csv"       # ACTION/GOTO table (required for parsing)
	rules       = "grammar.rules"         # rule catalog, default: built-in grammar
	start       = "<programa>"            # start symbol, default: from rule 0
	lexer       = "priority"              # "priority" or "dfa"
	trace_file  = "salida.txt"
	tree_file   = "arbol_derivacion.txt"
	format      = "text"                  # "text" or "yaml"
	trace_level = "Error"                 # Debug | Info | Error

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The tablr authors

*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Lexer kinds.
const (
	LexerPriority = "priority"
	LexerDFA      = "dfa"
)

// Report formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalid is returned for configurations with illegal values.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of a tablr run.
type Config struct {
	Table      string `toml:"table"`
	Rules      string `toml:"rules"`
	Start      string `toml:"start"`
	Lexer      string `toml:"lexer"`
	TraceFile  string `toml:"trace_file"`
	TreeFile   string `toml:"tree_file"`
	Format     string `toml:"format"`
	TraceLevel string `toml:"trace_level"`
}

// Default returns a configuration with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file. Keys missing from the file get
// their default values, unknown keys are an error.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Lexer == "" {
		c.Lexer = LexerPriority
	}
	if c.TraceFile == "" {
		c.TraceFile = "salida.txt"
	}
	if c.TreeFile == "" {
		c.TreeFile = "arbol_derivacion.txt"
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.TraceLevel == "" {
		c.TraceLevel = "Error"
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Lexer {
	case LexerPriority, LexerDFA:
	default:
		return fmt.Errorf("%w: lexer must be %q or %q, is %q", ErrInvalid, LexerPriority, LexerDFA, c.Lexer)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: format must be %q or %q, is %q", ErrInvalid, FormatText, FormatYAML, c.Format)
	}
	switch strings.ToLower(c.TraceLevel) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalid, c.TraceLevel)
	}
	return nil
}
