// Package config loads kin configuration from kin.toml and KIN_* environment
// variables via Viper. Configuration is optional: every field has a working
// default, so the tool runs without any config file present.
package config

import (
	"path/filepath"
	"strings"
)

// Config is the kin tool configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Search   SearchConfig   `mapstructure:"search"`
}

// DataConfig locates the GEDCOM input and JSON output.
type DataConfig struct {
	// Path is the default GEDCOM file used when no positional argument
	// is given on the command line.
	Path string `mapstructure:"path"`

	// OutputDir receives derived JSON files; empty means next to input.
	OutputDir string `mapstructure:"output_dir"`
}

// DatabaseConfig configures the SQLite export target.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures logger output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// SearchConfig bounds query output.
type SearchConfig struct {
	// ResultLimit caps how many matches the CLI prints for a name search.
	ResultLimit int `mapstructure:"result_limit"`
}

// DeriveOutputPath maps a GEDCOM input path to its JSON output path:
// "family.ged" becomes "family_parsed.json", honoring OutputDir when set.
func (c *Config) DeriveOutputPath(input string) string {
	out := strings.TrimSuffix(input, ".ged") + "_parsed.json"
	if c.Data.OutputDir != "" {
		out = filepath.Join(c.Data.OutputDir, filepath.Base(out))
	}
	return out
}
