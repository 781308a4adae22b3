package config

import (
	"strings"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
// and binds KIN_* environment variable overrides.
func SetDefaults(v *viper.Viper) {
	// Data defaults
	v.SetDefault("data.path", "data/family.ged")
	v.SetDefault("data.output_dir", "")

	// Database defaults
	v.SetDefault("database.path", "kin.db")

	// Log defaults
	v.SetDefault("log.json", false)

	// Search defaults
	v.SetDefault("search.result_limit", 10)

	// Environment variable binding: KIN_DATA_PATH, KIN_DATABASE_PATH, ...
	v.SetEnvPrefix("KIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
