package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/teranos/kin/errors"
)

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the kin configuration. The result is cached; call Reset to
// force a reload (used by tests and the config watcher).
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path, bypassing the
// cache and the config search path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration.
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// GetViper returns the Viper instance for advanced configuration access.
func GetViper() *viper.Viper {
	return initViper()
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()
	v.SetConfigType("toml")
	SetDefaults(v)

	// Project config wins over nothing: kin.toml found by walking up from
	// the working directory. Missing config is not an error.
	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err == nil {
			viperInstance = v
			return v
		}
	}

	viperInstance = v
	return v
}

// findProjectConfig searches for kin.toml by walking up the directory tree.
// Returns the first config file found, or "" if none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "kin.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
