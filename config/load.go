package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/teranos/texref/errors"
)

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the texref configuration, caching the result for later calls.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	globalConfig = &cfg
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file, bypassing the
// search path and the cache.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshal config from %s", path)
	}
	return &cfg, nil
}

// GetViper returns the shared Viper instance for advanced access.
func GetViper() *viper.Viper {
	return initViper()
}

// Reset clears the cached configuration. Intended for tests.
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper assembles the configuration sources: defaults, then user and
// project texref.toml files in precedence order, then TEXREF_* environment
// variables on top.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()
	v.SetEnvPrefix("TEXREF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig walks up from the working directory looking for a
// texref.toml. Returns the empty string when none exists.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "texref.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// mergeConfigFiles merges user and project config files, lowest precedence
// first: ~/.texref/config.toml, then the nearest project texref.toml.
func mergeConfigFiles(v *viper.Viper) {
	var paths []string

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".texref", "config.toml"))
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		merged := viper.New()
		merged.SetConfigFile(path)
		merged.SetConfigType("toml")
		if err := merged.ReadInConfig(); err != nil {
			continue
		}
		for key, value := range merged.AllSettings() {
			v.Set(key, value)
		}
	}
}
