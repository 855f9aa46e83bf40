// Package config loads the strhash defaults from file and environment via
// Viper; flag overrides are applied by the caller. Per-call salt/rounds
// arguments always win over anything configured here.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"strhash/pkg/appdir"
	"strhash/pkg/strhash"
)

type Config struct {
	Debug         bool   `mapstructure:"debug"`
	DefaultRounds int    `mapstructure:"default_rounds"`
	DefaultSalt   string `mapstructure:"default_salt"`
	HashLength    int    `mapstructure:"hash_length"`
	ConfigFile    string `mapstructure:"config_file"` // Path to config
}

func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		DefaultRounds: strhash.DefaultRounds,
		DefaultSalt:   strhash.DefaultSalt,
		HashLength:    strhash.DefaultLength,
		ConfigFile:    "strhash.yaml",
	}
}

// Load reads configuration from the given file (or the default search
// paths when file is empty), then from STRHASH_* environment variables.
// A missing config file is not an error; defaults apply.
func Load(file string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("default_rounds", cfg.DefaultRounds)
	v.SetDefault("default_salt", cfg.DefaultSalt)
	v.SetDefault("hash_length", cfg.HashLength)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("strhash")
		v.SetConfigType("yaml")
		v.AddConfigPath(".") // look for config in the working directory
		if dir := appdir.AppDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}
	v.SetEnvPrefix("STRHASH") // will be uppercased automatically, STRHASH_...
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit file that is absent or unreadable is an error;
			// a missing file on the search path is not.
			if file != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	} else {
		cfg.ConfigFile = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Hasher builds the strhash configuration backed by this Config.
func (c *Config) Hasher() *strhash.Hasher {
	return strhash.New(strhash.Config{
		Rounds: c.DefaultRounds,
		Salt:   c.DefaultSalt,
		Length: c.HashLength,
	})
}
