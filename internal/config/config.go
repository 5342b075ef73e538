// Package config provides Viper-based configuration for adopctl.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/facundocornejo/adopcionResposanble/session"
)

// Config holds all adopctl configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig holds session persistence settings.
type SessionConfig struct {
	// File is the path of the persisted session. Empty means the
	// platform default under the user config dir.
	File string `mapstructure:"file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig holds output formatting settings.
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".adopctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/adopctl")
	}

	v.SetEnvPrefix("ADOPCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No config file is fine, defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Session.File == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving session path: %w", err)
		}
		cfg.Session.File = path
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://adopcion-api.onrender.com")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("output.colors", true)
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", cfg.API.Timeout)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}
	return nil
}
