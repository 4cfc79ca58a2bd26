// Package config loads generator settings from quickshape.yml, environment
// variables, and defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the quickshape configuration.
type Config struct {
	TopLevel  string          `mapstructure:"top_level"`
	Output    string          `mapstructure:"output"`
	Indent    int             `mapstructure:"indent"`
	Inference InferenceConfig `mapstructure:"inference"`
}

// InferenceConfig toggles the inference heuristics.
type InferenceConfig struct {
	DetectEnums   bool `mapstructure:"detect_enums"`
	DetectFormats bool `mapstructure:"detect_formats"`
	DetectMaps    bool `mapstructure:"detect_maps"`
}

// Load reads quickshape.yml or quickshape.yaml from the current directory,
// falling back to defaults when no config file exists.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("indent", 4)
	v.SetDefault("inference.detect_enums", true)
	v.SetDefault("inference.detect_formats", true)
	v.SetDefault("inference.detect_maps", false)

	v.SetConfigName("quickshape")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("QUICKSHAPE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(cfg *Config) error {
	if cfg.Indent < 1 || cfg.Indent > 8 {
		return fmt.Errorf("indent must be between 1 and 8, got: %d", cfg.Indent)
	}
	return nil
}
