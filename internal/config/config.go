// Package config provides configuration loading for the mkwd CLI.
package config

import (
	"os"
	"path/filepath"
)

// Config holds the CLI's user-adjustable defaults. Everything here is
// caller-side glue: the generation engine receives resolved values and never
// reads configuration itself.
type Config struct {
	// DefaultFlavor is used when --flavor is not given.
	// Env: MKWD_FLAVOR, Default: "portfolio"
	DefaultFlavor string `mapstructure:"flavor"`

	// APIPort is baked into generated projects as the application port.
	// Env: MKWD_PORT, Default: 8080
	APIPort int `mapstructure:"port"`

	// Verbose enables debug logging.
	// Env: MKWD_VERBOSE, Default: false
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		DefaultFlavor: "portfolio",
		APIPort:       8080,
	}
}

// DefaultConfigFile returns the default config file path,
// ~/.config/mkwd/config.yaml.
func DefaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mkwd", "config.yaml"), nil
}
