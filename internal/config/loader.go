package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Environment variable prefix for mkwd configuration.
const envPrefix = "MKWD"

// Loader handles loading and merging configuration from file and
// environment. Environment variables take precedence over file values.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	_ = v.BindEnv("flavor", "MKWD_FLAVOR")
	_ = v.BindEnv("port", "MKWD_PORT")
	_ = v.BindEnv("verbose", "MKWD_VERBOSE")

	defaults := DefaultConfig()
	v.SetDefault("flavor", defaults.DefaultFlavor)
	v.SetDefault("port", defaults.APIPort)
	v.SetDefault("verbose", defaults.Verbose)

	return &Loader{v: v}
}

// Load loads configuration from the given file path. If configFile is
// empty, MKWD_CONFIG is consulted, then the default path. A missing default
// file is not an error; a file the user named explicitly must exist.
func (l *Loader) Load(configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		if fromEnv := os.Getenv("MKWD_CONFIG"); fromEnv != "" {
			configFile = fromEnv
			explicit = true
		}
	}
	if configFile == "" {
		var err error
		configFile, err = DefaultConfigFile()
		if err != nil {
			return nil, fmt.Errorf("resolving config file path: %w", err)
		}
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		if explicit || !missing {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
