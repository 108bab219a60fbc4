package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/woozymasta/savepaths"
)

// Config is the top-level savepaths configuration.
type Config struct {
	OS       string   `mapstructure:"os"`
	Output   Output   `mapstructure:"output"`
	Manifest Manifest `mapstructure:"manifest"`
}

// Output defines output preferences.
type Output struct {
	Color     bool `mapstructure:"color"`
	JSON      bool `mapstructure:"json"`
	CellWidth int  `mapstructure:"cell_width"`
}

// Manifest defines manifest processing settings.
type Manifest struct {
	Workers      int      `mapstructure:"workers"`
	KeepUnusable bool     `mapstructure:"keep_unusable"`
	Tags         []string `mapstructure:"tags"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. Environment variables
// prefixed with SAVEPATHS_ override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("os", DefaultOS)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.json", DefaultOutput.JSON)
	v.SetDefault("output.cell_width", DefaultOutput.CellWidth)
	v.SetDefault("manifest.workers", DefaultManifest.Workers)
	v.SetDefault("manifest.keep_unusable", DefaultManifest.KeepUnusable)
	v.SetDefault("manifest.tags", []string{})

	v.SetEnvPrefix("savepaths")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if _, err := cfg.TargetOS(); err != nil {
		return nil, fmt.Errorf("config os: %w", err)
	}

	return &cfg, nil
}

// TargetOS parses the configured OS tag.
func (c *Config) TargetOS() (savepaths.OS, error) {
	return savepaths.ParseOS(c.OS)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
