// Package config resolves the runtime settings of the annehoy CLI from flags,
// ANNEHOY_* environment variables, and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"svw.info/annehoy/internal/domain"
)

const (
	EnvPrefix     = "ANNEHOY"
	EnvConfigFile = "ANNEHOY_CONFIG"

	KeyStools       = "stools"
	KeyDiscs        = "discs"
	KeySolutionsDir = "solutions-dir"
	KeyLogLevel     = "log-level"
	KeyNoColor      = "no-color"
)

// Config holds the resolved settings.
type Config struct {
	Stools       int
	Discs        int
	SolutionsDir string
	LogLevel     string
	NoColor      bool
	// File is the config file that was read, empty when none was found.
	File string
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		Stools:       4,
		Discs:        5,
		SolutionsDir: "./solutions",
		LogLevel:     "info",
	}
}

// BindFlags registers the shared flags on fs with their default values.
func BindFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.Int(KeyStools, d.Stools, "Number of stools in the game")
	fs.Int(KeyDiscs, d.Discs, "Number of discs seeded on stool 0")
	fs.String(KeySolutionsDir, d.SolutionsDir, "Directory searched for solution files")
	fs.String(KeyLogLevel, d.LogLevel, "Log level (debug, info, warn, error)")
	fs.Bool(KeyNoColor, d.NoColor, "Disable coloured output")
}

// Load merges flags, environment, and config file, in that order of precedence.
// An explicit path (or ANNEHOY_CONFIG) must exist; the implicit config.yaml
// lookup is allowed to find nothing.
func Load(explicitPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeyStools, d.Stools)
	v.SetDefault(KeyDiscs, d.Discs)
	v.SetDefault(KeySolutionsDir, d.SolutionsDir)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyNoColor, d.NoColor)

	if explicitPath == "" {
		explicitPath = os.Getenv(EnvConfigFile)
	}
	configureConfigFile(v, explicitPath)
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	if err := readConfigFile(v, explicitPath != ""); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Stools:       v.GetInt(KeyStools),
		Discs:        v.GetInt(KeyDiscs),
		SolutionsDir: v.GetString(KeySolutionsDir),
		LogLevel:     v.GetString(KeyLogLevel),
		NoColor:      v.GetBool(KeyNoColor),
		File:         v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no game can be built from.
func (c *Config) Validate() error {
	switch {
	case c.Stools < 1:
		return fmt.Errorf("%w: stools must be >= 1, got %d", domain.ErrConfiguration, c.Stools)
	case c.Discs < 1:
		return fmt.Errorf("%w: discs must be >= 1, got %d", domain.ErrConfiguration, c.Discs)
	case strings.TrimSpace(c.SolutionsDir) == "":
		return fmt.Errorf("%w: solutions-dir is empty", domain.ErrConfiguration)
	}
	return nil
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	dirs := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "annehoy"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "annehoy"))
	}
	return dirs
}
