package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	History  HistoryConfig
	Logging  LoggingConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// HistoryConfig controls the calculation tape.
type HistoryConfig struct {
	Enabled bool
	Limit   int
	Recent  int
}

// LoggingConfig holds log writer settings.
type LoggingConfig struct {
	Level  string
	File   string
	Format string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Title     string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskcalc")
}

// Path returns the config file location. JASKCALC_CONFIG wins when set.
func Path() string {
	if p := os.Getenv("JASKCALC_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix JASKCALC_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "jaskcalc.db"))
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.limit", 100)
	v.SetDefault("history.recent", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", filepath.Join(dataDir(), "logs", "jaskcalc.log"))
	v.SetDefault("logging.format", "text")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.title", "jaskcalc")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("JASKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.History.Recent <= 0 {
		c.History.Recent = 10
	}
	return c, nil
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("history.recent", cfg.History.Recent)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.format", cfg.Logging.Format)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.title", cfg.UI.Title)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
