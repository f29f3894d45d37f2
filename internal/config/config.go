package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the front-end.
type Config struct {
	LoginDelay  time.Duration  `mapstructure:"login_delay"`
	RecentCount int            `mapstructure:"recent_count"`
	StartPage   string         `mapstructure:"start_page"`
	SeedFile    string         `mapstructure:"seed_file"`
	LogLevel    string         `mapstructure:"log_level"`
	Currency    CurrencyConfig `mapstructure:"currency"`
}

type CurrencyConfig struct {
	Locale string `mapstructure:"locale"`
	Symbol string `mapstructure:"symbol"`
}

// New returns a viper instance with defaults and NEXUS_* environment
// overrides registered.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("login_delay", 800*time.Millisecond)
	v.SetDefault("recent_count", 3)
	v.SetDefault("start_page", "")
	v.SetDefault("seed_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("currency.locale", "en-IN")
	v.SetDefault("currency.symbol", "₹")

	v.SetEnvPrefix("nexus")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the front-end cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.LoginDelay < 0 {
		errs = append(errs, fmt.Errorf("login_delay must not be negative, got %s", c.LoginDelay))
	}
	if c.RecentCount < 0 {
		errs = append(errs, fmt.Errorf("recent_count must not be negative, got %d", c.RecentCount))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level converts LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
