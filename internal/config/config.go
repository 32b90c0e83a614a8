package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. HOOKSDEMO_LOG_LEVEL.
const EnvPrefix = "HOOKSDEMO"

// Config holds application configuration.
type Config struct {
	Log    LogConfig
	Cart   CartConfig
	Effect EffectConfig
	Memo   MemoConfig
	UI     UIConfig
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level string
	Path  string
}

// CartConfig bounds the prices of generated items.
type CartConfig struct {
	MinPriceCents int64 `mapstructure:"min_price_cents"`
	MaxPriceCents int64 `mapstructure:"max_price_cents"`
}

// EffectConfig holds effect panel settings.
type EffectConfig struct {
	LoadDelay time.Duration `mapstructure:"load_delay"`
}

// MemoConfig holds memo panel settings.
type MemoConfig struct {
	MaxInput  int `mapstructure:"max_input"`
	CacheSize int `mapstructure:"cache_size"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Dark bool
	Once bool
}

var (
	errPriceRange = errors.New("cart.min_price_cents must not exceed cart.max_price_cents")
	errNegPrice   = errors.New("cart.min_price_cents must not be negative")
	errCacheSize  = errors.New("memo.cache_size must be positive")
	errMaxInput   = errors.New("memo.max_input must be between 0 and 20")
	errLoadDelay  = errors.New("effect.load_delay must not be negative")
)

// MaxFactorialInput is the largest n whose factorial fits in a uint64.
const MaxFactorialInput = 20

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Cart.MinPriceCents < 0:
		return errNegPrice
	case c.Cart.MinPriceCents > c.Cart.MaxPriceCents:
		return errPriceRange
	case c.Memo.CacheSize <= 0:
		return errCacheSize
	case c.Memo.MaxInput < 0 || c.Memo.MaxInput > MaxFactorialInput:
		return errMaxInput
	case c.Effect.LoadDelay < 0:
		return errLoadDelay
	}
	return nil
}

// Flags returns the command-line flags Load understands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("hooksdemo", pflag.ContinueOnError)
	fs.String("config", "", "path to a TOML config file")
	fs.Bool("once", false, "print a single render and exit")
	fs.Bool("dark", false, "start with the dark theme")
	fs.String("log-path", "", "write logs to this file")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	return fs
}

var flagKeys = map[string]string{
	"once":      "ui.once",
	"dark":      "ui.dark",
	"log-path":  "log.path",
	"log-level": "log.level",
}

// Load parses args and reads configuration from flags, env and file, in
// that order of precedence. Env var overrides use prefix HOOKSDEMO_.
func Load(args []string) (Config, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("cart.min_price_cents", 1000)
	v.SetDefault("cart.max_price_cents", 5900)
	v.SetDefault("effect.load_delay", 2*time.Second)
	v.SetDefault("memo.max_input", MaxFactorialInput)
	v.SetDefault("memo.cache_size", 32)
	v.SetDefault("ui.dark", false)
	v.SetDefault("ui.once", false)

	v.SetConfigType("toml")

	cfgPath, _ := fs.GetString("config")
	if cfgPath == "" {
		cfgPath = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := cfgPath != ""
	if explicit {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "hooksdemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	// a missing default file is fine; a named one must exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
