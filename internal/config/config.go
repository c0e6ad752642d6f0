// Package config holds the settings shared by the server and the CLI.
//
// Values are layered by viper: built-in defaults, then an optional
// orfscan.yaml, then ORFSCAN_* environment variables, then bound flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/aria-lang/orfscan-go/internal/frame"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. ORFSCAN_THRESHOLD.
const EnvPrefix = "ORFSCAN"

// FileName is the settings file looked up in the working directory.
const FileName = "orfscan"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// CacheConfig sizes the finished job cache.
type CacheConfig struct {
	// maximum number of cached reports
	Capacity int `mapstructure:"capacity"`

	// how long a report stays retrievable
	TTL time.Duration `mapstructure:"ttl"`

	// how often expired reports are dropped
	SweepInterval time.Duration `mapstructure:"sweep-interval"`
}

// ServerConfig is the HTTP listen address.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// debug, info, warn or error
	Level string `mapstructure:"level"`
}

// Config is the root settings struct.
type Config struct {
	// minimum identity of an LCA window, in (0, 1]
	Threshold float64 `mapstructure:"threshold"`

	// FWD, REV or BOTH
	Direction string `mapstructure:"direction"`

	// alignment worker goroutines
	Workers int `mapstructure:"workers"`

	// hits kept per target
	TopK int `mapstructure:"topk"`

	Cache  CacheConfig  `mapstructure:"cache"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Threshold: 0.98,
		Direction: string(frame.BOTH),
		Workers:   runtime.NumCPU(),
		TopK:      5,
		Cache: CacheConfig{
			Capacity:      256,
			TTL:           time.Hour,
			SweepInterval: time.Minute,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers Default with v so that environment variables for
// every key are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("threshold", d.Threshold)
	v.SetDefault("direction", d.Direction)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("topk", d.TopK)
	v.SetDefault("cache.capacity", d.Cache.Capacity)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.sweep-interval", d.Cache.SweepInterval)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads settings into a validated Config. An empty file searches the
// working directory for orfscan.yaml and tolerates its absence; a named
// file must exist.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", file, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read settings: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold %g outside (0, 1]", ErrInvalid, c.Threshold)
	}
	if _, err := frame.ParseDirection(c.Direction); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1", ErrInvalid)
	}
	if c.TopK < 1 {
		return fmt.Errorf("%w: topk must be >= 1", ErrInvalid)
	}
	return nil
}

// Addr is the host:port the server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
