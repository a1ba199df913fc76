package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "hush"

type Config struct {
	MusicFolder    string `koanf:"music_folder" default:"~/Music"`
	PollIntervalMs int    `koanf:"poll_interval_ms" default:"1000" validate:"gte=100,lte=10000"`

	// Strings shown instead of the real track while stealth is on
	Stealth StealthConfig `koanf:"stealth"`

	Log    LogConfig    `koanf:"log"`
	MPRIS  MPRISConfig  `koanf:"mpris"`
	Notify NotifyConfig `koanf:"notify"`
}

// StealthConfig holds the masking strings used under stealth.
type StealthConfig struct {
	Title    string `koanf:"title" default:"Notification" validate:"required"`
	Artist   string `koanf:"artist" default:" "`
	Identity string `koanf:"identity" default:"Notifications" validate:"required"` // MPRIS player name
}

// LogConfig holds logger settings. File defaults to the XDG state dir.
type LogConfig struct {
	Output string `koanf:"output" default:"file" validate:"oneof=stdout stderr file"`
	Level  string `koanf:"level" default:"info" validate:"oneof=debug info warn warning error"`
	File   string `koanf:"file"`
}

// MPRISConfig toggles the D-Bus media player interface.
type MPRISConfig struct {
	Enabled bool `koanf:"enabled" default:"true"`
}

// NotifyConfig holds desktop notification settings.
type NotifyConfig struct {
	Enabled   bool `koanf:"enabled" default:"true"`
	TimeoutMs int  `koanf:"timeout_ms" default:"3000" validate:"gte=0,lte=60000"`
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files, skipping missing ones. Defaults
// are applied first so values set in a file, including false booleans,
// are kept.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "failed to parse %s", path)
			}
		}
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	cfg.MusicFolder = expandPath(cfg.MusicFolder)
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// PollInterval returns the position poller period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// NotifyTimeout returns how long desktop notifications stay visible.
func (c *Config) NotifyTimeout() time.Duration {
	return time.Duration(c.Notify.TimeoutMs) * time.Millisecond
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/hush/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
