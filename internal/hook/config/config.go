// Package config loads framework settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (see Default)
//  2. A YAML file named by the DYNHOOK_CONFIG environment variable
//  3. An option string in the DYNHOOK environment variable
//
// The option string uses space separated key=value pairs:
//
//	DYNHOOK="log=debug retired=panic sites=1"
//
// Keys:
//   - log: logging level (disabled, emerg, alert, crit, err, warning, notice, info, debug, trace)
//   - retired: what to do when a retired handle fires (warn, panic)
//   - sites: capture registration call sites (boolean)
//
// The environment is read once at package initialization. Invalid settings
// are logged and the defaults are kept.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/joeycumines/logiface"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/dynhook/internal/hook/logging"
)

// Environment variable names.
const (
	FileEnv    = "DYNHOOK_CONFIG"
	OptionsEnv = "DYNHOOK"
)

// ErrInvalid is wrapped by every settings validation error.
var ErrInvalid = errors.New("invalid dynhook setting")

// RetiredPolicy selects how a firing of a retired handle is handled.
type RetiredPolicy uint8

const (
	// RetiredWarn drops the firing and logs a warning.
	RetiredWarn RetiredPolicy = iota
	// RetiredPanic panics in the firing goroutine.
	RetiredPanic
)

// String returns the option keyword for p.
func (p RetiredPolicy) String() string {
	switch p {
	case RetiredWarn:
		return "warn"
	case RetiredPanic:
		return "panic"
	default:
		return "RetiredPolicy(" + strconv.Itoa(int(p)) + ")"
	}
}

// Config holds the framework settings.
type Config struct {
	// LogLevel is the minimum level of framework log events.
	LogLevel logiface.Level

	// Retired selects the behavior for firings of retired handles.
	Retired RetiredPolicy

	// Sites enables registration call-site capture.
	Sites bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: logging.DefaultLevel,
		Retired:  RetiredWarn,
		Sites:    false,
	}
}

// fileConfig is the YAML file layout.
type fileConfig struct {
	Log     string `yaml:"log"`
	Retired string `yaml:"retired"`
	Sites   *bool  `yaml:"sites"`
}

// Load reads the settings from the environment.
//
// Returns:
//   - Config: Defaults overridden by the file and option string
//   - error: Read, parse or validation failure (Config is Default() then)
func Load() (Config, error) {
	c := Default()
	if path := os.Getenv(FileEnv); path != "" {
		if err := c.LoadFile(path); err != nil {
			return Default(), err
		}
	}
	if opts := os.Getenv(OptionsEnv); opts != "" {
		if err := c.ParseOptions(opts); err != nil {
			return Default(), err
		}
	}
	return c, nil
}

// LoadFile overrides c with the settings present in the YAML file at path.
// Keys absent from the file leave c unchanged.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if fc.Log != "" {
		if err := c.set("log", fc.Log); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if fc.Retired != "" {
		if err := c.set("retired", fc.Retired); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if fc.Sites != nil {
		c.Sites = *fc.Sites
	}
	return nil
}

// ParseOptions overrides c with the key=value pairs in opts.
func (c *Config) ParseOptions(opts string) error {
	for _, field := range strings.Fields(opts) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not key=value", ErrInvalid, field)
		}
		if err := c.set(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "log":
		lvl, err := ParseLevel(value)
		if err != nil {
			return err
		}
		c.LogLevel = lvl
	case "retired":
		switch value {
		case "warn":
			c.Retired = RetiredWarn
		case "panic":
			c.Retired = RetiredPanic
		default:
			return fmt.Errorf("%w: retired=%q (want warn or panic)", ErrInvalid, value)
		}
	case "sites":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: sites=%q", ErrInvalid, value)
		}
		c.Sites = b
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
	}
	return nil
}

var levels = map[string]logiface.Level{
	"disabled": logiface.LevelDisabled,
	"off":      logiface.LevelDisabled,
	"emerg":    logiface.LevelEmergency,
	"alert":    logiface.LevelAlert,
	"crit":     logiface.LevelCritical,
	"err":      logiface.LevelError,
	"error":    logiface.LevelError,
	"warning":  logiface.LevelWarning,
	"warn":     logiface.LevelWarning,
	"notice":   logiface.LevelNotice,
	"info":     logiface.LevelInformational,
	"debug":    logiface.LevelDebug,
	"trace":    logiface.LevelTrace,
}

// ParseLevel parses a level keyword. Keywords are case-insensitive.
func ParseLevel(s string) (logiface.Level, error) {
	if lvl, ok := levels[strings.ToLower(s)]; ok {
		return lvl, nil
	}
	return logiface.LevelDisabled, fmt.Errorf("%w: log level %q", ErrInvalid, s)
}

var current atomic.Pointer[Config]

func init() {
	c, err := Load()
	if err != nil {
		logging.L().Err().Err(err).Log("dynhook: config load failed, using defaults")
	}
	Apply(c)
}

// Current returns the active settings.
func Current() Config {
	return *current.Load()
}

// Apply activates c and rebuilds the framework logger on stderr at
// c.LogLevel. Install a custom logger after Apply to keep it.
func Apply(c Config) {
	current.Store(&c)
	logging.Set(logging.New(os.Stderr, c.LogLevel))
}
