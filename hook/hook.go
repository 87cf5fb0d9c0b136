package hook

import (
	"github.com/joeycumines/logiface"

	"github.com/kolkov/dynhook/internal/hook/config"
	"github.com/kolkov/dynhook/internal/hook/logging"
)

// Config holds the framework settings. See LoadConfig.
type Config = config.Config

// RetiredPolicy selects how a firing of a retired callback is handled.
type RetiredPolicy = config.RetiredPolicy

// Retired callback policies.
const (
	RetiredWarn  = config.RetiredWarn
	RetiredPanic = config.RetiredPanic
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config { return config.Default() }

// LoadConfig reads the settings from the DYNHOOK_CONFIG file and the
// DYNHOOK option string. On error it returns the defaults.
func LoadConfig() (Config, error) { return config.Load() }

// CurrentConfig returns the active settings.
func CurrentConfig() Config { return config.Current() }

// Configure activates c. It replaces the framework logger with a stderr
// logger at c.LogLevel; call SetLogger afterwards to keep a custom one.
func Configure(c Config) { config.Apply(c) }

// SetLogger replaces the framework logger. A nil logger disables framework
// logging.
//
// Example:
//
//	hook.SetLogger(stumpy.L.New(
//		stumpy.L.WithStumpy(stumpy.WithWriter(os.Stdout)),
//		stumpy.L.WithLevel(logiface.LevelDebug),
//	).Logger())
func SetLogger(l *logiface.Logger[logiface.Event]) { logging.Set(l) }

// Logger returns the framework logger.
func Logger() *logiface.Logger[logiface.Event] { return logging.L() }
