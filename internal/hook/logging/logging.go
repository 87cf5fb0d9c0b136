// Package logging holds the framework-wide structured logger.
//
// The framework logs rarely: insertion failures, retired handles firing and,
// at debug level, each successful insertion. Hot-path dispatch never builds
// an event unless the level is enabled.
//
// Usage:
//
//	logging.Set(logging.New(os.Stderr, logiface.LevelDebug))
//	logging.L().Warning().Str("handle", h.String()).Log("retired handle fired")
package logging

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// DefaultLevel is the level used until Set is called.
const DefaultLevel = logiface.LevelWarning

var current atomic.Pointer[logiface.Logger[logiface.Event]]

func init() {
	current.Store(New(os.Stderr, DefaultLevel))
}

// New builds a JSON line logger writing to w.
func New(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(level),
	).Logger()
}

// Set replaces the framework logger. A nil logger disables logging.
//
// Thread Safety: Safe to call concurrently with L.
func Set(l *logiface.Logger[logiface.Event]) {
	current.Store(l)
}

// L returns the framework logger. The result may be nil, which logiface
// treats as a disabled logger.
func L() *logiface.Logger[logiface.Event] {
	return current.Load()
}
