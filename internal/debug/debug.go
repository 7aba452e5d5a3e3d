// Package debug provides the process-wide debug logger used by every skel package.
//
// Messages are emitted through zerolog and are discarded unless debug mode
// has been switched on with SetDebug (the --debug flag).
package debug

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, false, false)
)

func newLogger(w io.Writer, on, plain bool) zerolog.Logger {
	level := zerolog.Disabled
	if on {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		NoColor:    plain,
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func rebuild() {
	logger = newLogger(out, enabled, noColor)
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	rebuild()
}

// Logger returns the underlying zerolog logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug prints a debug message
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	l := Logger()
	l.Debug().Msgf(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	l := Logger()
	l.Debug().Msg("=== " + section + " ===")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	l := Logger()
	l.Debug().Interface(key, value).Send()
}

// DebugDuration logs how long an operation took. Intended for use with defer:
//
//	defer debug.DebugDuration("[store] List", time.Now())
func DebugDuration(operation string, start time.Time) {
	if !IsEnabled() {
		return
	}
	l := Logger()
	l.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("completed")
}
