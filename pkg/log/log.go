// Package log provides a Zerolog-based console logger shared by the
// strhash commands. The library packages never log; only the CLI does.
package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var pkgLogger = zerolog.Nop() // Default to no-op logger

// Init configures the package logger to write human-readable output to
// stderr. With debug true the level drops to Debug, otherwise Info.
func Init(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	pkgLogger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func Debug() *zerolog.Event { return pkgLogger.Debug() }
func Info() *zerolog.Event  { return pkgLogger.Info() }
func Warn() *zerolog.Event  { return pkgLogger.Warn() }
func Error() *zerolog.Event { return pkgLogger.Error() }

// Printf sends a log event at info level.
// Arguments are handled in the manner of fmt.Printf.
func Printf(format string, v ...interface{}) {
	pkgLogger.Info().CallerSkipFrame(1).Msgf(format, v...)
}

func Fatalf(format string, v ...any) {
	pkgLogger.Fatal().Msgf(format, v...)
}
