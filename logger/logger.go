// Package logger builds the zerolog logger used for diagnostics.
//
// Diagnostics are not user output: they go to stderr, and only warnings and
// errors are shown unless verbose mode is on.
package logger

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a human friendly logger writing to w.
// Verbose lowers the level from Warn to Debug.
func New(w io.Writer, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// WithContext adds the logger to the context.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// FromContext retrieves the logger from the context, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
