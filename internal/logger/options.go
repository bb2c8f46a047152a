package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type settings struct {
	out       io.Writer
	level     zerolog.Level
	console   bool
	timestamp bool
}

// Option tweaks how New builds the logger.
type Option func(*settings)

// WithLevel sets the minimum level by name ("debug", "info", ...).
func WithLevel(level string) Option {
	return func(s *settings) {
		s.level = ParseLevel(level)
	}
}

// WithConsoleWriter switches between human readable lines and JSON.
func WithConsoleWriter(enabled bool) Option {
	return func(s *settings) {
		s.console = enabled
	}
}

func WithOutput(out io.Writer) Option {
	return func(s *settings) {
		s.out = out
	}
}

// WithTimestamp adds a time field to every entry.
func WithTimestamp() Option {
	return func(s *settings) {
		s.timestamp = true
	}
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// mean info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
