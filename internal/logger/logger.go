package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	DefaultLogLevel = "info"

	// LevelEnvVar overrides DefaultLogLevel for console loggers.
	LevelEnvVar = "FABKIT_LOG_LEVEL"
)

// New builds a zerolog logger. Without options it writes info and above to
// stderr as console lines without time or level columns.
func New(opts ...Option) *zerolog.Logger {
	s := &settings{
		out:     os.Stderr,
		level:   zerolog.InfoLevel,
		console: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	var w io.Writer = s.out
	if s.console {
		hidden := []string{zerolog.LevelFieldName}
		if !s.timestamp {
			hidden = append(hidden, zerolog.TimestampFieldName)
		}
		w = zerolog.ConsoleWriter{Out: s.out, PartsExclude: hidden}
	}

	ctx := zerolog.New(w).Level(s.level).With()
	if s.timestamp {
		ctx = ctx.Timestamp()
	}
	log := ctx.Logger()
	return &log
}

// NewConsoleLogger is the CLI's logger; FABKIT_LOG_LEVEL picks the level.
func NewConsoleLogger() *zerolog.Logger {
	level := DefaultLogLevel
	if env, ok := os.LookupEnv(LevelEnvVar); ok {
		level = env
	}
	return New(
		WithLevel(level),
		WithOutput(os.Stderr),
		WithConsoleWriter(true),
	)
}
