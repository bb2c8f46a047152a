// Package output reports wizard progress to the user. Every entry is printed
// to the console with a level marker and recorded in the structured log.
package output

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/fabkit-dev/fabkit/internal/ui"
)

// LogType is the severity of an output entry.
type LogType string

const (
	INFO    LogType = "INFO"
	WARNING LogType = "WARNING"
	ERROR   LogType = "ERROR"
	SUCCESS LogType = "SUCCESS"
)

// Adapter prints short messages for the user and keeps the long form in the
// debug log.
type Adapter struct {
	out io.Writer
	log *zerolog.Logger
}

func NewAdapter(log *zerolog.Logger) *Adapter {
	return NewAdapterWithOutput(os.Stdout, log)
}

func NewAdapterWithOutput(out io.Writer, log *zerolog.Logger) *Adapter {
	return &Adapter{
		out: out,
		log: log,
	}
}

// Log prints short to the console. long, when given, replaces short in the
// log entry.
func (a *Adapter) Log(level LogType, short, long string) {
	switch level {
	case SUCCESS:
		ui.Success(a.out, short)
	case ERROR:
		ui.Error(a.out, short)
	case WARNING:
		ui.Warning(a.out, short)
	default:
		ui.Print(a.out, short)
	}

	detail := long
	if detail == "" {
		detail = short
	}
	// The console line is the user's copy; the log keeps the detail for
	// --verbose runs.
	a.log.Debug().Str("log_type", string(level)).Msg(detail)
}
