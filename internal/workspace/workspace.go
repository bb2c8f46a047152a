// Package workspace opens a freshly generated project in the user's editor
// and shows what was created.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/fabkit-dev/fabkit/internal/constants"
	"github.com/fabkit-dev/fabkit/internal/ui"
)

// OpenMethod says where the new project should be opened.
type OpenMethod string

const (
	OpenInPlace     OpenMethod = "open-in-place"
	OpenInNewWindow OpenMethod = "open-in-new-window"
	AddToWorkspace  OpenMethod = "add-to-workspace"
)

const DefaultEditor = constants.DefaultEditor

var ErrUnknownOpenMethod = errors.New("unknown open method")

// Methods lists every open method in the order they are offered.
var Methods = []OpenMethod{OpenInPlace, OpenInNewWindow, AddToWorkspace}

func (m OpenMethod) Label() string {
	switch m {
	case OpenInPlace:
		return "Open in current window"
	case OpenInNewWindow:
		return "Open in new window"
	case AddToWorkspace:
		return "Add to workspace"
	default:
		return string(m)
	}
}

func (m OpenMethod) Valid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

func (m OpenMethod) editorFlag() string {
	switch m {
	case OpenInNewWindow:
		return "--new-window"
	case AddToWorkspace:
		return "--add"
	default:
		return "--reuse-window"
	}
}

// CommandRunner starts name with args and returns combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// LookPathFunc resolves a binary on PATH.
type LookPathFunc func(file string) (string, error)

// EditorOpener opens folders with an editor CLI that understands the
// VS Code window flags.
type EditorOpener struct {
	editor   string
	out      io.Writer
	log      *zerolog.Logger
	run      CommandRunner
	lookPath LookPathFunc
}

func NewEditorOpener(editor string, out io.Writer, log *zerolog.Logger) *EditorOpener {
	return NewEditorOpenerWithRunner(editor, out, log, runCommand, exec.LookPath)
}

func NewEditorOpenerWithRunner(editor string, out io.Writer, log *zerolog.Logger, run CommandRunner, lookPath LookPathFunc) *EditorOpener {
	if editor == "" {
		editor = DefaultEditor
	}
	return &EditorOpener{
		editor:   editor,
		out:      out,
		log:      log,
		run:      run,
		lookPath: lookPath,
	}
}

// Open opens path according to method. A missing editor is not an error;
// the user is told where the project lives instead.
func (o *EditorOpener) Open(ctx context.Context, path string, method OpenMethod) error {
	if !method.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOpenMethod, method)
	}

	if _, err := o.lookPath(o.editor); err != nil {
		o.log.Debug().Err(err).Msgf("Editor %s not found", o.editor)
		ui.Dim(o.out, fmt.Sprintf("Open %s in your editor to get started", ui.RenderCode(path)))
		return nil
	}

	args := []string{method.editorFlag(), path}
	o.log.Debug().Strs("args", args).Msgf("Opening project with %s", o.editor)
	if output, err := o.run(ctx, o.editor, args...); err != nil {
		return fmt.Errorf("failed to open project with %s: %w: %s", o.editor, err, output)
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
