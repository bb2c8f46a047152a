package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned by every prompt when the user dismisses it with
// Esc or Ctrl-C.
var ErrCancelled = huh.ErrUserAborted

// keyMap is huh's default key map with Esc added to Quit.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	)
	return km
}

func newForm(field huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(Theme()).
		WithKeyMap(keyMap())
}

// --- Input ---

// InputOption configures an Input prompt.
type InputOption func(*inputConfig)

type inputConfig struct {
	description string
	placeholder string
}

// WithInputDescription sets the description for an Input prompt.
func WithInputDescription(desc string) InputOption {
	return func(c *inputConfig) {
		c.description = desc
	}
}

// WithPlaceholder sets the placeholder text for an Input prompt.
func WithPlaceholder(placeholder string) InputOption {
	return func(c *inputConfig) {
		c.placeholder = placeholder
	}
}

// Input displays a single text input prompt and returns the value as typed.
func Input(title string, opts ...InputOption) (string, error) {
	cfg := inputConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	var result string
	input := huh.NewInput().
		Title(title).
		Value(&result)

	if cfg.description != "" {
		input = input.Description(cfg.description)
	}
	if cfg.placeholder != "" {
		input = input.Placeholder(cfg.placeholder)
	}

	if err := newForm(input).Run(); err != nil {
		return "", err
	}
	return result, nil
}

// --- Select ---

// SelectOption represents a single option in a Select prompt.
type SelectOption[T comparable] struct {
	Label       string
	Description string
	Value       T
}

func (o SelectOption[T]) key() string {
	if o.Description == "" {
		return o.Label
	}
	return fmt.Sprintf("%s  %s", o.Label, DimStyle.Render(o.Description))
}

// Select displays a selection prompt and returns the chosen value.
func Select[T comparable](title string, options []SelectOption[T]) (T, error) {
	var result T

	huhOpts := make([]huh.Option[T], len(options))
	for i, opt := range options {
		huhOpts[i] = huh.NewOption(opt.key(), opt.Value)
	}

	selectField := huh.NewSelect[T]().
		Title(title).
		Options(huhOpts...).
		Value(&result)

	if err := newForm(selectField).Run(); err != nil {
		return result, err
	}
	return result, nil
}

// --- Folder ---

// BrowseFolder asks for a folder path and returns it as an absolute path.
// A blank answer is returned as "" with no error.
func BrowseFolder(title string, opts ...InputOption) (string, error) {
	answer, err := Input(title, opts...)
	if err != nil {
		return "", err
	}
	return folderAnswer(answer)
}

func folderAnswer(answer string) (string, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", nil
	}
	return ResolveFolder(answer)
}

// ResolveFolder expands a leading "~" and makes path absolute.
func ResolveFolder(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve folder %q: %w", path, err)
	}
	return abs, nil
}
