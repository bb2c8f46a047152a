package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal500))

// Spinner shows a terminal spinner while a long operation runs. It cannot be
// cancelled by the user; the wrapped operation always runs to completion.
type Spinner struct {
	mu      sync.Mutex
	out     io.Writer
	isTTY   bool
	program *tea.Program
	quitCh  chan struct{}
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

type msgQuit struct{}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgQuit:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		// Key presses are ignored so Ctrl-C cannot abort generation.
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), DimStyle.Render(m.message))
}

// NewSpinner creates a spinner drawing on stderr.
func NewSpinner() *Spinner {
	return NewSpinnerWithOutput(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewSpinnerWithOutput creates a spinner drawing on out. When isTTY is false
// the message is printed once instead of animated.
func NewSpinnerWithOutput(out io.Writer, isTTY bool) *Spinner {
	return &Spinner{
		out:   out,
		isTTY: isTTY,
	}
}

// Start shows the spinner with message. Calling Start on a running spinner
// is a no-op.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program != nil {
		return
	}

	if !s.isTTY {
		fmt.Fprintf(s.out, "%s\n", DimStyle.Render(message))
		return
	}

	s.quitCh = make(chan struct{})
	s.program = tea.NewProgram(newSpinnerModel(message),
		tea.WithOutput(s.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	program, quitCh := s.program, s.quitCh
	go func() {
		_, _ = program.Run()
		close(quitCh)
	}()
}

// Stop clears the spinner and waits for it to finish drawing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	program, quitCh := s.program, s.quitCh
	s.program = nil
	s.mu.Unlock()

	if program == nil {
		return
	}
	program.Send(msgQuit{})
	<-quitCh
}

// Run executes fn while showing the spinner titled message.
func (s *Spinner) Run(message string, fn func() error) error {
	s.Start(message)
	defer s.Stop()
	return fn()
}
