package ui

import (
	"fmt"
	"io"
)

// Styled line printers. Each writes a single line to w.

func Title(w io.Writer, text string) {
	fmt.Fprintln(w, TitleStyle.Render(text))
}

// Success prints a success message with checkmark (Green)
func Success(w io.Writer, text string) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ "+text))
}

// Error prints an error message with a cross (Red)
func Error(w io.Writer, text string) {
	fmt.Fprintln(w, ErrorStyle.Render("✗ "+text))
}

// Warning prints a warning message (Yellow)
func Warning(w io.Writer, text string) {
	fmt.Fprintln(w, WarningStyle.Render("! "+text))
}

func Dim(w io.Writer, text string) {
	fmt.Fprintln(w, DimStyle.Render("  "+text))
}

func Print(w io.Writer, text string) {
	fmt.Fprintln(w, text)
}

func RenderDim(text string) string {
	return DimStyle.Render(text)
}

func RenderCode(text string) string {
	return CodeStyle.Render(text)
}
