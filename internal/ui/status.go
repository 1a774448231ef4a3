package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	symCheck = "✔"
	symCross = "✖"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedText = lipgloss.NewStyle().Faint(true)
)

// ConfigureColor picks the colour profile once at startup. disable wins over
// force; otherwise colour is used only when stdout is a terminal.
func ConfigureColor(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()):
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, okStyle.Render(symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, failStyle.Render(symCross+" "+msg)) }
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, mutedText.Render(msg)) }
