package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/Makepad-fr/sharelist/internal/clipboard"
	"github.com/Makepad-fr/sharelist/internal/ui"
)

// Options carry the process-level collaborators into the command tree.
type Options struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Clipboard clipboard.Writer
}

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad invocations (exit 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// reportedError has already been shown to the user; Run only sets the exit code.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Run executes the command line and returns the process exit code.
func Run(args []string, opt Options) int {
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Clipboard == nil {
		opt.Clipboard = clipboard.System
	}

	cmd := NewRootCmd(opt)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var rep reportedError
	if errors.As(err, &rep) {
		return exitError
	}
	ui.Fail(opt.Stderr, err.Error())
	if isUsage(err) {
		ui.Hint(opt.Stderr, "Run `sharelist --help` for usage.")
		return exitUsage
	}
	return exitError
}

func isUsage(err error) bool {
	var ue usageError
	if errors.As(err, &ue) {
		return true
	}
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
