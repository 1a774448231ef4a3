// Package clipboard copies share and item links to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Writer is the system clipboard. Tests substitute their own.
type Writer interface {
	WriteAll(text string) error
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")
	}
	return clipboard.WriteAll(text)
}

// System writes to the OS clipboard.
var System Writer = systemWriter{}

var errNothingToCopy = errors.New("nothing to copy")

// Copy writes text to w. Failures are returned to the caller and never retried.
func Copy(w Writer, text string) error {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return errNothingToCopy
	}
	if err := w.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
