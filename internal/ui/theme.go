package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Borders selects the frame characters; the palette itself comes from the list's theme.
type Borders string

const (
	BordersClassic Borders = "classic"
	BordersRounded Borders = "rounded"
	BordersMono    Borders = "mono"
)

func (b Borders) border() lipgloss.Border {
	switch strings.ToLower(string(b)) {
	case string(BordersRounded):
		return lipgloss.RoundedBorder()
	case string(BordersMono):
		return lipgloss.ASCIIBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// palette holds the terminal colours derived from the resolved list theme.
type palette struct {
	text   lipgloss.TerminalColor
	border lipgloss.TerminalColor
}

// newPalette maps the list's text colour to the terminal. Dark mode inverts it
// so a light-theme list stays readable on a dark terminal.
func newPalette(text string, dark bool) palette {
	if dark {
		text = invertHex(text)
	}
	return palette{
		text:   hexColor(text),
		border: lipgloss.Color("8"),
	}
}

// hexColor accepts #rgb and #rrggbb; CSS names and functions have no terminal
// equivalent and fall back to the terminal default.
func hexColor(v string) lipgloss.TerminalColor {
	v = strings.TrimSpace(v)
	if h, ok := expandHex(v); ok {
		return lipgloss.Color(h)
	}
	return lipgloss.NoColor{}
}

func expandHex(v string) (string, bool) {
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	digits := v[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", false
		}
	}
	switch len(digits) {
	case 3:
		return "#" + string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]}), true
	case 6:
		return v, true
	}
	return "", false
}

func invertHex(v string) string {
	h, ok := expandHex(strings.TrimSpace(v))
	if !ok {
		return v
	}
	var r, g, b int
	if _, err := fmt.Sscanf(h, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", 255-r, 255-g, 255-b)
}
