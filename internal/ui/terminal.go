// Package ui draws a shared list in the terminal and prints CLI status lines.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Makepad-fr/sharelist/internal/render"
)

// Terminal is a render.Target that lays the list out as a framed table.
type Terminal struct {
	Borders Borders
	ShowURL bool // print the full link instead of the host label

	dark      bool
	vars      map[string]string
	title     string
	subtitle  render.Subtitle
	subShown  bool
	imageShow bool
	header    []string
	rows      []render.Row
}

func (t *Terminal) SetDarkMode(on bool) { t.dark = on }

func (t *Terminal) SetStyleVar(name, value string) {
	if t.vars == nil {
		t.vars = map[string]string{}
	}
	t.vars[name] = value
}

// SetBackground is a no-op: terminals keep their own background.
func (t *Terminal) SetBackground(string)          {}
func (t *Terminal) SetPageTitle(string)           {}
func (t *Terminal) SetTitle(text string)          { t.title = text }
func (t *Terminal) SetSubtitle(s render.Subtitle) { t.subtitle = s }

func (t *Terminal) SetVisible(el render.Element, visible bool) {
	switch el {
	case render.ElemSubtitle:
		t.subShown = visible
	case render.ElemSubtitleImage:
		t.imageShow = visible
	}
}

func (t *Terminal) SetHeader(cells []string) { t.header = append([]string(nil), cells...) }
func (t *Terminal) ClearBody()               { t.rows = nil }
func (t *Terminal) AppendRow(r render.Row)   { t.rows = append(t.rows, r) }

// Title is the heading last written by the renderer.
func (t *Terminal) Title() string { return t.title }

// String renders the whole list.
func (t *Terminal) String() string {
	pal := newPalette(t.vars[render.VarText], t.dark)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.text)

	lines := []string{titleStyle.Render(t.title)}
	if t.subShown {
		lines = append(lines, t.subtitleLines(pal)...)
	}
	if len(t.header) > 0 {
		lines = append(lines, "", t.tableString(pal))
	}
	frame := lipgloss.NewStyle().
		Border(t.Borders.border()).
		BorderForeground(pal.border).
		Padding(0, 1)
	return frame.Render(strings.Join(lines, "\n"))
}

func (t *Terminal) subtitleLines(pal palette) []string {
	align := lipgloss.Left
	switch {
	case strings.HasSuffix(t.subtitle.Class, " center"):
		align = lipgloss.Center
	case strings.HasSuffix(t.subtitle.Class, " right"):
		align = lipgloss.Right
	}
	style := lipgloss.NewStyle().Foreground(pal.text).Italic(true).Align(align)
	var out []string
	if t.subtitle.Text != "" {
		out = append(out, style.Render(t.subtitle.Text))
	}
	if t.imageShow && t.subtitle.ImageURL != "" {
		out = append(out, mutedText.Render("[image] "+t.subtitle.ImageURL))
	}
	return out
}

func (t *Terminal) tableString(pal palette) string {
	var empty *render.Cell
	rows := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		if r.Item < 0 && len(r.Cells) == 1 {
			c := r.Cells[0]
			empty = &c
			continue
		}
		row := make([]string, 0, len(r.Cells))
		for i, c := range r.Cells {
			text := c.Text
			if t.ShowURL && i == 1 && c.Href != "" {
				text = c.Href
			}
			row = append(row, text)
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(pal.text)
	cellStyle := lipgloss.NewStyle().Padding(0, 1).Foreground(pal.text)
	linkStyle := cellStyle.Underline(true)

	tbl := table.New().
		Border(t.Borders.border()).
		BorderStyle(lipgloss.NewStyle().Foreground(pal.border)).
		Headers(t.header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col <= 1 && row >= 0 && row < len(rows) && t.linked(row) {
				return linkStyle
			}
			return cellStyle
		})
	out := tbl.Render()
	if empty != nil {
		msg := lipgloss.NewStyle().
			Italic(true).
			Faint(true).
			Width(lipgloss.Width(out)).
			Align(lipgloss.Center).
			Render(empty.Text)
		out += "\n" + msg
	}
	return out
}

// linked reports whether data row i (empty-state row excluded) carries a link.
func (t *Terminal) linked(i int) bool {
	n := 0
	for _, r := range t.rows {
		if r.Item < 0 {
			continue
		}
		if n == i {
			return r.URL != ""
		}
		n++
	}
	return false
}
