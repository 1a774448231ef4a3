// Package tui is the interactive, read-only viewer for a shared list.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/sharelist/internal/calendar"
	"github.com/Makepad-fr/sharelist/internal/clipboard"
	"github.com/Makepad-fr/sharelist/internal/model"
	"github.com/Makepad-fr/sharelist/internal/render"
)

const maxColumnWidth = 40

// Options wires the viewer to its collaborators.
type Options struct {
	Renderer     *render.Renderer
	Clipboard    clipboard.Writer
	ShareURL     string
	OutputDir    string
	CopyFeedback time.Duration
	Now          func() time.Time
}

type (
	copyDoneMsg struct {
		what string
		err  error
	}
	calendarDoneMsg struct {
		path string
		err  error
	}
	clearStatusMsg struct{ seq int }
)

type viewer struct {
	opt  Options
	doc  model.ListDocument
	out  sheet
	tbl  table.Model
	keys keyMap
	help help.Model

	status    string
	statusErr bool
	statusSeq int
	alert     string // shown until the next key press
	height    int
}

func newViewer(doc model.ListDocument, opt Options) viewer {
	if opt.Renderer == nil {
		opt.Renderer = render.New(nil, nil)
	}
	if opt.Clipboard == nil {
		opt.Clipboard = clipboard.System
	}
	if opt.CopyFeedback <= 0 {
		opt.CopyFeedback = 2 * time.Second
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	v := viewer{opt: opt, doc: doc, keys: defaultKeys(), help: help.New(), height: 24}
	opt.Renderer.Render(doc, &v.out)
	opt.Renderer.CheckImage(doc, &v.out)

	cols, rows := tableData(&v.out)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	v.tbl = table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithStyles(styles),
		table.WithWidth(tableWidth(cols)),
	)
	v.resize()
	return v
}

// tableData converts rendered rows to bubbles table columns and rows. The
// empty-state row has no colspan in a terminal table, so its text goes in the
// first column.
func tableData(s *sheet) ([]table.Column, []table.Row) {
	widths := make([]int, len(s.header))
	for i, h := range s.header {
		widths[i] = lipgloss.Width(h)
	}
	rows := make([]table.Row, 0, len(s.rows))
	for _, r := range s.rows {
		row := make(table.Row, len(s.header))
		for i, c := range r.Cells {
			if i >= len(row) {
				break
			}
			row[i] = c.Text
			if w := lipgloss.Width(c.Text); w > widths[i] {
				widths[i] = w
			}
		}
		rows = append(rows, row)
	}
	cols := make([]table.Column, len(s.header))
	for i, h := range s.header {
		w := widths[i]
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		cols[i] = table.Column{Title: h, Width: w}
	}
	return cols, rows
}

// tableWidth accounts for the one-cell padding on each side of every column.
func tableWidth(cols []table.Column) int {
	w := 0
	for _, c := range cols {
		w += c.Width + 2
	}
	return w
}

func (v *viewer) resize() {
	reserved := 8
	if v.out.showSubtitle {
		reserved += 2
	}
	h := v.height - reserved
	if h < 3 {
		h = 3
	}
	v.tbl.SetHeight(h)
}

func (v viewer) Init() tea.Cmd { return nil }

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.height = msg.Height
		v.help.Width = msg.Width
		v.resize()
		return v, nil

	case copyDoneMsg:
		if msg.err != nil {
			v.alert = "Could not copy " + msg.what + ": " + msg.err.Error()
			return v, nil
		}
		return v.flash("Copied "+msg.what+"!", false)

	case calendarDoneMsg:
		if msg.err != nil {
			return v.flash("Calendar export failed: "+msg.err.Error(), true)
		}
		return v.flash("Saved "+msg.path, false)

	case clearStatusMsg:
		if msg.seq == v.statusSeq {
			v.status, v.statusErr = "", false
		}
		return v, nil

	case tea.KeyMsg:
		if v.alert != "" {
			v.alert = ""
			return v, nil
		}
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.CopyItem):
			u := v.selectedURL()
			if u == "" {
				return v.flash("This item has no link", true)
			}
			return v, copyCmd(v.opt.Clipboard, "item link", u)
		case key.Matches(msg, v.keys.CopyShare):
			return v, copyCmd(v.opt.Clipboard, "share link", v.opt.ShareURL)
		case key.Matches(msg, v.keys.Calendar):
			return v, calendarCmd(v.opt.OutputDir, calendar.Event{Name: v.doc.Name, ShareURL: v.opt.ShareURL}, v.opt.Now())
		}
	}

	var cmd tea.Cmd
	v.tbl, cmd = v.tbl.Update(msg)
	return v, cmd
}

// flash shows a transient status label that reverts after CopyFeedback.
func (v viewer) flash(text string, isErr bool) (tea.Model, tea.Cmd) {
	v.statusSeq++
	v.status, v.statusErr = text, isErr
	seq := v.statusSeq
	return v, tea.Tick(v.opt.CopyFeedback, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (v viewer) selectedURL() string {
	i := v.tbl.Cursor()
	if i < 0 || i >= len(v.out.rows) {
		return ""
	}
	return v.out.rows[i].URL
}

func copyCmd(w clipboard.Writer, what, text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{what: what, err: clipboard.Copy(w, text)}
	}
}

func calendarCmd(dir string, ev calendar.Event, now time.Time) tea.Cmd {
	return func() tea.Msg {
		p, err := calendar.Save(dir, ev, now)
		return calendarDoneMsg{path: p, err: err}
	}
}

func (v viewer) View() string {
	color := v.out.textColor
	if v.out.dark {
		color = ""
	}
	var b strings.Builder
	b.WriteString(themed(titleStyle, color).Render(v.out.title))
	b.WriteString("\n")
	if v.out.showSubtitle {
		if v.out.subtitle.Text != "" {
			b.WriteString(subtitleStyle.Render(v.out.subtitle.Text))
			b.WriteString("\n")
		}
		if v.out.showImage {
			b.WriteString(mutedStyle.Render("[image] " + v.out.subtitle.ImageURL))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(v.tbl.View())
	b.WriteString("\n")

	if u := v.selectedURL(); u != "" {
		b.WriteString(mutedStyle.Render(u))
	}
	b.WriteString("\n")
	switch {
	case v.status == "":
		b.WriteString(" ")
	case v.statusErr:
		b.WriteString(errorStyle.Render("✖ " + v.status))
	default:
		b.WriteString(successStyle.Render("✔ " + v.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	content := panelString(b.String())
	if v.alert != "" {
		content += "\n" + alertStyle.Render(v.alert+"\n\n"+mutedStyle.Render("press any key"))
	}
	return content
}

// Run opens the viewer on doc and blocks until the user quits.
func Run(doc model.ListDocument, opt Options) error {
	p := tea.NewProgram(newViewer(doc, opt), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
