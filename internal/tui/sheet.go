package tui

import (
	"strings"

	"github.com/Makepad-fr/sharelist/internal/render"
)

// sheet is the render.Target behind the viewer: it keeps the rendered
// regions as plain data for the bubbles table.
type sheet struct {
	dark         bool
	textColor    string
	title        string
	subtitle     render.Subtitle
	showSubtitle bool
	showImage    bool
	header       []string
	rows         []render.Row
}

func (s *sheet) SetDarkMode(on bool) { s.dark = on }

func (s *sheet) SetStyleVar(name, value string) {
	if name == render.VarText && strings.HasPrefix(value, "#") {
		s.textColor = value
	}
}

func (s *sheet) SetBackground(string)            {}
func (s *sheet) SetPageTitle(string)             {}
func (s *sheet) SetTitle(text string)            { s.title = text }
func (s *sheet) SetSubtitle(sub render.Subtitle) { s.subtitle = sub }

func (s *sheet) SetVisible(el render.Element, visible bool) {
	switch el {
	case render.ElemSubtitle:
		s.showSubtitle = visible
	case render.ElemSubtitleImage:
		s.showImage = visible
	}
}

func (s *sheet) SetHeader(cells []string) { s.header = append([]string(nil), cells...) }
func (s *sheet) ClearBody()               { s.rows = nil }
func (s *sheet) AppendRow(r render.Row)   { s.rows = append(s.rows, r) }
