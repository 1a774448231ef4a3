// Package htmlpage is a render.Target that produces a standalone HTML page.
package htmlpage

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Makepad-fr/sharelist/internal/render"
)

//go:embed templates/page.html templates/share.css
var assetsFS embed.FS

var pageTmpl = template.Must(template.New("base").ParseFS(assetsFS, "templates/page.html"))

// Page accumulates the state written by the renderer. The zero value is ready to use.
type Page struct {
	dark       bool
	varOrder   []string
	vars       map[string]string
	background string
	pageTitle  string
	title      string

	subtitle        render.Subtitle
	subtitleVisible bool
	imageVisible    bool

	header []string
	rows   []render.Row
}

func (p *Page) SetDarkMode(on bool) { p.dark = on }

func (p *Page) SetStyleVar(name, value string) {
	if p.vars == nil {
		p.vars = map[string]string{}
	}
	if _, ok := p.vars[name]; !ok {
		p.varOrder = append(p.varOrder, name)
	}
	p.vars[name] = value
}

func (p *Page) SetBackground(color string)    { p.background = color }
func (p *Page) SetPageTitle(text string)      { p.pageTitle = text }
func (p *Page) SetTitle(text string)          { p.title = text }
func (p *Page) SetSubtitle(s render.Subtitle) { p.subtitle = s }

func (p *Page) SetVisible(el render.Element, visible bool) {
	switch el {
	case render.ElemSubtitle:
		p.subtitleVisible = visible
	case render.ElemSubtitleImage:
		p.imageVisible = visible
	}
}

func (p *Page) SetHeader(cells []string) { p.header = append([]string(nil), cells...) }
func (p *Page) ClearBody()               { p.rows = nil }
func (p *Page) AppendRow(r render.Row)   { p.rows = append(p.rows, r) }

type pageData struct {
	Dark            bool
	PageTitle       string
	Title           string
	RootVars        template.CSS
	Stylesheet      template.CSS
	BodyStyle       template.CSS
	Subtitle        render.Subtitle
	SubtitleVisible bool
	ImageVisible    bool
	SubtitleStyle   template.CSS
	ImageStyle      template.CSS
	Header          []string
	Rows            []render.Row
}

// Write renders the page as HTML.
func (p *Page) Write(w io.Writer) error {
	css, err := assetsFS.ReadFile("templates/share.css")
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}

	var vars strings.Builder
	for _, name := range p.varOrder {
		fmt.Fprintf(&vars, "%s: %s; ", name, cssValue(p.vars[name]))
	}
	data := pageData{
		Dark:            p.dark,
		PageTitle:       p.pageTitle,
		Title:           p.title,
		RootVars:        template.CSS(vars.String()),
		Stylesheet:      template.CSS(css),
		Subtitle:        p.subtitle,
		SubtitleVisible: p.subtitleVisible,
		ImageVisible:    p.imageVisible,
		Header:          p.header,
		Rows:            p.rows,
	}
	if p.background != "" {
		data.BodyStyle = template.CSS("background-color: " + cssValue(p.background) + ";")
	}
	if p.subtitle.LineHeight != "" {
		data.SubtitleStyle = template.CSS("line-height: " + cssValue(p.subtitle.LineHeight) + ";")
	}
	if p.imageVisible {
		data.ImageStyle = template.CSS(fmt.Sprintf("margin-left: %s; margin-right: %s;",
			cssValue(p.subtitle.ImageMarginLeft), cssValue(p.subtitle.ImageMarginRight)))
	}
	if err := pageTmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// cssValue drops characters that could end a declaration or open a new rule.
// Theme values come from the share link and are otherwise untrusted.
func cssValue(v string) string {
	v = strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\\', '\n', '\r':
			return -1
		}
		return r
	}, v)
	lower := strings.ToLower(v)
	if strings.Contains(lower, "url(") || strings.Contains(lower, "expression(") || strings.Contains(lower, "@import") {
		return ""
	}
	return strings.TrimSpace(v)
}
