// Package render turns a decoded ListDocument into a themed table on a Target.
package render

import (
	"errors"

	"github.com/Makepad-fr/sharelist/internal/codec"
	"github.com/Makepad-fr/sharelist/internal/linkrule"
	"github.com/Makepad-fr/sharelist/internal/model"
)

const (
	DefaultListName  = "Shared List"
	UnnamedItem      = "Unnamed Item"
	EmptyListMessage = "This shared list is empty."
	pageTitlePrefix  = "List Assist – Shared: "
	noURLPlaceholder = "-"
)

// BaseHeader is the fixed part of the table header; custom columns follow it.
var BaseHeader = []string{"Item", "Link"}

// Renderer holds the app-level configuration that applies to every document.
// The zero value renders with built-in defaults and no link decoration.
type Renderer struct {
	Links        *linkrule.Table
	ThemeDefault *model.ThemeSettings
}

func New(links *linkrule.Table, themeDefault *model.ThemeSettings) *Renderer {
	return &Renderer{Links: links, ThemeDefault: themeDefault}
}

// RenderFragment decodes fragment and renders it. On a codec failure only the
// failure message is written to the title region and the *codec.DecodeError
// is returned.
func (r *Renderer) RenderFragment(fragment string, t Target) error {
	doc, err := codec.Decode(fragment)
	if err != nil {
		RenderError(err, t)
		return err
	}
	r.Render(doc, t)
	return nil
}

// RenderError writes the human-readable failure message into the title region
// and leaves the table empty.
func RenderError(err error, t Target) {
	msg := "Invalid or corrupted list data"
	var de *codec.DecodeError
	if errors.As(err, &de) {
		msg = de.Message()
	}
	t.ClearBody()
	t.SetTitle(msg)
}

// Render writes doc into t. Calling it again with the same document leaves t in
// the same state.
func (r *Renderer) Render(doc model.ListDocument, t Target) {
	t.SetDarkMode(bool(doc.IsDarkMode))
	applyTheme(t, ResolveTheme(r.ThemeDefault, doc.Theme))
	applySizes(t, ResolveSizes(doc.Subtitle))

	t.SetTitle(Heading(doc.Name))
	t.SetPageTitle(PageTitle(doc.Name))
	renderSubtitle(doc.Subtitle, t)

	t.SetHeader(Header(doc.CustomColumns))
	t.ClearBody()
	for _, row := range r.Rows(doc) {
		t.AppendRow(row)
	}
}

// ImageFailed is the host's hook for a subtitle image that failed to load.
func (r *Renderer) ImageFailed(t Target) {
	t.SetVisible(ElemSubtitleImage, false)
}

// CheckImage reports an image whose URL can never load to ImageFailed. Hosts
// without load events call it after Render; browsers use onerror instead.
func (r *Renderer) CheckImage(doc model.ListDocument, t Target) {
	if sub := doc.Subtitle; sub.HasContent() && sub.ImageURL != "" && !ImageLoadable(sub.ImageURL) {
		r.ImageFailed(t)
	}
}

// Heading is the text of the title region.
func Heading(name string) string {
	if name == "" {
		return DefaultListName
	}
	return name
}

// PageTitle is the browser/window title.
func PageTitle(name string) string {
	if name == "" {
		name = "List"
	}
	return pageTitlePrefix + name
}

func renderSubtitle(sub *model.SubtitleSettings, t Target) {
	if !sub.HasContent() {
		t.SetVisible(ElemSubtitle, false)
		return
	}
	align := sub.Alignment
	switch align {
	case "left", "center", "right":
	default:
		align = "left"
	}
	s := Subtitle{
		Text:       sub.Text,
		Class:      subtitleBoxClass + " " + align,
		LineHeight: subtitleLineHeight,
	}
	if sub.ImageURL != "" {
		s.ImageURL = sub.ImageURL
		s.ImageMarginLeft, s.ImageMarginRight = imageMargins(sub.ImageAlignment)
		s.HideImageOnError = true
	}
	t.SetSubtitle(s)
	t.SetVisible(ElemSubtitle, true)
	t.SetVisible(ElemSubtitleImage, sub.ImageURL != "")
}

func imageMargins(align string) (left, right string) {
	left, right = "auto", "auto"
	if align == "left" {
		left = "0"
	}
	if align == "right" {
		right = "0"
	}
	return left, right
}

// Header returns the full header row for the given custom columns.
func Header(cols []model.ColumnDef) []string {
	out := make([]string, 0, len(BaseHeader)+len(cols))
	out = append(out, BaseHeader...)
	for _, c := range cols {
		out = append(out, c.Name)
	}
	return out
}

// Rows builds the body rows for doc, including the empty-state row.
func (r *Renderer) Rows(doc model.ListDocument) []Row {
	if len(doc.Items) == 0 {
		return []Row{{
			Item: -1,
			Cells: []Cell{{
				Text:    EmptyListMessage,
				ColSpan: len(BaseHeader) + len(doc.CustomColumns),
				Class:   EmptyStateClass,
				Italic:  true,
				Align:   "center",
			}},
		}}
	}
	rows := make([]Row, 0, len(doc.Items))
	for i, it := range doc.Items {
		rows = append(rows, r.itemRow(i, it, doc.CustomColumns))
	}
	return rows
}

func (r *Renderer) itemRow(idx int, it model.Item, cols []model.ColumnDef) Row {
	name := it.Name
	if name == "" {
		name = UnnamedItem
	}
	row := Row{Item: idx, Cells: make([]Cell, 0, len(BaseHeader)+len(cols))}

	if it.URL == "" {
		row.Cells = append(row.Cells, Cell{Text: name}, Cell{Text: noURLPlaceholder})
	} else {
		href := r.Links.Apply(it.URL)
		row.URL = href
		row.Cells = append(row.Cells,
			Cell{Text: name, Href: href, NewTab: true},
			Cell{Text: HostLabel(it.URL), Href: href, NewTab: true},
		)
	}
	for _, c := range cols {
		row.Cells = append(row.Cells, Cell{Text: it.CustomColumns[c.ID]})
	}
	return row
}
