package render

// Element names a region of the host surface that can be shown or hidden.
type Element int

const (
	ElemSubtitle Element = iota
	ElemSubtitleImage
)

func (e Element) String() string {
	switch e {
	case ElemSubtitle:
		return "subtitle"
	case ElemSubtitleImage:
		return "subtitle-image"
	}
	return "unknown"
}

// Style variable names the host stylesheet consumes.
const (
	VarMainBg          = "--user-main-bg-color"
	VarBoxBg           = "--user-bg-color"
	VarText            = "--user-text-color"
	VarFont            = "--user-font-family"
	VarSubtitleFont    = "--subtitle-font-size"
	VarTitleFont       = "--title-font-size"
	VarImageMaxHeight  = "--image-max-height"
	DarkModeClass      = "dark-mode"
	EmptyStateClass    = "empty-state"
	subtitleBoxClass   = "subtitle-box"
	subtitleLineHeight = "1.5"
)

// Target is the surface the renderer writes into. Implementations own the
// actual drawing (HTML, terminal, test recorder); the renderer only calls
// these methods and never reads back.
type Target interface {
	SetDarkMode(on bool)
	SetStyleVar(name, value string)
	SetBackground(color string)
	SetPageTitle(text string)
	SetTitle(text string)
	SetSubtitle(s Subtitle)
	SetVisible(el Element, visible bool)
	SetHeader(cells []string)
	ClearBody()
	AppendRow(r Row)
}

// Subtitle is the resolved caption block.
type Subtitle struct {
	Text       string
	Class      string // "subtitle-box <alignment>"
	LineHeight string

	ImageURL         string
	ImageMarginLeft  string
	ImageMarginRight string
	// HideImageOnError asks the host to hide the image instead of showing a
	// broken-image placeholder. Hosts without load events call
	// Renderer.CheckImage instead.
	HideImageOnError bool
}

// Cell is one table cell. Href is empty for plain-text cells.
type Cell struct {
	Text    string
	Href    string
	NewTab  bool
	ColSpan int
	Class   string
	Italic  bool
	Align   string
}

// Row is one body row. Item is the index into ListDocument.Items, or -1 for
// the empty-state row. URL is the decorated item link, empty when absent.
type Row struct {
	Item  int
	URL   string
	Cells []Cell
}
