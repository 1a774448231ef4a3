package render

// recorder is an in-memory Target that keeps the last state of every region.
type recorder struct {
	dark     bool
	vars     map[string]string
	bg       string
	page     string
	title    string
	subtitle Subtitle
	visible  map[Element]bool
	header   []string
	rows     []Row
	clears   int
}

func newRecorder() *recorder {
	return &recorder{vars: map[string]string{}, visible: map[Element]bool{}}
}

func (r *recorder) SetDarkMode(on bool)                 { r.dark = on }
func (r *recorder) SetStyleVar(name, value string)      { r.vars[name] = value }
func (r *recorder) SetBackground(color string)          { r.bg = color }
func (r *recorder) SetPageTitle(text string)            { r.page = text }
func (r *recorder) SetTitle(text string)                { r.title = text }
func (r *recorder) SetSubtitle(s Subtitle)              { r.subtitle = s }
func (r *recorder) SetVisible(el Element, visible bool) { r.visible[el] = visible }
func (r *recorder) SetHeader(cells []string)            { r.header = append([]string(nil), cells...) }
func (r *recorder) ClearBody()                          { r.rows = nil; r.clears++ }
func (r *recorder) AppendRow(row Row)                   { r.rows = append(r.rows, row) }
