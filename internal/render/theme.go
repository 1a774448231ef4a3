package render

import (
	"strings"

	"github.com/Makepad-fr/sharelist/internal/model"
)

// BuiltinTheme is the lowest theme layer.
var BuiltinTheme = model.ThemeSettings{
	MainBg: "#f5f5f5",
	BoxBg:  "#ffffff",
	Text:   "#333333",
	Font:   "Arial, sans-serif",
}

// ResolveTheme merges BuiltinTheme with each layer in order; later layers win
// field by field and empty fields never override.
func ResolveTheme(layers ...*model.ThemeSettings) model.ThemeSettings {
	out := BuiltinTheme
	for _, l := range layers {
		if l == nil {
			continue
		}
		out.MainBg = pick(out.MainBg, l.MainBg)
		out.BoxBg = pick(out.BoxBg, l.BoxBg)
		out.Text = pick(out.Text, l.Text)
		out.Font = pick(out.Font, l.Font)
	}
	return out
}

func pick(base, override string) string {
	if strings.TrimSpace(override) == "" {
		return base
	}
	return override
}

func applyTheme(t Target, th model.ThemeSettings) {
	t.SetStyleVar(VarMainBg, th.MainBg)
	t.SetStyleVar(VarBoxBg, th.BoxBg)
	t.SetStyleVar(VarText, th.Text)
	t.SetStyleVar(VarFont, th.Font)
	t.SetBackground(th.MainBg)
}
