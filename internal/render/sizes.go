package render

import (
	"fmt"

	"github.com/Makepad-fr/sharelist/internal/model"
)

const defaultSizeKey model.SizeKey = "2"

// Text sizes are kept in tenths of an em so the title offset stays exact.
var textSizeTenths = map[model.SizeKey]int{
	"1": 8,
	"2": 11,
	"3": 17,
	"4": 30,
	"5": 50,
}

var imageSizePx = map[model.SizeKey]int{
	"1": 80,
	"2": 150,
	"3": 250,
	"4": 400,
	"5": 700,
}

// titleOffsetTenths is added to the subtitle size to get the title size.
const titleOffsetTenths = 3

// Sizes are CSS lengths ready for the style variables.
type Sizes struct {
	SubtitleFont   string
	TitleFont      string
	ImageMaxHeight string
}

// ResolveSizes maps the subtitle's ordinal sizes to lengths. Unknown or
// missing keys use entry "2".
func ResolveSizes(sub *model.SubtitleSettings) Sizes {
	var textKey, imageKey model.SizeKey
	if sub != nil {
		textKey, imageKey = sub.TextSize, sub.ImageSize
	}
	text, ok := textSizeTenths[textKey]
	if !ok {
		text = textSizeTenths[defaultSizeKey]
	}
	img, ok := imageSizePx[imageKey]
	if !ok {
		img = imageSizePx[defaultSizeKey]
	}
	return Sizes{
		SubtitleFont:   em(text),
		TitleFont:      em(text + titleOffsetTenths),
		ImageMaxHeight: fmt.Sprintf("%dpx", img),
	}
}

func em(tenths int) string {
	return fmt.Sprintf("%d.%dem", tenths/10, tenths%10)
}

func applySizes(t Target, s Sizes) {
	t.SetStyleVar(VarSubtitleFont, s.SubtitleFont)
	t.SetStyleVar(VarTitleFont, s.TitleFont)
	t.SetStyleVar(VarImageMaxHeight, s.ImageMaxHeight)
}
