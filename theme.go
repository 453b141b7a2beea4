package trayicon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/liubquanti/trayicon/imop"
)

// Theme pairs an output directory name with the solid fill color of its icons.
type Theme struct {
	Name  string
	Color color.NRGBA
}

// Themes are the two variants produced for every glyph, in output order.
var Themes = []Theme{
	{Name: "black", Color: color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
	{Name: "white", Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
}

// ThemeByName looks up one of the Themes.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Recolor repaints the glyph in the theme color. Only the alpha channel of
// src is kept, so the shape and its antialiased edges are preserved whatever
// the colors of the source.
func Recolor(src image.Image, t Theme) *image.NRGBA {
	mask := alphaOf(src)
	b := mask.Bounds()
	fill := imaging.New(b.Dx(), b.Dy(), t.Color)

	return recolorOp.Draw(imop.NewBitmap(b), fill, mask).Img
}

// recolorOp keeps the coverage of the glyph and the color of the fill.
// Draw does not mutate it, so one value serves every call.
var recolorOp = func() *imop.Composite {
	op := imop.InitOp()
	_ = op.Set(imop.SrcIn) // SrcIn is always registered by InitOp.
	return op
}()
