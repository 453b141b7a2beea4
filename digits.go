package trayicon

import (
	"image"
	"image/draw"
	"unicode/utf8"

	"github.com/liubquanti/trayicon/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DigitRenderer draws short numeric strings centered on the icon canvas.
type DigitRenderer struct {
	Font FontSource
}

// NewDigitRenderer loads the font at fontPath, falling back to the bitmap font.
func NewDigitRenderer(fontPath string) *DigitRenderer {
	return &DigitRenderer{Font: LoadFont(fontPath)}
}

// Mask renders text into an IconSize x IconSize coverage mask.
//
// The text is first drawn on a scratch canvas, once for every offset of the
// stroke radius. The ink bounding box of the result, not the nominal font
// metrics, is then centered on the icon and shifted by the configured YOffset.
func (r *DigitRenderer) Mask(text string) (*image.Alpha, error) {
	cfg := FontConfigFor(utf8.RuneCountInString(text))
	face, err := r.Font.Face(cfg.Size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, text)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()

	pad := cfg.Stroke + 1
	scratch := image.NewAlpha(image.Rect(0, 0, maxX-minX+2*pad, maxY-minY+2*pad))
	origin := image.Pt(pad-minX, pad-minY)

	d := &font.Drawer{
		Dst:  scratch,
		Src:  image.Opaque,
		Face: face,
	}
	for _, off := range strokeOffsets(cfg.Stroke) {
		d.Dot = fixed.P(origin.X+off.X, origin.Y+off.Y)
		d.DrawString(text)
	}

	mask := image.NewAlpha(iconRect)
	ink := inkBounds(scratch)
	if ink.Empty() {
		return mask, nil
	}

	x := utils.FloorDiv(IconSize-ink.Dx(), 2)
	y := utils.FloorDiv(IconSize-ink.Dy(), 2) + cfg.YOffset
	dr := image.Rect(x, y, x+ink.Dx(), y+ink.Dy())
	draw.Draw(mask, dr, scratch, ink.Min, draw.Src)

	return mask, nil
}

// Draw renders text directly in the theme color.
func (r *DigitRenderer) Draw(text string, t Theme) (*image.NRGBA, error) {
	mask, err := r.Mask(text)
	if err != nil {
		return nil, err
	}
	return Recolor(mask, t), nil
}

// strokeOffsets lists every integer offset within radius of the origin.
func strokeOffsets(radius int) []image.Point {
	if radius <= 0 {
		return []image.Point{{}}
	}
	var pts []image.Point
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				pts = append(pts, image.Pt(dx, dy))
			}
		}
	}
	return pts
}
