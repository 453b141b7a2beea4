package trayicon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// IconSize is the width and height of every generated icon.
const IconSize = 16

// iconRect is the bounds of a generated icon.
var iconRect = image.Rect(0, 0, IconSize, IconSize)

// fitIcon guarantees the IconSize dimensions, in case a backend ignored the requested size.
func fitIcon(img *image.NRGBA) *image.NRGBA {
	if img.Bounds().Eq(iconRect) {
		return img
	}
	return imaging.Resize(img, IconSize, IconSize, imaging.Lanczos)
}

// inkBounds returns the smallest rectangle holding every non transparent pixel of the mask.
// An empty rectangle is returned for a fully transparent mask.
func inkBounds(mask *image.Alpha) image.Rectangle {
	b := mask.Bounds()
	ink := image.Rectangle{}
	found := false

	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := mask.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.Pix[i] != 0 {
				if !found {
					ink = image.Rect(x, y, x+1, y+1)
					found = true
				} else {
					ink = ink.Union(image.Rect(x, y, x+1, y+1))
				}
			}
			i++
		}
	}
	return ink
}

// alphaOf extracts the alpha channel of img into a mask with min-point at (0, 0).
func alphaOf(img image.Image) *image.Alpha {
	b := img.Bounds()
	dst := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			di := dst.PixOffset(0, y)
			for x := 0; x < b.Dx(); x++ {
				dst.Pix[di+x] = src.Pix[si+x*4+3]
			}
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				a := color.AlphaModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Alpha)
				dst.SetAlpha(x, y, a)
			}
		}
	}
	return dst
}
