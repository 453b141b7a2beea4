// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// It is mainly used to repaint a rasterized glyph in a flat theme color:
// a solid color canvas composited with SrcIn over the glyph keeps the glyph
// coverage and replaces its color.
package imop

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/liubquanti/trayicon/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the result of a composite operation.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composite operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap allocates a transparent bitmap of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new Composite with Copy as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: Copy,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composite operations.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the currently active composite operation.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff source and backdrop fractions of the active operation.
func (op *Composite) factors(as, ab float64) (fa, fb float64) {
	switch op.current {
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 1, 0
}

// Draw composites src over the backdrop dst and stores the non-premultiplied
// result into bitmap. Both images are sampled relative to their own bounds origin,
// over the intersection of their sizes.
func (op *Composite) Draw(bitmap *Bitmap, src, dst image.Image) *Bitmap {
	sb, db := src.Bounds(), dst.Bounds()
	dx, dy := utils.Min(sb.Dx(), db.Dx()), utils.Min(sb.Dy(), db.Dy())
	if bitmap == nil {
		bitmap = NewBitmap(image.Rect(0, 0, dx, dy))
	}

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			cs := color.NRGBAModel.Convert(src.At(sb.Min.X+x, sb.Min.Y+y)).(color.NRGBA)
			cb := color.NRGBAModel.Convert(dst.At(db.Min.X+x, db.Min.Y+y)).(color.NRGBA)

			as := float64(cs.A) / 255
			ab := float64(cb.A) / 255
			fa, fb := op.factors(as, ab)

			ao := as*fa + ab*fb
			if ao <= 0 {
				bitmap.Img.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			mix := func(s, b uint8) uint8 {
				v := (as*fa*float64(s) + ab*fb*float64(b)) / ao
				return uint8(utils.Clamp(math.Round(v), 0, 255))
			}
			bitmap.Img.SetNRGBA(x, y, color.NRGBA{
				R: mix(cs.R, cb.R),
				G: mix(cs.G, cb.G),
				B: mix(cs.B, cb.B),
				A: uint8(utils.Clamp(math.Round(ao*255), 0, 255)),
			})
		}
	}
	return bitmap
}
