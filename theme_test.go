package trayicon

import (
	"image"
	"image/color"
	"testing"

	"github.com/liubquanti/trayicon/imop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertThemePair checks that the black and white variants of a glyph share
// the same coverage and carry the exact theme colors.
func assertThemePair(t *testing.T, black, white *image.NRGBA) {
	t.Helper()

	require.Equal(t, iconRect, black.Bounds())
	require.Equal(t, iconRect, white.Bounds())

	opaque := 0
	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			b, w := black.NRGBAAt(x, y), white.NRGBAAt(x, y)
			require.Equal(t, b.A, w.A, "alpha differs at (%d, %d)", x, y)
			if b.A == 0 {
				continue
			}
			opaque++
			require.Equal(t, color.NRGBA{R: 0, G: 0, B: 0, A: b.A}, b, "black pixel at (%d, %d)", x, y)
			require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: w.A}, w, "white pixel at (%d, %d)", x, y)
		}
	}
	assert.Positive(t, opaque, "glyph should not be blank")
}

func TestTheme_ByName(t *testing.T) {
	assert := assert.New(t)

	black, ok := ThemeByName("black")
	assert.True(ok)
	assert.Equal(color.NRGBA{A: 255}, black.Color)

	white, ok := ThemeByName("white")
	assert.True(ok)
	assert.Equal(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, white.Color)

	_, ok = ThemeByName("red")
	assert.False(ok)

	require.Len(t, Themes, 2)
	assert.Equal("black", Themes[0].Name)
	assert.Equal("white", Themes[1].Name)
}

func TestTheme_RecolorKeepsAlpha(t *testing.T) {
	src := image.NewNRGBA(iconRect)
	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			// Varying colors and a horizontal alpha ramp.
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 200, A: uint8(x * 17)})
		}
	}

	black := Recolor(src, Themes[0])
	white := Recolor(src, Themes[1])
	assertThemePair(t, black, white)

	for x := 0; x < IconSize; x++ {
		assert.Equal(t, uint8(x*17), black.NRGBAAt(x, 3).A)
	}
}

func TestTheme_RecolorRedSVG(t *testing.T) {
	red := `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16"><rect x="2" y="2" width="12" height="12" fill="#ff0000"/></svg>`

	base, err := RasterizeSVG(Oksvg{}, red)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), base.NRGBAAt(8, 8).R)

	black := Recolor(base, Themes[0])
	white := Recolor(base, Themes[1])
	assertThemePair(t, black, white)
	assert.Equal(t, color.NRGBA{A: 255}, black.NRGBAAt(8, 8))
	assert.Equal(t, color.NRGBA{}, black.NRGBAAt(0, 0))
}

func TestTheme_RecolorOffsetBounds(t *testing.T) {
	src := image.NewAlpha(image.Rect(10, 10, 26, 26))
	src.SetAlpha(10, 10, color.Alpha{A: 128})

	out := Recolor(src, Themes[1])
	assert.Equal(t, iconRect, out.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 128}, out.NRGBAAt(0, 0))
}

func TestTheme_RecolorUsesSrcIn(t *testing.T) {
	assert.Equal(t, imop.SrcIn, recolorOp.Get())

	// Repeated calls share the operation and leave it untouched.
	first := Recolor(solidSquare(), Themes[0])
	second := Recolor(solidSquare(), Themes[0])
	assert.Equal(t, first.Pix, second.Pix)
	assert.Equal(t, imop.SrcIn, recolorOp.Get())
}
