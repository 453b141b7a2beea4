package trayicon

import (
	"errors"
	"fmt"
	"os"

	"github.com/liubquanti/trayicon/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontConfig describes how a digit string of a given length is drawn.
type FontConfig struct {
	// Size is the font size in points at 72 DPI, i.e. in pixels.
	Size float64
	// YOffset moves the centered glyphs down by that many pixels.
	YOffset int
	// Stroke thickens the glyphs by the given radius in pixels.
	Stroke int
}

// fontConfigs is indexed by the number of characters of the rendered text
// minus one. One and two digit strings share the large size; longer strings
// shrink to fit the 16px canvas. Every length is lifted by one pixel.
var fontConfigs = [...]FontConfig{
	{Size: 12, YOffset: -1, Stroke: 0},
	{Size: 12, YOffset: -1, Stroke: 0},
	{Size: 10, YOffset: -1, Stroke: 0},
}

// FontConfigFor returns the configuration for a text of n characters.
// Texts longer than three characters reuse the three character entry.
func FontConfigFor(n int) FontConfig {
	n = utils.Clamp(n, 1, len(fontConfigs))
	return fontConfigs[n-1]
}

var errNotAFont = errors.New("not a font file")

// FontSource is the result of loading the scalable font. When the font could
// not be used Fallback is set, Reason tells why, and every face is the
// built-in fixed size bitmap font.
type FontSource struct {
	Path     string
	Fallback bool
	Reason   error

	font *opentype.Font
}

// LoadFont loads the scalable font at path. It never fails: any error
// degrades to the built-in bitmap font.
func LoadFont(path string) FontSource {
	src := FontSource{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return src.degrade(err)
	}
	if !utils.IsFontData(data) {
		return src.degrade(fmt.Errorf("%s: %w (%s)", path, errNotAFont, utils.DetectContentType(data)))
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return src.degrade(fmt.Errorf("could not parse the font %s: %w", path, err))
	}
	src.font = f
	return src
}

func (s FontSource) degrade(reason error) FontSource {
	s.Fallback = true
	s.Reason = reason
	s.font = nil
	return s
}

// Face returns a face at the given size, or the bitmap face when degraded.
// The caller closes the face.
func (s FontSource) Face(size float64) (font.Face, error) {
	if s.Fallback || s.font == nil {
		return basicfont.Face7x13, nil
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
