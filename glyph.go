package trayicon

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// GlyphKind tells how a glyph source is rasterized.
type GlyphKind int

const (
	KindSVG GlyphKind = iota
	KindDigits
)

func (k GlyphKind) String() string {
	switch k {
	case KindSVG:
		return "svg"
	case KindDigits:
		return "digits"
	}
	return "unknown"
}

// The fixed range of the digit icons.
const (
	DigitsFirst = 1
	DigitsLast  = 500
)

// maxLineSize bounds a single SVG document in the list file.
const maxLineSize = 1 << 20

// DefaultSVG is rendered when no SVG list file is present: a plain plus sign.
const DefaultSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">` +
	`<path d="M2 8h12" stroke="currentColor" stroke-width="2" stroke-linecap="round"/>` +
	`<path d="M8 2v12" stroke="currentColor" stroke-width="2" stroke-linecap="round"/>` +
	`</svg>`

// ErrNoGlyphs is returned when the SVG list resolves to an empty sequence.
var ErrNoGlyphs = errors.New("no SVG lines provided")

var tablerName = regexp.MustCompile(`icon-tabler-([a-z0-9_-]+)`)

// GlyphSource is one icon to produce.
type GlyphSource struct {
	Kind   GlyphKind
	Markup string
	Value  int
	Name   string
}

// Text returns the string drawn for a digit glyph.
func (g GlyphSource) Text() string {
	return strconv.Itoa(g.Value)
}

// InferName extracts the icon name from the tabler naming convention
// embedded in the markup, e.g. class="icon icon-tabler icon-tabler-home".
func InferName(markup, fallback string) string {
	if m := tablerName.FindStringSubmatch(markup); m != nil {
		return m[1]
	}
	return fallback
}

// LoadSVGSources reads one SVG document per non-blank line of path.
// A missing file resolves to DefaultSVG.
func LoadSVGSources(path string) ([]GlyphSource, error) {
	lines, err := readSVGLines(path)
	if errors.Is(err, fs.ErrNotExist) {
		lines = []string{DefaultSVG}
	} else if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoGlyphs
	}

	sources := make([]GlyphSource, 0, len(lines))
	for i, line := range lines {
		sources = append(sources, GlyphSource{
			Kind:   KindSVG,
			Markup: line,
			Name:   InferName(line, fmt.Sprintf("custom_%d", i+1)),
		})
	}
	return sources, nil
}

func readSVGLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read the SVG list %s: %w", path, err)
	}
	return lines, nil
}

// DigitSources enumerates the integers first..last inclusive.
func DigitSources(first, last int) []GlyphSource {
	if last < first {
		return nil
	}
	sources := make([]GlyphSource, 0, last-first+1)
	for v := first; v <= last; v++ {
		sources = append(sources, GlyphSource{
			Kind:  KindDigits,
			Value: v,
			Name:  strconv.Itoa(v),
		})
	}
	return sources
}
