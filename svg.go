package trayicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Names of the supported SVG rasterization backends.
const (
	BackendOksvg    = "oksvg"
	BackendInkscape = "inkscape"
)

var (
	// ErrBackendUnavailable is returned when an external rasterizer is not installed.
	ErrBackendUnavailable = errors.New("svg backend unavailable")
	// ErrUnknownBackend is returned for a backend name other than oksvg or inkscape.
	ErrUnknownBackend = errors.New("unknown svg backend")
)

// SVGBackend converts SVG markup into a PNG encoded raster of the requested size.
type SVGBackend interface {
	Name() string
	SVGToPNG(markup []byte, width, height int) ([]byte, error)
}

// NewBackend resolves a backend by name. External backends are looked up
// on PATH right away so a missing dependency fails before any icon is written.
func NewBackend(name string) (SVGBackend, error) {
	switch name {
	case "", BackendOksvg:
		return Oksvg{}, nil
	case BackendInkscape:
		bin, err := exec.LookPath("inkscape")
		if err != nil {
			return nil, fmt.Errorf("%w: inkscape is required: install inkscape or use -backend %s", ErrBackendUnavailable, BackendOksvg)
		}
		return Inkscape{Bin: bin}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Oksvg rasterizes in process with oksvg and rasterx.
type Oksvg struct{}

func (Oksvg) Name() string { return BackendOksvg }

// SVGToPNG renders the markup stretched to width x height.
// currentColor is resolved to black: the recolor pass discards the source colors anyway.
func (Oksvg) SVGToPNG(markup []byte, width, height int) ([]byte, error) {
	icon, err := oksvg.ReadReplacingCurrentColor(bytes.NewReader(markup), "#000000")
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Inkscape pipes the markup through the inkscape command line.
type Inkscape struct {
	Bin string
}

func (Inkscape) Name() string { return BackendInkscape }

// SVGToPNG runs inkscape and returns its stdout.
func (b Inkscape) SVGToPNG(markup []byte, width, height int) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(b.Bin,
		"--export-type", "png",
		"--export-filename", "-",
		"--export-background-opacity", "0",
		"--export-width", strconv.Itoa(width),
		"--export-height", strconv.Itoa(height),
		"--pipe",
	)
	cmd.Stdin = bytes.NewReader(markup)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%v\nSTDERR:\n%s", err, stderr.String())
	}
	if stdout.Len() == 0 {
		return nil, errors.New("got no data from inkscape")
	}
	return stdout.Bytes(), nil
}

// RasterizeSVG renders markup into an IconSize x IconSize NRGBA image.
func RasterizeSVG(b SVGBackend, markup string) (*image.NRGBA, error) {
	data, err := b.SVGToPNG([]byte(markup), IconSize, IconSize)
	if err != nil {
		return nil, err
	}
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode the %s output: %w", b.Name(), err)
	}
	return fitIcon(imaging.Clone(src)), nil
}
