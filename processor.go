package trayicon

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"
)

// Stats summarizes a generation run.
type Stats struct {
	Glyphs       int
	Files        int
	FontFallback bool
}

func (s *Stats) add(o Stats) {
	s.Glyphs += o.Glyphs
	s.Files += o.Files
	s.FontFallback = s.FontFallback || o.FontFallback
}

// Processor options
type Processor struct {
	OutDir     string
	SVGList    string
	FontPath   string
	Backend    SVGBackend
	DigitFirst int
	DigitLast  int
	Logger     zerolog.Logger
	// OnSaved is called with the path of every icon written in SVG mode.
	OnSaved func(path string)
	// OnProgress is called after each digit glyph with the number done so far and the total.
	OnProgress func(done, total int)
}

// NewProcessor returns a Processor populated from cfg, with the fixed digit
// range and a disabled logger.
func NewProcessor(cfg Config, backend SVGBackend) *Processor {
	return &Processor{
		OutDir:     cfg.OutDir,
		SVGList:    cfg.SVGList,
		FontPath:   cfg.Font,
		Backend:    backend,
		DigitFirst: DigitsFirst,
		DigitLast:  DigitsLast,
		Logger:     zerolog.Nop(),
	}
}

// Process runs the glyph sets selected by mode. The first error aborts the batch.
func (p *Processor) Process(mode Mode) (Stats, error) {
	var total Stats

	switch mode {
	case ModeSVG, ModeDigits, ModeAll:
	default:
		return total, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if mode == ModeSVG || mode == ModeAll {
		st, err := p.GenerateSVG()
		total.add(st)
		if err != nil {
			return total, err
		}
	}
	if mode == ModeDigits || mode == ModeAll {
		st, err := p.GenerateDigits()
		total.add(st)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// GenerateSVG rasterizes every SVG of the list file, or the default glyph,
// and writes its black and white variants.
func (p *Processor) GenerateSVG() (Stats, error) {
	var st Stats

	backend := p.Backend
	if backend == nil {
		backend = Oksvg{}
	}

	sources, err := LoadSVGSources(p.SVGList)
	if err != nil {
		return st, err
	}
	p.Logger.Debug().Str("list", p.SVGList).Int("glyphs", len(sources)).Str("backend", backend.Name()).Msg("resolved svg glyphs")

	for _, src := range sources {
		base, err := RasterizeSVG(backend, src.Markup)
		if err != nil {
			return st, fmt.Errorf("svg %q: %w", src.Name, err)
		}
		st.Glyphs++

		for _, t := range Themes {
			path, err := p.save(Recolor(base, t), t, src.Name)
			if err != nil {
				return st, err
			}
			st.Files++
			if p.OnSaved != nil {
				p.OnSaved(path)
			}
		}
	}
	return st, nil
}

// GenerateDigits draws the numbers DigitFirst..DigitLast in both themes.
func (p *Processor) GenerateDigits() (Stats, error) {
	var st Stats

	r := NewDigitRenderer(p.FontPath)
	if r.Font.Fallback {
		st.FontFallback = true
		p.Logger.Warn().Err(r.Font.Reason).Str("font", p.FontPath).Msg("falling back to the built-in bitmap font")
	}

	sources := DigitSources(p.DigitFirst, p.DigitLast)
	for i, src := range sources {
		for _, t := range Themes {
			img, err := r.Draw(src.Text(), t)
			if err != nil {
				return st, fmt.Errorf("digits %q: %w", src.Name, err)
			}
			if _, err := p.save(img, t, src.Name); err != nil {
				return st, err
			}
			st.Files++
		}
		st.Glyphs++
		if p.OnProgress != nil {
			p.OnProgress(i+1, len(sources))
		}
	}
	p.Logger.Debug().Int("glyphs", st.Glyphs).Int("files", st.Files).Msg("digit icons written")
	return st, nil
}

func (p *Processor) save(img image.Image, t Theme, name string) (string, error) {
	path, err := WriteIcon(p.OutDir, t, name, img)
	if err != nil {
		return "", err
	}
	p.Logger.Debug().Str("path", path).Msg("icon written")
	return path, nil
}
