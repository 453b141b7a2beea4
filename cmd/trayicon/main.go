package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/liubquanti/trayicon"
	"github.com/liubquanti/trayicon/utils"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const HelpBanner = `
╔╦╗┬─┐┌─┐┬ ┬  ┬┌─┐┌─┐┌┐┌
 ║ ├┬┘├─┤└┬┘  ││  │ ││││
 ╩ ┴└─┴ ┴ ┴   ┴└─┘└─┘┘└┘

Tray icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version = "dev"

// spinner shows the progress of the digit icons when stderr is a terminal.
// It is set before any other goroutine starts and never reassigned.
var spinner *utils.Spinner

func main() {
	log.SetFlags(0)

	cfg, err := trayicon.ParseEnv()
	if err != nil {
		fatal("Failed to read the configuration: %v", err)
	}

	var mode string
	flag.StringVar(&mode, "mode", string(cfg.Mode), "Glyph set to generate: svg, digits or all")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory")
	flag.StringVar(&cfg.SVGList, "in", cfg.SVGList, "SVG list file, one document per line")
	flag.StringVar(&cfg.Font, "font", cfg.Font, "Scalable font used for the digit icons")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "SVG rasterizer: oksvg or inkscape")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Verbose diagnostics")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()
	cfg.Mode = trayicon.Mode(mode)

	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	utils.SetPlain(!isTerm)
	logger := newLogger(os.Stderr, cfg.Debug, !isTerm)

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		fatal("Invalid configuration: %v", err)
	}

	backend, err := trayicon.NewBackend(cfg.Backend)
	if err != nil {
		fatal("%v", err)
	}

	proc := trayicon.NewProcessor(cfg, backend)
	proc.Logger = logger
	proc.OnSaved = func(path string) {
		fmt.Printf("Saved %s\n", path)
	}
	if isTerm {
		spinner = newProgressSpinner(os.Stderr)
		proc.OnProgress = showProgress(spinner)
		restoreCursorOnSignal(spinner)
	}

	now := time.Now()
	stats, err := proc.Process(cfg.Mode)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if errors.Is(err, trayicon.ErrNoGlyphs) {
			fatal("No SVG lines provided in %s", cfg.SVGList)
		}
		fatal("Error generating the icons: %v", err)
	}

	logger.Info().
		Int("glyphs", stats.Glyphs).
		Int("files", stats.Files).
		Bool("font_fallback", stats.FontFallback).
		Str("out", cfg.OutDir).
		Msg("done")
	fmt.Fprintf(os.Stderr, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// newLogger returns the diagnostics logger writing human readable lines to w.
func newLogger(w io.Writer, debug, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// newProgressSpinner returns the digit progress spinner, not yet started.
func newProgressSpinner(w io.Writer) *utils.Spinner {
	s := utils.NewSpinner(w, progressMessage(0, 0), 80*time.Millisecond, true)
	s.StopMsg = fmt.Sprintf("%s %s\n",
		utils.DecorateText("TRAYICON", utils.StatusMessage),
		utils.DecorateText("digit icons written ✔", utils.SuccessMessage),
	)
	return s
}

func progressMessage(done, total int) string {
	return fmt.Sprintf("%s %s",
		utils.DecorateText("TRAYICON", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("drawing digit icons %d/%d", done, total), utils.DefaultMessage),
	)
}

// showProgress returns a progress callback driving s. The first call starts it.
func showProgress(s *utils.Spinner) func(done, total int) {
	return func(done, total int) {
		s.SetMessage(progressMessage(done, total))
		s.Start()
	}
}

// restoreCursorOnSignal makes the cursor visible again when the run is interrupted.
func restoreCursorOnSignal(s *utils.Spinner) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		s.RestoreCursor()
		os.Exit(1)
	}()
}

func fatal(format string, args ...any) {
	if spinner != nil {
		spinner.Stop()
	}
	log.Fatalf("%s", utils.DecorateText(fmt.Sprintf(format, args...), utils.ErrorMessage))
}
