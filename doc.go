/*
Package trayicon generates the 16x16 tray icons of the application: every glyph,
either an SVG document or a decimal number drawn with a font, is rasterized,
repainted in a black and a white theme and written as an ICO file under
<out>/<theme>/<name>.ico.

The package provides a command line interface, supporting various flags for
the generated glyph sets. To check the supported commands type:

	$ trayicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/liubquanti/trayicon"
	)

	func main() {
		cfg, err := trayicon.ParseEnv()
		if err != nil {
			log.Fatal(err)
		}
		p := trayicon.NewProcessor(cfg, trayicon.Oksvg{})
		p.OnSaved = func(path string) { log.Println("Saved", path) }

		if _, err := p.Process(trayicon.ModeAll); err != nil {
			log.Fatalf("Error generating icons: %s", err.Error())
		}
	}
*/
package trayicon
