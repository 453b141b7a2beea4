package trayicon

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
)

// IconPath returns <baseDir>/<theme>/<name>.ico.
func IconPath(baseDir string, t Theme, name string) string {
	return filepath.Join(baseDir, t.Name, name+".ico")
}

// WriteIcon encodes img as a single frame ICO file under the theme directory,
// creating the directory when needed and overwriting any previous file.
// It returns the written path.
func WriteIcon(baseDir string, t Theme, name string, img image.Image) (string, error) {
	dir := filepath.Join(baseDir, t.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("could not encode %s icon %q: %w", t.Name, name, err)
	}

	path := IconPath(baseDir, t, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadIcon decodes the largest frame of the ICO file at path.
func ReadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ico.Decode(f)
}
