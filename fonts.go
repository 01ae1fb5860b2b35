package infogen

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// fontStyle selects one of the three loaded font sources.
type fontStyle uint8

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
)

type faceKey struct {
	style fontStyle
	px    float64
}

// fontSet owns the font sources and caches faces by style and pixel size.
// FontSource is heavyweight, so one set is shared by all panels of a
// renderer.
type fontSet struct {
	sources [3]*text.FontSource
	faces   map[faceKey]text.Face
}

// loadFonts opens the configured font files, falling back to the embedded
// Go fonts for any style left empty.
func loadFonts(cfg Fonts) (*fontSet, error) {
	fs := &fontSet{faces: make(map[faceKey]text.Face)}
	for i, f := range []struct {
		path     string
		embedded []byte
	}{
		styleRegular: {cfg.Regular, goregular.TTF},
		styleBold:    {cfg.Bold, gobold.TTF},
		styleItalic:  {cfg.Italic, goitalic.TTF},
	} {
		var (
			src *text.FontSource
			err error
		)
		if f.path != "" {
			src, err = text.NewFontSourceFromFile(f.path)
		} else {
			src, err = text.NewFontSource(f.embedded)
		}
		if err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("%w: font %q: %w", ErrInvalidConfig, f.path, err)
		}
		fs.sources[i] = src
	}
	return fs, nil
}

// face returns a face of the given style at px pixels.
func (fs *fontSet) face(style fontStyle, px float64) text.Face {
	k := faceKey{style: style, px: px}
	if f, ok := fs.faces[k]; ok {
		return f
	}
	f := fs.sources[style].Face(px)
	fs.faces[k] = f
	return f
}

// Close releases the font sources.
func (fs *fontSet) Close() error {
	var first error
	for i, src := range fs.sources {
		if src == nil {
			continue
		}
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
		fs.sources[i] = nil
	}
	clear(fs.faces)
	return first
}
