package infogen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// DefaultOutputPath is the output path used when neither the caller nor
// the configuration names one.
const DefaultOutputPath = "output_infographic.png"

// Renderer draws infographics for one configuration.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	cfg   Config
	pal   palette
	fonts *fontSet
}

// NewRenderer validates cfg and loads its fonts.
// Call Close to release the fonts.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.Theme.resolve()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	fonts, err := loadFonts(cfg.Fonts)
	if err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg, pal: pal, fonts: fonts}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Close releases the font sources.
func (r *Renderer) Close() error {
	return r.fonts.Close()
}

// panelFunc draws one panel into its region.
type panelFunc func(f *frame, area Rect) error

var panelFuncs = map[PanelID]panelFunc{
	PanelTitle:          drawTitle,
	PanelDefinition:     drawDefinition,
	PanelStats:          drawStats,
	PanelPlatforms:      drawDonut,
	PanelDemographics:   drawBars,
	PanelTimeline:       drawTimeline,
	PanelImpacts:        drawImpacts,
	PanelCultureSignals: drawCultureSignals,
	PanelBuzzwords:      drawBuzzwords,
	PanelSources:        drawSources,
	PanelFooter:         drawFooter,
}

// Draw paints the background and every panel, in PanelOrder, onto dc.
// It stops at the first panel that fails.
func (r *Renderer) Draw(dc Canvas, s *Spec) error {
	if s == nil {
		return &InputError{Err: errors.New("nil spec")}
	}
	f := r.newFrame(dc, s)

	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	if err := f.fill(r.pal.background); err != nil {
		return &RenderError{Panel: "background", Err: err}
	}

	log := Logger()
	for _, id := range PanelOrder {
		area, err := r.cfg.Layout.Region(id)
		if err != nil {
			return &RenderError{Panel: id, Err: err}
		}
		log.Debug("infogen: drawing panel", "panel", id,
			"x", area.X, "y", area.Y, "w", area.W, "h", area.H)
		if err := panelFuncs[id](f, area); err != nil {
			return &RenderError{Panel: id, Err: err}
		}
	}
	return nil
}

func (r *Renderer) newFrame(dc Canvas, s *Spec) *frame {
	return &frame{
		dc:    dc,
		spec:  s,
		cfg:   &r.cfg,
		pal:   r.pal,
		fonts: r.fonts,
		scale: r.cfg.Layout.Scale(),
	}
}

// Render draws s onto a new canvas sized by the layout.
// The caller owns the returned context and should Close it.
func (r *Renderer) Render(s *Spec) (*gg.Context, error) {
	dc := gg.NewContext(r.cfg.Layout.Width, r.cfg.Layout.Height)
	if err := r.Draw(dc, s); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// RenderFile renders s and writes it as PNG to out, replacing any file
// already there. Nothing is written unless rendering and encoding succeed.
func (r *Renderer) RenderFile(s *Spec, out string) (string, error) {
	if out == "" {
		out = r.outputPath()
	}
	dc, err := r.Render(s)
	if err != nil {
		return "", err
	}
	defer func() { _ = dc.Close() }()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", &RenderError{Panel: "encode", Err: err}
	}
	if err := writeFileAtomic(out, buf.Bytes()); err != nil {
		return "", fmt.Errorf("infogen: write %s: %w", out, err)
	}
	Logger().Info("infogen: infographic saved", "path", out,
		"width", dc.Width(), "height", dc.Height(), "bytes", buf.Len())
	return out, nil
}

func (r *Renderer) outputPath() string {
	if r.cfg.Output != "" {
		return r.cfg.Output
	}
	return DefaultOutputPath
}

// Generate loads dataPath and renders it to outPath with cfg.
// An empty outPath selects cfg.Output.
func Generate(dataPath, outPath string, cfg Config) (string, error) {
	s, err := Load(dataPath)
	if err != nil {
		return "", err
	}
	r, err := NewRenderer(cfg)
	if err != nil {
		return "", err
	}
	defer func() { _ = r.Close() }()
	return r.RenderFile(s, outPath)
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".infogen-*.png")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
