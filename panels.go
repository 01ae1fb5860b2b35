package infogen

import (
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vertical anchors for label.ay.
const (
	anchorBaseline = 0.0
	anchorMiddle   = 0.5
)

// Separators used to join list panels onto one line.
const (
	buzzwordSep = "   •   "
	sourceSep   = "  |  "
	metaSep     = "  •  "
)

// frame is the per-render drawing state shared by the panels.
type frame struct {
	dc    Canvas
	spec  *Spec
	cfg   *Config
	pal   palette
	fonts *fontSet
	scale float64 // pixels per point
}

// label describes how a line of text is drawn. ax is the fraction of the
// advance width left of the anchor. ay of 0 puts the baseline on the anchor
// and 0.5 centres the ascent-descent box on it.
type label struct {
	style fontStyle
	size  float64 // points
	color gg.RGBA
	ax    float64
	ay    float64
}

func (f *frame) px(pt float64) float64 {
	return pt * f.scale
}

func (f *frame) face(style fontStyle, pt float64) text.Face {
	return f.fonts.face(style, f.px(pt))
}

// text draws s anchored at (x, y). Empty strings are skipped.
func (f *frame) text(s string, x, y float64, l label) {
	if s == "" {
		return
	}
	face := f.face(l.style, l.size)
	f.dc.SetFont(face)
	f.dc.SetColor(l.color.Color())
	w, _ := f.dc.MeasureString(s)
	f.dc.DrawString(s, x-w*l.ax, baseline(face, y, l.ay))
}

// baseline returns the baseline that puts the anchor fraction ay of the
// face's ascent-descent box on y.
func baseline(face text.Face, y, ay float64) float64 {
	m := face.Metrics()
	return y + ay*(m.Ascent-m.Descent)
}

// fill fills the current path with c.
func (f *frame) fill(c gg.RGBA) error {
	f.dc.SetColor(c.Color())
	return f.dc.Fill()
}

// stroke strokes the current path with c at width points.
func (f *frame) stroke(c gg.RGBA, width float64) error {
	f.dc.SetColor(c.Color())
	f.dc.SetLineWidth(f.px(width))
	return f.dc.Stroke()
}

// heading draws a bold highlight caption centred above area.
func (f *frame) heading(s string, area Rect, pt float64) {
	x, _ := area.At(0.5, 1)
	f.text(s, x, area.Y-f.px(pt)*0.6, label{
		style: styleBold, size: pt, color: f.pal.highlight, ax: 0.5, ay: anchorBaseline,
	})
}

func drawTitle(f *frame, area Rect) error {
	sz := f.cfg.Theme.Sizes
	meta := f.spec.Meta

	x, y := area.At(0.5, 0.75)
	f.text(f.spec.Title, x, y, label{style: styleBold, size: sz.Title, color: f.pal.accent, ax: 0.5, ay: anchorMiddle})

	x, y = area.At(0.5, 0.35)
	f.text(f.spec.Subtitle, x, y, label{size: sz.Subtitle, color: withAlpha(f.pal.text, 0.85), ax: 0.5, ay: anchorMiddle})

	x, y = area.At(0.5, 0.10)
	f.text(joinNonEmpty(metaSep, meta.Region, meta.Year.String()), x, y,
		label{size: sz.Meta, color: f.pal.meta, ax: 0.5, ay: anchorMiddle})
	return nil
}

// drawDefinition draws the caption and the word-wrapped italic paragraph.
// The panel stays blank without a definition.
func drawDefinition(f *frame, area Rect) error {
	def := strings.TrimSpace(f.spec.Definition)
	if def == "" {
		return nil
	}
	sz := f.cfg.Theme.Sizes

	caption := strings.Replace(f.cfg.Headings.Definition, "%s", upper(f.spec.Title), 1)
	capLabel := label{style: styleBold, size: sz.Heading, color: f.pal.highlight, ax: 0.5}
	x, capY := area.At(0.5, 0.7)
	f.text(caption, x, capY, capLabel)

	body := label{style: styleItalic, size: sz.Definition, color: f.pal.text, ax: 0.5}
	face := f.face(body.style, body.size)
	lines := text.WrapText(def, face, area.W*0.9, text.WrapWord)
	f.dc.SetFont(face)
	_, lh := f.dc.MeasureString(def)

	// Centre the paragraph block on the 0.25 line, but never let its first
	// line rise into the caption.
	_, cy := area.At(0.5, 0.25)
	y := baseline(face, cy-lh*float64(len(lines)-1)/2, anchorMiddle)
	floor := capY + f.face(capLabel.style, capLabel.size).Metrics().Descent + face.Metrics().Ascent
	y = math.Max(y, floor)
	for _, ln := range lines {
		f.text(strings.TrimSpace(ln.Text), x, y, body)
		y += lh
	}
	return nil
}

// statColumns returns the horizontal centres, as panel fractions, of k
// evenly spaced stat columns.
func statColumns(k int) []float64 {
	xs := make([]float64, k)
	for i := range xs {
		xs[i] = float64(i+1) / float64(k+1)
	}
	return xs
}

func drawStats(f *frame, area Rect) error {
	sz := f.cfg.Theme.Sizes

	x, y := area.At(0.5, 0.95)
	f.text(f.cfg.Headings.Stats, x, y, label{style: styleBold, size: sz.Heading, color: f.pal.highlight, ax: 0.5})

	for i, fx := range statColumns(len(f.spec.Stats)) {
		e := f.spec.Stats[i]
		x, y := area.At(fx, 0.55)
		f.text(e.Value.String(), x, y, label{style: styleBold, size: sz.StatValue, color: f.pal.positive, ax: 0.5})
		x, y = area.At(fx, 0.20)
		f.text(statLabel(e.Key), x, y, label{size: sz.StatLabel, color: withAlpha(f.pal.text, 0.7), ax: 0.5})
	}
	return nil
}

// statLabel turns a key like "views_total" into "VIEWS TOTAL".
func statLabel(key string) string {
	return upper(strings.ReplaceAll(key, "_", " "))
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func drawBuzzwords(f *frame, area Rect) error {
	if len(f.spec.Buzzwords) == 0 {
		return nil
	}
	sz := f.cfg.Theme.Sizes

	x, y := area.At(0.5, 0.6)
	f.text(f.cfg.Headings.Buzzwords, x, y, label{style: styleBold, size: sz.ChartHeading, color: f.pal.highlight, ax: 0.5})
	x, y = area.At(0.5, 0.15)
	f.text(strings.Join(f.spec.Buzzwords, buzzwordSep), x, y, label{size: sz.Buzzwords, color: f.pal.accent, ax: 0.5})
	return nil
}

func drawSources(f *frame, area Rect) error {
	x, y := area.At(0.5, 0.5)
	f.text(strings.Join(f.spec.Sources, sourceSep), x, y, label{
		size: f.cfg.Theme.Sizes.Sources, color: f.pal.sources, ax: 0.5,
	})
	return nil
}

func drawFooter(f *frame, area Rect) error {
	meta := f.spec.Meta
	generated := strings.Replace(f.cfg.Headings.Footer, "%s", meta.GeneratedBy, 1)
	x, y := area.At(0.5, 0.5)
	f.text(joinNonEmpty(metaSep, generated, meta.Region, meta.Year.String()), x, y, label{
		size: f.cfg.Theme.Sizes.Footer, color: f.pal.footer, ax: 0.5,
	})
	return nil
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
