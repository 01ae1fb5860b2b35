package infogen

import (
	"image/color"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
)

// recordCanvas is a Canvas that records what the panels draw instead of
// rasterizing it.
type recordCanvas struct {
	w, h int

	color   color.Color
	circles []drawnCircle
	rects   []drawnRect
	texts   []drawnText
	fills   []color.Color
	strokes int
	arcs    int
}

type drawnCircle struct{ x, y, r float64 }

type drawnRect struct{ x, y, w, h float64 }

// drawnText is a string as drawn: x is its left edge, y its baseline and
// w its measured advance.
type drawnText struct {
	s     string
	x, y  float64
	w     float64
	color color.Color
}

// center returns the horizontal centre of the drawn string.
func (t drawnText) center() float64 {
	return t.x + t.w/2
}

var _ Canvas = (*recordCanvas)(nil)

func newRecordCanvas(w, h int) *recordCanvas {
	return &recordCanvas{w: w, h: h}
}

func (c *recordCanvas) Width() int                  { return c.w }
func (c *recordCanvas) Height() int                 { return c.h }
func (c *recordCanvas) SetColor(col color.Color)    { c.color = col }
func (c *recordCanvas) SetLineWidth(float64)        {}
func (c *recordCanvas) SetFont(text.Face)           {}
func (c *recordCanvas) MoveTo(x, y float64)         {}
func (c *recordCanvas) LineTo(x, y float64)         {}
func (c *recordCanvas) ClosePath()                  {}
func (c *recordCanvas) DrawLine(_, _, _, _ float64) {}

func (c *recordCanvas) MeasureString(s string) (w, h float64) {
	return float64(utf8.RuneCountInString(s)) * 6, 12
}

func (c *recordCanvas) DrawString(s string, x, y float64) {
	w, _ := c.MeasureString(s)
	c.texts = append(c.texts, drawnText{s: s, x: x, y: y, w: w, color: c.color})
}

func (c *recordCanvas) DrawArc(_, _, _, _, _ float64) { c.arcs++ }

func (c *recordCanvas) DrawCircle(x, y, r float64) {
	c.circles = append(c.circles, drawnCircle{x, y, r})
}

func (c *recordCanvas) DrawRectangle(x, y, w, h float64) {
	c.rects = append(c.rects, drawnRect{x, y, w, h})
}

func (c *recordCanvas) Fill() error {
	c.fills = append(c.fills, c.color)
	return nil
}

func (c *recordCanvas) Stroke() error {
	c.strokes++
	return nil
}

// text returns the recorded text drawn with exactly s.
func (c *recordCanvas) text(s string) (drawnText, bool) {
	for _, t := range c.texts {
		if t.s == s {
			return t, true
		}
	}
	return drawnText{}, false
}

// newTestFrame returns a frame drawing onto a record canvas with the
// desktop preset.
func newTestFrame(t *testing.T, s *Spec) (*frame, *recordCanvas) {
	t.Helper()
	r, err := NewRenderer(DefaultConfig())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })

	dc := newRecordCanvas(r.cfg.Layout.Width, r.cfg.Layout.Height)
	return r.newFrame(dc, s), dc
}

// testArea is an arbitrary panel region.
var testArea = Rect{X: 100, Y: 200, W: 800, H: 400}

// sameColor compares two colours by their RGBA values.
func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
