package infogen

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface the panels paint on. It is the subset of
// *gg.Context the renderer uses.
type Canvas interface {
	Width() int
	Height() int

	SetColor(col color.Color)
	SetLineWidth(width float64)
	SetFont(face text.Face)
	MeasureString(s string) (w, h float64)
	// DrawString draws s starting at x with its baseline on y.
	DrawString(s string, x, y float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawArc(x, y, r, angle1, angle2 float64)
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)
	DrawLine(x1, y1, x2, y2 float64)
	Fill() error
	Stroke() error
}

var _ Canvas = (*gg.Context)(nil)
