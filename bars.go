package infogen

import (
	"fmt"
	"math"
)

const (
	barThickness = 0.55 // fraction of a bar's slot
	barHeadroom  = 12   // data units added past the largest value
	barNoteGap   = 1    // data units between a bar end and its value
)

// bar is one horizontal bar in pixels.
type bar struct {
	X, Y, W, H float64
	NoteX      float64 // where the value annotation starts
}

// barValues reads the demographics values as numbers.
func barValues(entries []Entry) ([]float64, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySeries
	}
	vs := make([]float64, len(entries))
	for i, e := range entries {
		v, ok := e.Value.Float()
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s = %q", ErrNotNumeric, e.Key, e.Value.String())
		}
		vs[i] = v
	}
	return vs, nil
}

// layoutBars places one bar per value, top to bottom, on an x scale of
// [0, max+barHeadroom] spanning plot. Negative values get zero width.
func layoutBars(values []float64, plot Rect) []bar {
	hi := 0.0
	for _, v := range values {
		hi = math.Max(hi, v)
	}
	unit := plot.W / (hi + barHeadroom)
	slot := plot.H / float64(len(values))

	bars := make([]bar, len(values))
	for i, v := range values {
		w := math.Max(v, 0) * unit
		bars[i] = bar{
			X:     plot.X,
			Y:     plot.Y + slot*(float64(i)+0.5-barThickness/2),
			W:     w,
			H:     slot * barThickness,
			NoteX: plot.X + w + barNoteGap*unit,
		}
	}
	return bars
}

func drawBars(f *frame, area Rect) error {
	sz := f.cfg.Theme.Sizes
	f.heading(f.cfg.Headings.Demographics, area, sz.ChartHeading)

	demos := f.spec.Demographics
	values, err := barValues(demos)
	if err != nil {
		return err
	}

	// Reserve a gutter for the band labels.
	f.dc.SetFont(f.face(styleRegular, sz.BarLabel))
	gutter := 0.0
	for _, e := range demos {
		w, _ := f.dc.MeasureString(e.Key)
		gutter = math.Max(gutter, w)
	}
	pad := f.px(sz.BarLabel) * 0.5
	gutter += 2 * pad
	plot := Rect{X: area.X + gutter, Y: area.Y, W: area.W - gutter, H: area.H}
	if plot.W <= 0 {
		return fmt.Errorf("%w: band labels leave no room for bars", ErrInvalidConfig)
	}

	for i, b := range layoutBars(values, plot) {
		if b.W > 0 {
			f.dc.DrawRectangle(b.X, b.Y, b.W, b.H)
			if err := f.fill(f.pal.at(i)); err != nil {
				return err
			}
		}
		cy := b.Y + b.H/2
		f.text(demos[i].Key, b.X-pad, cy, label{size: sz.BarLabel, color: f.pal.text, ax: 1, ay: anchorMiddle})
		f.text(demos[i].Value.String()+"%", b.NoteX, cy, label{size: sz.BarLabel, color: f.pal.text, ay: anchorMiddle})
	}
	return nil
}
