package infogen

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Donut geometry, relative to the outer radius.
const (
	donutHole      = 0.60
	donutShareDist = 0.80
	donutLabelDist = 1.12
)

// wedge is one donut slice. Angles are in radians, counter-clockwise from
// the positive x axis with y pointing up.
type wedge struct {
	From, To float64
	Share    float64 // fraction of the full circle
}

func (w wedge) mid() float64 {
	return (w.From + w.To) / 2
}

// donutWedges lays out slices starting at 12 o'clock and running
// counter-clockwise. Sizes are normalized to their sum.
func donutWedges(sizes []float64) ([]wedge, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptySeries
	}
	var sum float64
	for i, v := range sizes {
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: wedge %d is %v", ErrNegativeValue, i, v)
		}
		sum += v
	}
	if sum == 0 || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: wedge sizes sum to %v", ErrEmptySeries, sum)
	}
	ws := make([]wedge, len(sizes))
	theta := math.Pi / 2
	for i, v := range sizes {
		share := v / sum
		ws[i] = wedge{From: theta, To: theta + 2*math.Pi*share, Share: share}
		theta = ws[i].To
	}
	return ws, nil
}

// shareLabel formats a wedge share the way the percent labels show it.
func shareLabel(share float64) string {
	return fmt.Sprintf("%.0f%%", share*100)
}

func drawDonut(f *frame, area Rect) error {
	sz := f.cfg.Theme.Sizes
	f.heading(f.cfg.Headings.Platforms, area, sz.ChartHeading)

	platforms := f.spec.Platforms
	sizes := make([]float64, len(platforms))
	colors := make([]gg.RGBA, len(platforms))
	for i, p := range platforms {
		sizes[i] = p.Percent
		colors[i] = f.pal.at(i)
		if p.Color != "" {
			c, err := ParseColor(p.Color)
			if err != nil {
				return fmt.Errorf("platform %q: %w", p.Name, err)
			}
			colors[i] = c
		}
	}
	wedges, err := donutWedges(sizes)
	if err != nil {
		return err
	}

	cx, cy := area.Center()
	r := math.Min(area.W, area.H) / 2 / (donutLabelDist + 0.2)

	for i, w := range wedges {
		if w.Share == 0 {
			continue
		}
		// Screen y points down, so the counter-clockwise slice from From
		// to To is the clockwise arc from -To to -From.
		a1, a2 := -w.To, -w.From
		f.dc.MoveTo(cx, cy)
		f.dc.LineTo(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
		f.dc.DrawArc(cx, cy, r, a1, a2)
		f.dc.ClosePath()
		if err := f.fill(colors[i]); err != nil {
			return err
		}
	}

	f.dc.DrawCircle(cx, cy, r*donutHole)
	if err := f.fill(f.pal.background); err != nil {
		return err
	}

	for i, w := range wedges {
		cos, sin := math.Cos(w.mid()), math.Sin(w.mid())

		f.text(shareLabel(w.Share), cx+cos*r*donutShareDist, cy-sin*r*donutShareDist, label{
			size: sz.WedgeShare, color: f.pal.text, ax: 0.5, ay: anchorMiddle,
		})

		ax := 0.0
		if cos < 0 {
			ax = 1
		}
		f.text(platforms[i].Name, cx+cos*r*donutLabelDist, cy-sin*r*donutLabelDist, label{
			size: sz.WedgeLabel, color: f.pal.text, ax: ax, ay: anchorMiddle,
		})
	}
	return nil
}
