package infogen

import "math"

// Timeline geometry in panel fractions.
const (
	timelineAxisX      = 0.50
	timelineLabelGap   = 0.04
	timelineAxisTop    = 0.92
	timelineAxisBottom = 0.02
	timelineFirstY     = 0.88
	timelineMarkerPt   = 5 // marker radius in points
	timelineLinePt     = 2
)

// Side is the side of the axis a timeline label sits on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// timelineMark is the position of one timeline entry.
type timelineMark struct {
	Y    float64 // panel fraction, up
	Side Side
}

// timelineMarks spaces n markers evenly from timelineFirstY down across
// spread. A single marker sits at the vertical midpoint. Labels alternate
// sides by index parity, starting on the left.
func timelineMarks(n int, spread float64) []timelineMark {
	marks := make([]timelineMark, n)
	for i := range marks {
		y := 0.5
		if n > 1 {
			y = timelineFirstY - float64(i)*(spread/float64(n-1))
		}
		side := SideLeft
		if i%2 == 1 {
			side = SideRight
		}
		marks[i] = timelineMark{Y: y, Side: side}
	}
	return marks
}

func drawTimeline(f *frame, area Rect) error {
	sz := f.cfg.Theme.Sizes
	lay := f.cfg.Layout
	f.heading(f.cfg.Headings.Timeline, area, sz.Heading)

	x0, y0 := area.At(timelineAxisX, timelineAxisBottom)
	x1, y1 := area.At(timelineAxisX, timelineAxisTop)
	f.dc.DrawLine(x0, y0, x1, y1)
	if err := f.stroke(withAlpha(f.pal.accent, 0.5), timelineLinePt); err != nil {
		return err
	}

	period := label{style: styleBold, size: sz.TimelinePeriod, color: f.pal.accent, ay: anchorMiddle}
	event := label{size: sz.TimelineEvent, color: withAlpha(f.pal.text, 0.85), ay: anchorMiddle}

	for i, m := range timelineMarks(len(f.spec.Timeline), lay.TimelineSpread) {
		cx, cy := area.At(timelineAxisX, m.Y)
		f.dc.DrawCircle(cx, cy, f.px(timelineMarkerPt))
		if err := f.fill(f.pal.highlight); err != nil {
			return err
		}

		fx := timelineAxisX - timelineLabelGap
		period.ax, event.ax = 1, 1
		if m.Side == SideRight {
			fx = timelineAxisX + timelineLabelGap
			period.ax, event.ax = 0, 0
		}
		ev := f.spec.Timeline[i]
		x, y := area.At(fx, m.Y)
		f.text(ev.Period, x, y, period)
		x, y = area.At(fx, math.Max(m.Y-lay.TimelineEventOffset, 0))
		f.text(ev.Event, x, y, event)
	}
	return nil
}
