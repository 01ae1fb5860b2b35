package infogen

import "github.com/gogpu/gg"

// listTop is the panel fraction of the first list line.
const listTop = 0.85

// listRows returns the vertical panel fraction of each of n list lines.
func listRows(n int, spacing float64) []float64 {
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = listTop - float64(i)*spacing
	}
	return ys
}

func drawImpacts(f *frame, area Rect) error {
	return drawList(f, area, f.cfg.Headings.Impacts, f.spec.Impacts, MarkerTriangle, f.pal.text)
}

func drawCultureSignals(f *frame, area Rect) error {
	return drawList(f, area, f.cfg.Headings.CultureSignals, f.spec.CultureSignals, MarkerSparkle, f.pal.positive)
}

// drawList draws a captioned bullet list. The panel stays blank for an
// empty list.
func drawList(f *frame, area Rect, caption string, items []string, m Marker, col gg.RGBA) error {
	if len(items) == 0 {
		return nil
	}
	sz := f.cfg.Theme.Sizes
	lay := f.cfg.Layout
	f.heading(caption, area, sz.ChartHeading)

	em := f.px(sz.List)
	for i, fy := range listRows(len(items), lay.ListSpacing) {
		x, y := area.At(lay.ListIndent, fy)
		// Middle-anchored text sits about 0.2 em below its anchor.
		addMarker(f.dc, m, x+em*0.35, y+em*0.2, em*0.7)
		if err := f.fill(col); err != nil {
			return err
		}
		f.text(items[i], x+em, y, label{size: sz.List, color: col, ay: anchorMiddle})
	}
	return nil
}
