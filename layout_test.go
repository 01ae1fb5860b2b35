package infogen

import (
	"errors"
	"math"
	"testing"
)

func TestPresetLayoutsValid(t *testing.T) {
	for name, l := range map[string]Layout{"desktop": DesktopLayout(), "phone": PhoneLayout()} {
		if err := l.Validate(); err != nil {
			t.Errorf("%s layout: %v", name, err)
		}
	}
}

func TestRegionInsideMargins(t *testing.T) {
	for name, l := range map[string]Layout{"desktop": DesktopLayout(), "phone": PhoneLayout()} {
		w, h := float64(l.Width), float64(l.Height)
		const eps = 1e-6
		for _, id := range PanelOrder {
			r, err := l.Region(id)
			if err != nil {
				t.Fatalf("%s: Region(%s): %v", name, id, err)
			}
			if r.W <= 0 || r.H <= 0 {
				t.Errorf("%s: %s has empty region %+v", name, id, r)
			}
			if r.X < w*l.Margins.Left-eps || r.X+r.W > w*l.Margins.Right+eps ||
				r.Y < h*l.Margins.Top-eps || r.Y+r.H > h*l.Margins.Bottom+eps {
				t.Errorf("%s: %s region %+v outside margins", name, id, r)
			}
		}
	}
}

func TestRegionsDoNotOverlap(t *testing.T) {
	for name, l := range map[string]Layout{"desktop": DesktopLayout(), "phone": PhoneLayout()} {
		rects := make(map[PanelID]Rect)
		for _, id := range PanelOrder {
			r, err := l.Region(id)
			if err != nil {
				t.Fatal(err)
			}
			rects[id] = r
		}
		for i, a := range PanelOrder {
			for _, b := range PanelOrder[i+1:] {
				ra, rb := rects[a], rects[b]
				if ra.X < rb.X+rb.W && rb.X < ra.X+ra.W && ra.Y < rb.Y+rb.H && rb.Y < ra.Y+ra.H {
					t.Errorf("%s: %s %+v overlaps %s %+v", name, a, ra, b, rb)
				}
			}
		}
	}
}

func TestRegionGeometry(t *testing.T) {
	l := Layout{
		Width: 1000, Height: 1000, DPI: 72,
		Rows: 2, Cols: 2, HSpace: 0.5, WSpace: 0,
		Margins: Margins{Left: 0, Right: 1, Top: 0.1, Bottom: 0.9},
		Panels: map[PanelID]Span{
			PanelTitle:  {Top: 0, Bottom: 1, Left: 0, Right: 2},
			PanelFooter: {Top: 1, Bottom: 2, Left: 1, Right: 2},
		},
	}
	// 800px of height holds two cells and half a cell of gap.
	tests := []struct {
		id   PanelID
		want Rect
	}{
		{PanelTitle, Rect{X: 0, Y: 100, W: 1000, H: 320}},
		{PanelFooter, Rect{X: 500, Y: 580, W: 500, H: 320}},
	}
	for _, tt := range tests {
		got, err := l.Region(tt.id)
		if err != nil {
			t.Fatalf("Region(%s): %v", tt.id, err)
		}
		if !approxRect(got, tt.want) {
			t.Errorf("Region(%s) = %+v, want %+v", tt.id, got, tt.want)
		}
	}
	if _, err := l.Region(PanelStats); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Region of an unplaced panel: error = %v, want ErrInvalidConfig", err)
	}
}

func TestLayoutValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Layout)
	}{
		{"zero width", func(l *Layout) { l.Width = 0 }},
		{"zero dpi", func(l *Layout) { l.DPI = 0 }},
		{"no rows", func(l *Layout) { l.Rows = 0 }},
		{"negative hspace", func(l *Layout) { l.HSpace = -0.1 }},
		{"inverted margins", func(l *Layout) { l.Margins.Left, l.Margins.Right = 0.9, 0.1 }},
		{"margin past edge", func(l *Layout) { l.Margins.Bottom = 1.2 }},
		{"missing panel", func(l *Layout) { delete(l.Panels, PanelTimeline) }},
		{"span past grid", func(l *Layout) { l.Panels[PanelFooter] = Span{Top: 19, Bottom: 21, Left: 0, Right: 6} }},
		{"empty span", func(l *Layout) { l.Panels[PanelFooter] = Span{Top: 19, Bottom: 19, Left: 0, Right: 6} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DesktopLayout()
			tt.mutate(&l)
			if err := l.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestRectAt(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		fx, fy float64
		x, y   float64
	}{
		{0, 0, 10, 70},
		{1, 1, 110, 20},
		{0.5, 0.5, 60, 45},
	}
	for _, tt := range tests {
		x, y := r.At(tt.fx, tt.fy)
		if x != tt.x || y != tt.y {
			t.Errorf("At(%v, %v) = (%v, %v), want (%v, %v)", tt.fx, tt.fy, x, y, tt.x, tt.y)
		}
	}
	if x, y := r.Center(); x != 60 || y != 45 {
		t.Errorf("Center() = (%v, %v), want (60, 45)", x, y)
	}
}

func TestScale(t *testing.T) {
	if got := DesktopLayout().Scale(); math.Abs(got-150.0/72) > 1e-12 {
		t.Errorf("Scale() = %v, want %v", got, 150.0/72)
	}
}

func approxRect(a, b Rect) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}

func TestPhoneLayoutLeavesLastRowsEmpty(t *testing.T) {
	l := PhoneLayout()
	if l.Rows != 24 {
		t.Fatalf("phone rows = %d, want 24", l.Rows)
	}
	footer, err := l.Region(PanelFooter)
	if err != nil {
		t.Fatal(err)
	}
	cell, gap := cellSize(float64(l.Height)*(l.Margins.Bottom-l.Margins.Top), l.Rows, l.HSpace)
	gridBottom := float64(l.Height) * l.Margins.Bottom
	if want := gridBottom - 2*(cell+gap); math.Abs(footer.Y+footer.H-want) > 1e-6 {
		t.Errorf("phone footer ends at y=%v, want %v (two empty rows below)", footer.Y+footer.H, want)
	}
}
