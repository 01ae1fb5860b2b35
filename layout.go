package infogen

import (
	"fmt"
)

// PanelID names one region of the canvas.
type PanelID string

// Panels in drawing order.
const (
	PanelTitle          PanelID = "title"
	PanelDefinition     PanelID = "definition"
	PanelStats          PanelID = "stats"
	PanelPlatforms      PanelID = "platforms"
	PanelDemographics   PanelID = "demographics"
	PanelTimeline       PanelID = "timeline"
	PanelImpacts        PanelID = "impacts"
	PanelCultureSignals PanelID = "culture_signals"
	PanelBuzzwords      PanelID = "buzzwords"
	PanelSources        PanelID = "sources"
	PanelFooter         PanelID = "footer"
)

// PanelOrder is the fixed drawing sequence.
var PanelOrder = []PanelID{
	PanelTitle,
	PanelDefinition,
	PanelStats,
	PanelPlatforms,
	PanelDemographics,
	PanelTimeline,
	PanelImpacts,
	PanelCultureSignals,
	PanelBuzzwords,
	PanelSources,
	PanelFooter,
}

// Span selects grid cells by their bounding grid lines.
// Bottom and Right are exclusive.
type Span struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// Margins locate the grid edges as fractions of the canvas, measured from
// the left and top edges.
type Margins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Layout positions panels on a fixed grid.
//
// HSpace and WSpace are the gaps between rows and columns as a fraction
// of the mean cell height and width.
type Layout struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	DPI    float64 `yaml:"dpi"`

	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	HSpace  float64 `yaml:"hspace"`
	WSpace  float64 `yaml:"wspace"`
	Margins Margins `yaml:"margins"`

	Panels map[PanelID]Span `yaml:"panels"`

	// TimelineSpread is the vertical fraction covered by the first to
	// last timeline marker.
	TimelineSpread float64 `yaml:"timeline_spread"`
	// TimelineEventOffset is the gap between a period and its event line.
	TimelineEventOffset float64 `yaml:"timeline_event_offset"`
	ListIndent          float64 `yaml:"list_indent"`
	ListSpacing         float64 `yaml:"list_spacing"`
}

// Rect is a pixel rectangle; Y grows downwards.
type Rect struct {
	X, Y, W, H float64
}

// At maps panel fractions to pixels. fy grows upwards, so (0, 0) is the
// bottom-left corner and (1, 1) the top-right corner.
func (r Rect) At(fx, fy float64) (x, y float64) {
	return r.X + fx*r.W, r.Y + (1-fy)*r.H
}

// Center returns the rectangle centre.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale returns the pixels per typographic point.
func (l Layout) Scale() float64 {
	return l.DPI / 72
}

// Region returns the pixel rectangle of a panel.
func (l Layout) Region(id PanelID) (Rect, error) {
	sp, ok := l.Panels[id]
	if !ok {
		return Rect{}, fmt.Errorf("%w: no region for panel %q", ErrInvalidConfig, id)
	}
	if err := l.checkSpan(sp); err != nil {
		return Rect{}, fmt.Errorf("panel %q: %w", id, err)
	}

	innerW := float64(l.Width) * (l.Margins.Right - l.Margins.Left)
	innerH := float64(l.Height) * (l.Margins.Bottom - l.Margins.Top)
	cellW, gapW := cellSize(innerW, l.Cols, l.WSpace)
	cellH, gapH := cellSize(innerH, l.Rows, l.HSpace)

	x0 := float64(l.Width) * l.Margins.Left
	y0 := float64(l.Height) * l.Margins.Top

	top := y0 + float64(sp.Top)*(cellH+gapH)
	bottom := y0 + float64(sp.Bottom-1)*(cellH+gapH) + cellH
	left := x0 + float64(sp.Left)*(cellW+gapW)
	right := x0 + float64(sp.Right-1)*(cellW+gapW) + cellW

	return Rect{X: left, Y: top, W: right - left, H: bottom - top}, nil
}

// cellSize splits total into n cells separated by n-1 gaps of
// space times the cell size.
func cellSize(total float64, n int, space float64) (cell, gap float64) {
	cell = total / (float64(n) + space*float64(n-1))
	return cell, cell * space
}

func (l Layout) checkSpan(sp Span) error {
	if sp.Top < 0 || sp.Left < 0 || sp.Bottom > l.Rows || sp.Right > l.Cols ||
		sp.Top >= sp.Bottom || sp.Left >= sp.Right {
		return fmt.Errorf("%w: span %+v outside %dx%d grid", ErrInvalidConfig, sp, l.Rows, l.Cols)
	}
	return nil
}

// Validate reports whether the layout can place every panel.
func (l Layout) Validate() error {
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, l.Width, l.Height)
	case l.DPI <= 0:
		return fmt.Errorf("%w: dpi %v", ErrInvalidConfig, l.DPI)
	case l.Rows <= 0 || l.Cols <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, l.Rows, l.Cols)
	case l.HSpace < 0 || l.WSpace < 0:
		return fmt.Errorf("%w: negative grid spacing", ErrInvalidConfig)
	case l.Margins.Left < 0 || l.Margins.Top < 0 || l.Margins.Right > 1 || l.Margins.Bottom > 1,
		l.Margins.Left >= l.Margins.Right || l.Margins.Top >= l.Margins.Bottom:
		return fmt.Errorf("%w: margins %+v leave no drawing area", ErrInvalidConfig, l.Margins)
	}
	for _, id := range PanelOrder {
		if _, err := l.Region(id); err != nil {
			return err
		}
	}
	return nil
}

// DesktopLayout is 12x22 inches at 150 dpi on a 20x6 grid.
func DesktopLayout() Layout {
	return Layout{
		Width:   1800,
		Height:  3300,
		DPI:     150,
		Rows:    20,
		Cols:    6,
		HSpace:  0.6,
		WSpace:  0.4,
		Margins: Margins{Left: 0.06, Right: 0.94, Top: 0.03, Bottom: 0.98},
		Panels: map[PanelID]Span{
			PanelTitle:          {Top: 0, Bottom: 2, Left: 0, Right: 6},
			PanelDefinition:     {Top: 2, Bottom: 3, Left: 0, Right: 6},
			PanelStats:          {Top: 3, Bottom: 5, Left: 0, Right: 6},
			PanelPlatforms:      {Top: 5, Bottom: 9, Left: 0, Right: 3},
			PanelDemographics:   {Top: 5, Bottom: 9, Left: 3, Right: 6},
			PanelTimeline:       {Top: 9, Bottom: 15, Left: 0, Right: 6},
			PanelImpacts:        {Top: 15, Bottom: 17, Left: 0, Right: 3},
			PanelCultureSignals: {Top: 15, Bottom: 17, Left: 3, Right: 6},
			PanelBuzzwords:      {Top: 17, Bottom: 18, Left: 0, Right: 6},
			PanelSources:        {Top: 18, Bottom: 19, Left: 0, Right: 6},
			PanelFooter:         {Top: 19, Bottom: 20, Left: 0, Right: 6},
		},
		TimelineSpread:      0.85,
		TimelineEventOffset: 0.035,
		ListIndent:          0.08,
		ListSpacing:         0.18,
	}
}

// PhoneLayout is a 1080x1920 portrait canvas on a 24x6 grid. The last two
// rows stay empty.
func PhoneLayout() Layout {
	return Layout{
		Width:   1080,
		Height:  1920,
		DPI:     150,
		Rows:    24,
		Cols:    6,
		HSpace:  0.7,
		WSpace:  0.3,
		Margins: Margins{Left: 0.05, Right: 0.95, Top: 0.03, Bottom: 0.98},
		Panels: map[PanelID]Span{
			PanelTitle:          {Top: 0, Bottom: 2, Left: 0, Right: 6},
			PanelDefinition:     {Top: 2, Bottom: 3, Left: 0, Right: 6},
			PanelStats:          {Top: 3, Bottom: 5, Left: 0, Right: 6},
			PanelPlatforms:      {Top: 5, Bottom: 9, Left: 0, Right: 3},
			PanelDemographics:   {Top: 5, Bottom: 9, Left: 3, Right: 6},
			PanelTimeline:       {Top: 9, Bottom: 16, Left: 0, Right: 6},
			PanelImpacts:        {Top: 16, Bottom: 19, Left: 0, Right: 3},
			PanelCultureSignals: {Top: 16, Bottom: 19, Left: 3, Right: 6},
			PanelBuzzwords:      {Top: 19, Bottom: 20, Left: 0, Right: 6},
			PanelSources:        {Top: 20, Bottom: 21, Left: 0, Right: 6},
			PanelFooter:         {Top: 21, Bottom: 22, Left: 0, Right: 6},
		},
		TimelineSpread:      0.82,
		TimelineEventOffset: 0.04,
		ListIndent:          0.04,
		ListSpacing:         0.18,
	}
}
