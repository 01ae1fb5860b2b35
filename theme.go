package infogen

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Theme holds colours and type sizes. Colours are hex strings
// ("#rrggbb", "#rgb", with optional alpha) or SVG colour names.
type Theme struct {
	Background string   `yaml:"background"`
	Text       string   `yaml:"text"`
	Accent     string   `yaml:"accent"`
	Highlight  string   `yaml:"highlight"`
	Positive   string   `yaml:"positive"`
	Palette    []string `yaml:"palette"`

	// Faint colours of the meta line, the sources line and the footer.
	Meta    string `yaml:"meta"`
	Sources string `yaml:"sources"`
	Footer  string `yaml:"footer"`

	Sizes FontSizes `yaml:"sizes"`
}

// FontSizes are in typographic points; the layout DPI converts them to pixels.
type FontSizes struct {
	Title          float64 `yaml:"title"`
	Subtitle       float64 `yaml:"subtitle"`
	Meta           float64 `yaml:"meta"`
	Heading        float64 `yaml:"heading"`
	ChartHeading   float64 `yaml:"chart_heading"`
	Definition     float64 `yaml:"definition"`
	StatValue      float64 `yaml:"stat_value"`
	StatLabel      float64 `yaml:"stat_label"`
	WedgeLabel     float64 `yaml:"wedge_label"`
	WedgeShare     float64 `yaml:"wedge_share"`
	BarLabel       float64 `yaml:"bar_label"`
	TimelinePeriod float64 `yaml:"timeline_period"`
	TimelineEvent  float64 `yaml:"timeline_event"`
	List           float64 `yaml:"list"`
	Buzzwords      float64 `yaml:"buzzwords"`
	Sources        float64 `yaml:"sources"`
	Footer         float64 `yaml:"footer"`
}

// DarkNeonTheme is the desktop colour scheme.
func DarkNeonTheme() Theme {
	return Theme{
		Background: "#0d0d1a",
		Text:       "#ffffff",
		Accent:     "#00f2ea",
		Highlight:  "#ff0050",
		Positive:   "#ccff00",
		Palette:    []string{"#00f2ea", "#ff0050", "#ccff00", "#b14eff"},
		Meta:       "#888888",
		Sources:    "#88888899",
		Footer:     "#88888880",
		Sizes: FontSizes{
			Title:          48,
			Subtitle:       16,
			Meta:           12,
			Heading:        14,
			ChartHeading:   13,
			Definition:     11,
			StatValue:      36,
			StatLabel:      10,
			WedgeLabel:     10,
			WedgeShare:     9,
			BarLabel:       11,
			TimelinePeriod: 10,
			TimelineEvent:  9,
			List:           10,
			Buzzwords:      13,
			Sources:        7,
			Footer:         9,
		},
	}
}

// PhoneTheme is the portrait colour scheme with smaller type.
func PhoneTheme() Theme {
	t := DarkNeonTheme()
	t.Background = "#0f0f1a"
	t.Meta = "#ffffff99"
	t.Sources = "#ffffff66"
	t.Footer = "#ffffff59"
	t.Sizes = FontSizes{
		Title:          38,
		Subtitle:       11,
		Meta:           9,
		Heading:        12,
		ChartHeading:   10,
		Definition:     9,
		StatValue:      26,
		StatLabel:      8,
		WedgeLabel:     8,
		WedgeShare:     8,
		BarLabel:       9,
		TimelinePeriod: 9,
		TimelineEvent:  8,
		List:           8,
		Buzzwords:      10,
		Sources:        6,
		Footer:         7,
	}
	return t
}

// Validate reports unparsable colours and unusable sizes.
func (t Theme) Validate() error {
	var p palette
	for _, r := range t.roles(&p) {
		if _, err := ParseColor(r.src); err != nil {
			return fmt.Errorf("%w: theme %s: %w", ErrInvalidConfig, r.name, err)
		}
	}
	if len(t.Palette) == 0 {
		return fmt.Errorf("%w: theme palette is empty", ErrInvalidConfig)
	}
	for i, c := range t.Palette {
		if _, err := ParseColor(c); err != nil {
			return fmt.Errorf("%w: theme palette[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	s := t.Sizes
	for _, v := range []float64{
		s.Title, s.Subtitle, s.Meta, s.Heading, s.ChartHeading, s.Definition,
		s.StatValue, s.StatLabel, s.WedgeLabel, s.WedgeShare, s.BarLabel,
		s.TimelinePeriod, s.TimelineEvent, s.List, s.Buzzwords, s.Sources, s.Footer,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: font sizes must be positive", ErrInvalidConfig)
		}
	}
	return nil
}

// ParseColor accepts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" (the leading
// '#' is optional) and SVG 1.1 colour names.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return gg.FromColor(c), nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

// palette resolves the theme colours once per render.
type palette struct {
	background, text, accent, highlight, positive gg.RGBA
	meta, sources, footer                        gg.RGBA
	cycle                                        []gg.RGBA
}

// colorRole ties a theme colour to its resolved palette slot.
type colorRole struct {
	name string
	src  string
	dst  *gg.RGBA
}

// roles lists the named theme colours in a fixed order.
func (t Theme) roles(p *palette) []colorRole {
	return []colorRole{
		{"background", t.Background, &p.background},
		{"text", t.Text, &p.text},
		{"accent", t.Accent, &p.accent},
		{"highlight", t.Highlight, &p.highlight},
		{"positive", t.Positive, &p.positive},
		{"meta", t.Meta, &p.meta},
		{"sources", t.Sources, &p.sources},
		{"footer", t.Footer, &p.footer},
	}
}

func (t Theme) resolve() (palette, error) {
	var p palette
	var err error
	for _, r := range t.roles(&p) {
		if *r.dst, err = ParseColor(r.src); err != nil {
			return palette{}, err
		}
	}
	for _, s := range t.Palette {
		c, err := ParseColor(s)
		if err != nil {
			return palette{}, err
		}
		p.cycle = append(p.cycle, c)
	}
	if len(p.cycle) == 0 {
		p.cycle = []gg.RGBA{p.accent}
	}
	return p, nil
}

// at returns the i-th palette colour, cycling.
func (p palette) at(i int) gg.RGBA {
	return p.cycle[i%len(p.cycle)]
}

// withAlpha scales the colour's alpha.
func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A *= a
	return c
}
