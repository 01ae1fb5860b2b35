package infogen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset names.
const (
	PresetDesktop = "desktop"
	PresetPhone   = "phone"
)

// Config is everything the renderer needs besides the data.
type Config struct {
	Preset   string   `yaml:"preset"`
	Output   string   `yaml:"output"`
	Layout   Layout   `yaml:"layout"`
	Theme    Theme    `yaml:"theme"`
	Headings Headings `yaml:"headings"`
	Fonts    Fonts    `yaml:"fonts,omitempty"`
}

// Headings are the fixed panel captions.
type Headings struct {
	// Definition may contain one %s for the upper-cased title.
	Definition     string `yaml:"definition"`
	Stats          string `yaml:"stats"`
	Platforms      string `yaml:"platforms"`
	Demographics   string `yaml:"demographics"`
	Timeline       string `yaml:"timeline"`
	Impacts        string `yaml:"impacts"`
	CultureSignals string `yaml:"culture_signals"`
	Buzzwords      string `yaml:"buzzwords"`
	// Footer receives generated_by.
	Footer string `yaml:"footer"`
}

// Fonts optionally replaces the embedded Go fonts with TTF/OTF files.
type Fonts struct {
	Regular string `yaml:"regular,omitempty"`
	Bold    string `yaml:"bold,omitempty"`
	Italic  string `yaml:"italic,omitempty"`
}

// DefaultHeadings returns the stock captions.
func DefaultHeadings() Headings {
	return Headings{
		Definition:     "WHAT IS %s?",
		Stats:          "BY THE NUMBERS",
		Platforms:      "PLATFORM DOMINANCE",
		Demographics:   "WHO'S INTO IT? (AGE %)",
		Timeline:       "TIMELINE",
		Impacts:        "NOTABLE IMPACTS",
		CultureSignals: "CULTURE SIGNALS",
		Buzzwords:      "BUZZWORDS",
		Footer:         "Generated by %s",
	}
}

var presets = map[string]func() Config{
	PresetDesktop: func() Config {
		return Config{
			Preset:   PresetDesktop,
			Output:   "output_infographic.png",
			Layout:   DesktopLayout(),
			Theme:    DarkNeonTheme(),
			Headings: DefaultHeadings(),
		}
	},
	PresetPhone: func() Config {
		return Config{
			Preset:   PresetPhone,
			Output:   "output_infographic_phone.png",
			Layout:   PhoneLayout(),
			Theme:    PhoneTheme(),
			Headings: DefaultHeadings(),
		}
	},
}

// Presets lists the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of a named preset. An empty name selects
// the desktop preset.
func Preset(name string) (Config, error) {
	if name == "" {
		name = PresetDesktop
	}
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	return fn(), nil
}

// DefaultConfig is the desktop preset.
func DefaultConfig() Config {
	cfg, _ := Preset(PresetDesktop)
	return cfg
}

// LoadConfig reads a YAML config file. The file's preset key selects the
// base configuration, falling back to preset (and then desktop) when the
// key is absent; every other key present in the file overrides the base.
// A file preset that differs from a non-empty preset argument is an error.
func LoadConfig(path, preset string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg, err := ParseConfig(bytes.NewReader(data), preset)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig reads a YAML config from r; see LoadConfig.
func ParseConfig(r io.Reader, preset string) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case head.Preset == "":
		head.Preset = preset
	case preset != "" && preset != head.Preset:
		return Config{}, fmt.Errorf("%w: preset %q conflicts with file preset %q",
			ErrInvalidConfig, preset, head.Preset)
	}
	cfg, err := Preset(head.Preset)
	if err != nil {
		return Config{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the layout and theme.
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	return c.Theme.Validate()
}

// YAML encodes the configuration.
func (c Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
