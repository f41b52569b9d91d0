// Package theme holds the color and sizing tokens the picker widgets draw
// with. Tokens can be overridden from a YAML theme file; anything the file
// leaves out keeps its default.
package theme

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color token, written in theme files as "#RRGGBB" or
// "#RRGGBBAA" hex notation.
type Color color.RGBA

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := parseHex(s)
	if err != nil {
		return fmt.Errorf("theme: line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A), nil
}

func parseHex(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: expected 6 or 8 hex digits", s)
	}

	var v [4]uint8
	v[3] = 0xFF
	for i := 0; i*2 < len(hex); i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("color %q: invalid hex digit", s)
		}
		v[i] = hi<<4 | lo
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Theme is the token set consumed by the ui package.
type Theme struct {
	// Colors
	Background Color `yaml:"background"`
	Surface    Color `yaml:"surface"`
	Border     Color `yaml:"border"`
	Text       Color `yaml:"text"`
	MutedText  Color `yaml:"muted_text"`
	Accent     Color `yaml:"accent"`
	AccentText Color `yaml:"accent_text"`
	Hover      Color `yaml:"hover"`
	Pressed    Color `yaml:"pressed"`
	Backdrop   Color `yaml:"backdrop"` // dimming layer behind an open overlay

	// Sizes, in pixels
	CellSize     float64 `yaml:"cell_size"`
	Padding      float64 `yaml:"padding"`
	HeaderHeight float64 `yaml:"header_height"`
	FooterHeight float64 `yaml:"footer_height"`
	ButtonWidth  float64 `yaml:"button_width"`
	ButtonHeight float64 `yaml:"button_height"`
	ClockRadius  float64 `yaml:"clock_radius"`
	WheelRadius  float64 `yaml:"wheel_radius"`
	BarWidth     float64 `yaml:"bar_width"`
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Background: Color{0x28, 0x2C, 0x34, 0xFF},
		Surface:    Color{0x3A, 0x3F, 0x4B, 0xFF},
		Border:     Color{0x1C, 0x1F, 0x26, 0xFF},
		Text:       Color{0xEC, 0xEF, 0xF4, 0xFF},
		MutedText:  Color{0x8A, 0x91, 0x99, 0xFF},
		Accent:     Color{0x21, 0x96, 0xF3, 0xFF},
		AccentText: Color{0xFF, 0xFF, 0xFF, 0xFF},
		Hover:      Color{0x4A, 0x50, 0x5E, 0xFF},
		Pressed:    Color{0x5A, 0x61, 0x71, 0xFF},
		Backdrop:   Color{0x00, 0x00, 0x00, 0x78},

		CellSize:     32,
		Padding:      8,
		HeaderHeight: 28,
		FooterHeight: 36,
		ButtonWidth:  72,
		ButtonHeight: 26,
		ClockRadius:  96,
		WheelRadius:  88,
		BarWidth:     18,
	}
}

// Load reads a YAML theme file over the defaults, so a file only needs the
// tokens it changes.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("theme: parse %s: %w", path, err)
	}
	return t, nil
}
