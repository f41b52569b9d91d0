// Package hsva holds the color picker's value type: a color in HSV space
// with straight (non-premultiplied) alpha, convertible to and from RGBA.
// Conversions go through github.com/lucasb-eyer/go-colorful.
package hsva

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Value is an HSV(A) color. H is in degrees [0, 360); S, V and A are in
// [0, 1]. At S == 0 the hue is undefined and conversions report it as 0.
type Value struct {
	H, S, V, A float64
}

// New builds a Value with every component normalized into range.
func New(h, s, v, a float64) Value {
	return Value{H: h, S: s, V: v, A: a}.Clamp()
}

// Clamp normalizes the value: the hue wraps modulo 360, the other components
// clamp to [0, 1]. NaNs collapse to 0.
func (v Value) Clamp() Value {
	v.H = math.Mod(v.H, 360)
	if v.H < 0 {
		v.H += 360
	}
	if math.IsNaN(v.H) {
		v.H = 0
	}
	v.S = clamp01(v.S)
	v.V = clamp01(v.V)
	v.A = clamp01(v.A)
	return v
}

// RGBA returns the color as float components in [0, 1] with straight alpha.
func (v Value) RGBA() (r, g, b, a float64) {
	c := colorful.Hsv(v.H, v.S, v.V)
	return c.R, c.G, c.B, v.A
}

// NRGBA converts to 8-bit RGBA for drawing.
func (v Value) NRGBA() color.NRGBA {
	r, g, b, a := v.RGBA()
	return color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// FromRGBA converts float RGBA components in [0, 1] back to HSV(A).
func FromRGBA(r, g, b, a float64) Value {
	h, s, v := colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}.Hsv()
	return Value{H: h, S: s, V: v, A: clamp01(a)}
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
