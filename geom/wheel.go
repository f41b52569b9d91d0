package geom

import "math"

// Color wheel conversions. Hue is measured clockwise in screen space (y
// grows downward) from the positive x axis, in degrees [0, 360). Saturation
// is the distance from the wheel center as a fraction of the wheel radius.

// HueAt maps a screen point to a hue angle on a wheel centered at (cx, cy).
// The result is normalized to [0, 360); boundary floating-point error at the
// seam clamps to 0 rather than producing 360.
func HueAt(px, py, cx, cy float64) float64 {
	h := math.Atan2(py-cy, px-cx) * radToDeg
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// SatAt maps a screen point to a saturation fraction in [0, 1]. Points
// beyond the wheel's outer radius saturate to 1 rather than failing.
func SatAt(px, py, cx, cy, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	f := math.Hypot(px-cx, py-cy) / radius
	if f > 1 {
		return 1
	}
	return f
}

// WheelPoint is the inverse of HueAt/SatAt: the screen point at the given
// hue and saturation on a wheel of the given radius.
func WheelPoint(cx, cy, radius, hue, sat float64) (x, y float64) {
	rad := hue * degToRad
	return cx + radius*sat*math.Cos(rad), cy + radius*sat*math.Sin(rad)
}
