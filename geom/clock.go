package geom

import "math"

// Angle conversion constants shared across the clock and wheel functions.
const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Ring identifies which band of the clock face a point falls in.
type Ring int

const (
	RingHour Ring = iota
	RingMinute
)

const (
	degPerMinute = 6.0  // 360 / 60
	degPerHour   = 30.0 // 360 / 12

	// Fraction of the face radius separating the hour band from the
	// minute band.
	hourBandFraction = 0.62
)

// ClockHit maps a screen point to a clock-face angle and ring. The angle is
// measured clockwise from 12 o'clock in degrees, normalized to [0, 360).
// Points within hourBandFraction of the radius select the hour ring, points
// beyond it the minute ring. There is no dead zone: every point, including
// points outside the face entirely, clamps to the nearest ring rather than
// failing.
func ClockHit(px, py, cx, cy, radius float64) (angle float64, ring Ring) {
	dx := px - cx
	dy := py - cy

	// Screen y grows downward, so cy-py points at 12 o'clock. Computed as a
	// subtraction rather than -dy: at the face center dy is 0 and negating it
	// gives -0.0, which Atan2 maps to 180 instead of the 12 o'clock tie-break.
	angle = math.Atan2(dx, cy-py) * radToDeg
	if angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		angle = 0
	}

	if math.Hypot(dx, dy) <= radius*hourBandFraction {
		return angle, RingHour
	}
	return angle, RingMinute
}

// AngleToMinute converts a clock angle to a minute 0..59. Angles round to the
// nearest minute mark; the 360°/0° seam rounds to minute 0.
func AngleToMinute(angle float64) int {
	return int(math.Round(angle/degPerMinute)) % 60
}

// AngleToHour converts a clock angle to an hour position 0..11, where 0 is
// 12 o'clock. The seam rounds to 0 like AngleToMinute.
func AngleToHour(angle float64) int {
	return int(math.Round(angle/degPerHour)) % 12
}

// MinuteToAngle returns the clock angle of a minute mark.
func MinuteToAngle(minute int) float64 {
	return float64(minute) * degPerMinute
}

// HourToAngle returns the clock angle of an hour position 0..11.
func HourToAngle(hour int) float64 {
	return float64(hour%12) * degPerHour
}

// HandPoint returns the tip of a clock hand of the given length at the given
// angle (clockwise from 12 o'clock), for drawing hands and tick marks.
func HandPoint(cx, cy, length, angle float64) (x, y float64) {
	rad := angle * degToRad
	return cx + length*math.Sin(rad), cy - length*math.Cos(rad)
}

// HourBandRadius returns the outer radius of the hour band for a face of the
// given radius, used to draw the ring separator.
func HourBandRadius(radius float64) float64 {
	return radius * hourBandFraction
}
