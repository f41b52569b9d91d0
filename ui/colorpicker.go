package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/widgets/geom"
	"github.com/OpticalFlyer/widgets/hsva"
	"github.com/OpticalFlyer/widgets/theme"
)

var _ Session = (*ColorSession)(nil)

// colorControl identifies which continuous control owns the current drag.
type colorControl int

const (
	controlNone colorControl = iota
	controlWheel
	controlValueBar
	controlAlphaBar
)

const swatchHeight = 20.0

// ColorSession edits an HSV(A) color on a hue/saturation wheel with value
// and alpha bars beside it. The whole surface is continuous: there are no
// discrete focus fields, and every drag event updates the pending color
// immediately.
type ColorSession struct {
	pending   hsva.Value
	committed *hsva.Value
	onCommit  func(hsva.Value)
	active    colorControl
	theme     *theme.Theme
}

// NewColorSession starts editing *value. The session works on a clamped
// copy; *value is written only on commit.
func NewColorSession(value *hsva.Value, th *theme.Theme, onCommit func(hsva.Value)) *ColorSession {
	return &ColorSession{
		pending:   value.Clamp(),
		committed: value,
		onCommit:  onCommit,
		theme:     th,
	}
}

// Pending returns the color currently being edited.
func (s *ColorSession) Pending() hsva.Value {
	return s.pending
}

func (s *ColorSession) MinSize() (w, h float64) {
	th := s.theme
	w = th.Padding + th.WheelRadius*2 + th.Padding + th.BarWidth +
		th.Padding + th.BarWidth + th.Padding
	h = th.Padding + th.WheelRadius*2 + th.Padding + swatchHeight + th.FooterHeight
	return w, h
}

func (s *ColorSession) wheelCenter(bounds Rectangle) (cx, cy float64) {
	th := s.theme
	return bounds.X + th.Padding + th.WheelRadius, bounds.Y + th.Padding + th.WheelRadius
}

func (s *ColorSession) valueBarRect(bounds Rectangle) Rectangle {
	th := s.theme
	return Rectangle{
		X:      bounds.X + th.Padding + th.WheelRadius*2 + th.Padding,
		Y:      bounds.Y + th.Padding,
		Width:  th.BarWidth,
		Height: th.WheelRadius * 2,
	}
}

func (s *ColorSession) alphaBarRect(bounds Rectangle) Rectangle {
	r := s.valueBarRect(bounds)
	r.X += r.Width + s.theme.Padding
	return r
}

func (s *ColorSession) swatchRect(bounds Rectangle) Rectangle {
	th := s.theme
	return Rectangle{
		X:      bounds.X + th.Padding,
		Y:      bounds.Y + th.Padding + th.WheelRadius*2 + th.Padding,
		Width:  bounds.Width - th.Padding*2,
		Height: swatchHeight,
	}
}

func (s *ColorSession) HandlePointer(ev PointerEvent, bounds Rectangle) Action {
	if a := footerAction(ev, bounds, s.theme); a != ActionNone {
		return a
	}

	switch ev.Phase {
	case PointerPress:
		cx, cy := s.wheelCenter(bounds)
		switch {
		case math.Hypot(ev.X-cx, ev.Y-cy) <= s.theme.WheelRadius:
			s.active = controlWheel
		case s.valueBarRect(bounds).Contains(ev.X, ev.Y):
			s.active = controlValueBar
		case s.alphaBarRect(bounds).Contains(ev.X, ev.Y):
			s.active = controlAlphaBar
		default:
			return ActionNone
		}
		s.applyDrag(ev, bounds)
		return ActionChanged

	case PointerDrag:
		// Live preview: the pending color tracks every move while the
		// press is held, even outside the control (clamped).
		if s.active == controlNone {
			return ActionNone
		}
		s.applyDrag(ev, bounds)
		return ActionChanged

	case PointerRelease:
		if s.active == controlNone {
			return ActionNone
		}
		s.active = controlNone
		return ActionChanged
	}

	return ActionNone
}

func (s *ColorSession) applyDrag(ev PointerEvent, bounds Rectangle) {
	switch s.active {
	case controlWheel:
		cx, cy := s.wheelCenter(bounds)
		s.pending.H = geom.HueAt(ev.X, ev.Y, cx, cy)
		s.pending.S = geom.SatAt(ev.X, ev.Y, cx, cy, s.theme.WheelRadius)
	case controlValueBar:
		s.pending.V = barFraction(ev.Y, s.valueBarRect(bounds))
	case controlAlphaBar:
		s.pending.A = barFraction(ev.Y, s.alphaBarRect(bounds))
	}
}

// barFraction maps a pointer y onto a vertical bar: 1 at the top, 0 at the
// bottom, clamped.
func barFraction(y float64, bar Rectangle) float64 {
	f := 1 - (y-bar.Y)/bar.Height
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// HandleKey is a no-op: the color picker is a single continuous surface
// with no focus fields to cycle or step.
func (s *ColorSession) HandleKey(key ebiten.Key, shift bool) Action {
	return ActionNone
}

func (s *ColorSession) Commit() {
	*s.committed = s.pending
	if s.onCommit != nil {
		s.onCommit(s.pending)
	}
}

func (s *ColorSession) Cancel() {
	// The pending color is discarded with the session.
}

func (s *ColorSession) Draw(dst *ebiten.Image, bounds Rectangle) {
	th := s.theme
	drawSurface(dst, bounds, th)

	s.drawWheel(dst, bounds)
	s.drawBars(dst, bounds)

	swatch := s.swatchRect(bounds)
	fillRect(dst, swatch, s.pending.NRGBA())
	strokeRect(dst, swatch, color.RGBA(th.Border))

	drawFooter(dst, bounds, th)
}

const wheelSegments = 48

// drawWheel renders the hue/saturation disc as a triangle fan with
// per-vertex colors: the center is desaturated, the rim runs the full hue
// circle, both at the pending value (brightness).
func (s *ColorSession) drawWheel(dst *ebiten.Image, bounds Rectangle) {
	cx, cy := s.wheelCenter(bounds)
	r := s.theme.WheelRadius

	vs := make([]ebiten.Vertex, wheelSegments+2)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
	}

	setVertex(&vs[0], float32(cx), float32(cy),
		hsva.Value{H: 0, S: 0, V: s.pending.V, A: 1}.NRGBA())
	for i := 0; i <= wheelSegments; i++ {
		hue := float64(i) * 360 / wheelSegments
		x, y := geom.WheelPoint(cx, cy, r, hue, 1)
		setVertex(&vs[i+1], float32(x), float32(y),
			hsva.Value{H: hue, S: 1, V: s.pending.V, A: 1}.NRGBA())
	}

	is := make([]uint16, 0, wheelSegments*3)
	for i := 0; i < wheelSegments; i++ {
		is = append(is, 0, uint16(i+1), uint16(i+2))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteTexture(), op)

	// Selection marker at the pending hue/saturation.
	mx, my := geom.WheelPoint(cx, cy, r, s.pending.H, s.pending.S)
	vector.DrawFilledCircle(dst, float32(mx), float32(my), 5, s.pending.NRGBA(), true)
	vector.StrokeCircle(dst, float32(mx), float32(my), 5, 1.5,
		color.RGBA(s.theme.AccentText), true)
}

func (s *ColorSession) drawBars(dst *ebiten.Image, bounds Rectangle) {
	th := s.theme

	// Value bar: full brightness at the top, black at the bottom.
	vb := s.valueBarRect(bounds)
	top := hsva.Value{H: s.pending.H, S: s.pending.S, V: 1, A: 1}.NRGBA()
	fillVGradient(dst, vb, top, color.NRGBA{A: 0xFF})
	strokeRect(dst, vb, color.RGBA(th.Border))
	drawBarMarker(dst, vb, s.pending.V, th)

	// Alpha bar: opaque at the top, transparent at the bottom.
	ab := s.alphaBarRect(bounds)
	opaque := hsva.Value{H: s.pending.H, S: s.pending.S, V: s.pending.V, A: 1}.NRGBA()
	clear := opaque
	clear.A = 0
	fillRect(dst, ab, color.RGBA(th.Background))
	fillVGradient(dst, ab, opaque, clear)
	strokeRect(dst, ab, color.RGBA(th.Border))
	drawBarMarker(dst, ab, s.pending.A, th)
}

// drawBarMarker draws the horizontal position line on a vertical bar at
// fraction f (1 = top).
func drawBarMarker(dst *ebiten.Image, bar Rectangle, f float64, th *theme.Theme) {
	y := bar.Y + (1-f)*bar.Height
	vector.StrokeLine(dst, float32(bar.X-2), float32(y),
		float32(bar.X+bar.Width+2), float32(y), 2, color.RGBA(th.AccentText), true)
}
