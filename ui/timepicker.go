package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/widgets/caltime"
	"github.com/OpticalFlyer/widgets/geom"
	"github.com/OpticalFlyer/widgets/theme"
)

var _ Session = (*TimeSession)(nil)

// TimeSession edits a wall-clock time on an analog face with two rings: the
// inner band sets the hour, the outer band the minute. A press-move-release
// gesture on the face adjusts the pending time continuously; every drag
// event updates it immediately.
type TimeSession struct {
	pending    caltime.Time
	committed  *caltime.Time
	onCommit   func(caltime.Time)
	focus      caltime.TimeField
	twelveHour bool
	press      pressState
	theme      *theme.Theme
}

// NewTimeSession starts editing *value. In twelveHour mode the readout
// shows a 12-hour clock with an AM/PM toggle; the hour ring then keeps the
// current half-day, so dragging the hour hand never flips the meridiem.
func NewTimeSession(value *caltime.Time, twelveHour bool, th *theme.Theme, onCommit func(caltime.Time)) *TimeSession {
	return &TimeSession{
		pending:    caltime.NewTime(value.Hour, value.Minute, value.Second),
		committed:  value,
		onCommit:   onCommit,
		focus:      caltime.FieldHour,
		twelveHour: twelveHour,
		theme:      th,
	}
}

// Pending returns the time currently being edited.
func (s *TimeSession) Pending() caltime.Time {
	return s.pending
}

// Focus returns the field keyboard adjustments apply to.
func (s *TimeSession) Focus() caltime.TimeField {
	return s.focus
}

func (s *TimeSession) MinSize() (w, h float64) {
	th := s.theme
	w = th.Padding*2 + th.ClockRadius*2
	h = th.Padding + th.HeaderHeight + th.Padding + th.ClockRadius*2 + th.FooterHeight
	return w, h
}

func (s *TimeSession) faceCenter(bounds Rectangle) (cx, cy float64) {
	th := s.theme
	cx = bounds.X + bounds.Width/2
	cy = bounds.Y + th.Padding + th.HeaderHeight + th.Padding + th.ClockRadius
	return cx, cy
}

func (s *TimeSession) headerRect(bounds Rectangle) Rectangle {
	th := s.theme
	return Rectangle{
		X:      bounds.X + th.Padding,
		Y:      bounds.Y + th.Padding,
		Width:  bounds.Width - th.Padding*2,
		Height: th.HeaderHeight,
	}
}

// meridiemRect is the AM/PM toggle at the right end of the header. Only
// meaningful in twelve-hour mode.
func (s *TimeSession) meridiemRect(bounds Rectangle) Rectangle {
	h := s.headerRect(bounds)
	return Rectangle{X: h.X + h.Width - 36, Y: h.Y, Width: 36, Height: h.Height}
}

func (s *TimeSession) HandlePointer(ev PointerEvent, bounds Rectangle) Action {
	if a := footerAction(ev, bounds, s.theme); a != ActionNone {
		return a
	}

	cx, cy := s.faceCenter(bounds)

	switch ev.Phase {
	case PointerPress:
		if s.twelveHour && s.meridiemRect(bounds).Contains(ev.X, ev.Y) {
			if s.pending.Meridiem() == caltime.AM {
				s.pending = s.pending.WithMeridiem(caltime.PM)
			} else {
				s.pending = s.pending.WithMeridiem(caltime.AM)
			}
			return ActionChanged
		}
		if math.Hypot(ev.X-cx, ev.Y-cy) <= s.theme.ClockRadius {
			s.press = pressDragging
			s.applyClock(ev, cx, cy)
			return ActionChanged
		}
	case PointerDrag:
		// Live adjustment: the gesture stays captured even when the
		// pointer leaves the face, clamping to the nearest ring.
		if s.press == pressDragging {
			s.applyClock(ev, cx, cy)
			return ActionChanged
		}
	case PointerRelease:
		if s.press == pressDragging {
			s.press = pressIdle
			return ActionChanged
		}
	}

	return ActionNone
}

func (s *TimeSession) applyClock(ev PointerEvent, cx, cy float64) {
	angle, ring := geom.ClockHit(ev.X, ev.Y, cx, cy, s.theme.ClockRadius)
	switch ring {
	case geom.RingHour:
		s.pending = s.pending.WithFacePosition(geom.AngleToHour(angle))
		s.focus = caltime.FieldHour
	case geom.RingMinute:
		s.pending.Minute = geom.AngleToMinute(angle)
		s.focus = caltime.FieldMinute
	}
}

func (s *TimeSession) HandleKey(key ebiten.Key, shift bool) Action {
	switch key {
	case ebiten.KeyTab:
		if shift {
			s.focus = s.focus.Prev()
		} else {
			s.focus = s.focus.Next()
		}
		return ActionChanged
	case ebiten.KeyUp, ebiten.KeyRight:
		s.pending = s.pending.AddField(s.focus, 1)
		return ActionChanged
	case ebiten.KeyDown, ebiten.KeyLeft:
		s.pending = s.pending.AddField(s.focus, -1)
		return ActionChanged
	}
	return ActionNone
}

func (s *TimeSession) Commit() {
	*s.committed = s.pending
	if s.onCommit != nil {
		s.onCommit(s.pending)
	}
}

func (s *TimeSession) Cancel() {
	// The pending time is discarded with the session.
}

func (s *TimeSession) Draw(dst *ebiten.Image, bounds Rectangle) {
	th := s.theme
	drawSurface(dst, bounds, th)
	s.drawReadout(dst, bounds)
	s.drawFace(dst, bounds)
	drawFooter(dst, bounds, th)
}

func (s *TimeSession) drawReadout(dst *ebiten.Image, bounds Rectangle) {
	th := s.theme
	h := s.headerRect(bounds)

	hour := s.pending.Hour
	if s.twelveHour {
		hour = s.pending.Hour12()
	}
	segments := []struct {
		text  string
		field caltime.TimeField
	}{
		{fmt.Sprintf("%02d", hour), caltime.FieldHour},
		{fmt.Sprintf("%02d", s.pending.Minute), caltime.FieldMinute},
		{fmt.Sprintf("%02d", s.pending.Second), caltime.FieldSecond},
	}

	colonW, _ := textSize(":")
	total := colonW * float64(len(segments)-1)
	for _, seg := range segments {
		w, _ := textSize(seg.text)
		total += w
	}

	x := h.X + (h.Width-total)/2
	for i, seg := range segments {
		w, lineH := textSize(seg.text)
		y := h.Y + (h.Height-lineH)/2
		clr := color.RGBA(th.Text)
		if seg.field == s.focus {
			clr = color.RGBA(th.Accent)
			fillRect(dst, Rectangle{X: x, Y: y + lineH + 1, Width: w, Height: 2}, clr)
		}
		drawText(dst, seg.text, x, y, clr)
		x += w
		if i < len(segments)-1 {
			drawText(dst, ":", x, y, color.RGBA(th.MutedText))
			x += colonW
		}
	}

	if s.twelveHour {
		m := s.meridiemRect(bounds)
		strokeRect(dst, m, color.RGBA(th.Border))
		drawTextCentered(dst, s.pending.Meridiem().String(), m, color.RGBA(th.Text))
	}
}

func (s *TimeSession) drawFace(dst *ebiten.Image, bounds Rectangle) {
	th := s.theme
	cx, cy := s.faceCenter(bounds)
	r := th.ClockRadius

	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r),
		color.RGBA(th.Background), true)
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), 1,
		color.RGBA(th.Border), true)
	vector.StrokeCircle(dst, float32(cx), float32(cy),
		float32(geom.HourBandRadius(r)), 1, color.RGBA(th.Border), true)

	// Hour tick marks around the rim.
	for h := 0; h < 12; h++ {
		a := geom.HourToAngle(h)
		x0, y0 := geom.HandPoint(cx, cy, r*0.92, a)
		x1, y1 := geom.HandPoint(cx, cy, r*0.98, a)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1),
			2, color.RGBA(th.MutedText), true)
	}

	accent := color.NRGBA{R: th.Accent.R, G: th.Accent.G, B: th.Accent.B, A: th.Accent.A}
	muted := color.NRGBA{R: th.MutedText.R, G: th.MutedText.G, B: th.MutedText.B, A: th.MutedText.A}

	// The hand on the focused ring is accented.
	hourClr, minuteClr := muted, muted
	if s.focus == caltime.FieldHour {
		hourClr = accent
	}
	if s.focus == caltime.FieldMinute {
		minuteClr = accent
	}

	minuteAngle := geom.MinuteToAngle(s.pending.Minute)
	xs, ys := handQuad(cx, cy, r*0.88, 4, minuteAngle)
	fillPolygon(dst, xs, ys, minuteClr)

	hourAngle := geom.HourToAngle(s.pending.FacePosition())
	xs, ys = handQuad(cx, cy, geom.HourBandRadius(r)*0.85, 6, hourAngle)
	fillPolygon(dst, xs, ys, hourClr)

	vector.DrawFilledCircle(dst, float32(cx), float32(cy), 4, accent, true)
}

// handQuad builds the four corners of a clock-hand polygon of the given
// length and width, pointing at angle (clockwise from 12 o'clock).
func handQuad(cx, cy, length, width, angle float64) (xs, ys []float64) {
	tipX, tipY := geom.HandPoint(cx, cy, length, angle)
	lx, ly := geom.HandPoint(cx, cy, width/2, angle-90)
	rx, ry := geom.HandPoint(cx, cy, width/2, angle+90)

	xs = []float64{lx, tipX + (lx - cx), tipX + (rx - cx), rx}
	ys = []float64{ly, tipY + (ly - cy), tipY + (ry - cy), ry}
	return xs, ys
}
