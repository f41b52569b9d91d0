package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/widgets/theme"
	"github.com/OpticalFlyer/widgets/ulog"
)

// Gap in pixels between the trigger widget and the overlay surface.
const anchorGap = 4.0

// Overlay is the window's single floating picker surface, anchored to the
// trigger widget that opened it. While open it is drawn above all other
// content and owns input exclusively: no pointer or key event passes
// through to the widgets underneath until it closes.
type Overlay struct {
	session Session
	bounds  Rectangle
	theme   *theme.Theme
	open    bool
}

func NewOverlay(th *theme.Theme) *Overlay {
	return &Overlay{theme: th}
}

// Place computes the overlay rectangle for a surface of size w x h anchored
// to trigger within viewport. Placement is deterministic: below the trigger
// and left-aligned to it, flipped above when the bottom edge would overflow
// the viewport, then clamped horizontally. A viewport smaller than the
// surface pins the overlay to the viewport origin and lets it overflow;
// clipping is acceptable, failing is not.
func Place(trigger, viewport Rectangle, w, h float64) Rectangle {
	r := Rectangle{
		X:      trigger.X,
		Y:      trigger.Y + trigger.Height + anchorGap,
		Width:  w,
		Height: h,
	}

	if r.Y+h > viewport.Y+viewport.Height {
		r.Y = trigger.Y - anchorGap - h
	}
	if r.X+w > viewport.X+viewport.Width {
		r.X = viewport.X + viewport.Width - w
	}
	if r.X < viewport.X {
		r.X = viewport.X
	}
	if r.Y < viewport.Y {
		r.Y = viewport.Y
	}
	return r
}

// Open anchors the session to trigger and routes all input to it until it
// commits, cancels, or is dismissed. Opening while another session is open
// cancels that session first.
func (o *Overlay) Open(s Session, trigger, viewport Rectangle) {
	if o.open {
		o.Cancel()
	}

	w, h := s.MinSize()
	o.bounds = Place(trigger, viewport, w, h)
	if o.bounds.X+w > viewport.X+viewport.Width ||
		o.bounds.Y+h > viewport.Y+viewport.Height {
		ulog.Warn("overlay does not fit viewport, clipping",
			"overlay_w", w, "overlay_h", h,
			"viewport_w", viewport.Width, "viewport_h", viewport.Height)
	}

	o.session = s
	o.open = true
}

// IsOpen reports whether a session is currently showing.
func (o *Overlay) IsOpen() bool {
	return o.open
}

// Bounds returns the placed overlay rectangle. Only meaningful while open.
func (o *Overlay) Bounds() Rectangle {
	return o.bounds
}

// HandlePointer consumes every pointer event while open. A press outside
// the overlay bounds dismisses the overlay, cancelling its session.
func (o *Overlay) HandlePointer(ev PointerEvent) {
	if !o.open {
		return
	}
	if ev.Phase == PointerPress && !o.bounds.Contains(ev.X, ev.Y) {
		o.Cancel()
		return
	}
	o.apply(o.session.HandlePointer(ev, o.bounds))
}

// HandleKey routes a key press while open. Escape always cancels and Enter
// always commits, regardless of the session; other keys are the session's
// to interpret.
func (o *Overlay) HandleKey(key ebiten.Key, shift bool) {
	if !o.open {
		return
	}
	switch key {
	case ebiten.KeyEscape:
		o.Cancel()
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		o.Commit()
	default:
		o.apply(o.session.HandleKey(key, shift))
	}
}

func (o *Overlay) apply(a Action) {
	switch a {
	case ActionCommit:
		o.Commit()
	case ActionCancel:
		o.Cancel()
	}
}

// Commit writes the session's pending value to its owner and closes.
// No-op when already closed.
func (o *Overlay) Commit() {
	if !o.open {
		return
	}
	o.session.Commit()
	o.dismiss()
}

// Cancel discards the session's pending value and closes. Idempotent:
// cancelling an already closed overlay does nothing.
func (o *Overlay) Cancel() {
	if !o.open {
		return
	}
	o.session.Cancel()
	o.dismiss()
}

func (o *Overlay) dismiss() {
	o.open = false
	o.session = nil
}

// Draw renders the open session's surface. The controller calls this after
// every other widget so the overlay is always the top-most layer.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.open {
		return
	}
	o.session.Draw(screen, o.bounds)
}
