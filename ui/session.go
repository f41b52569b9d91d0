package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/widgets/theme"
)

// Action is a session's reply to an input event, telling the overlay
// manager what to do next.
type Action int

const (
	ActionNone    Action = iota
	ActionChanged        // pending state mutated; a redraw is needed
	ActionCommit         // the commit control was activated
	ActionCancel         // the cancel control was activated
)

// Session is the capability surface a picker exposes to the overlay
// manager. The manager stays picker-agnostic: it opens the session, routes
// events to it, and closes it on commit or cancel. The pending value lives
// inside the session; the externally owned value is written only by Commit.
type Session interface {
	// HandlePointer processes one pointer event in screen coordinates.
	// bounds is the overlay rectangle the session occupies.
	HandlePointer(ev PointerEvent, bounds Rectangle) Action

	// HandleKey processes a key press routed by the overlay. Escape and
	// Enter never reach the session; the overlay handles them itself.
	HandleKey(key ebiten.Key, shift bool) Action

	// Draw renders the picker into bounds. Drawing reads only pending
	// state and never mutates the session.
	Draw(dst *ebiten.Image, bounds Rectangle)

	// Commit writes the pending value to the externally owned value and
	// fires the value-changed callback exactly once.
	Commit()

	// Cancel discards the pending value.
	Cancel()

	// MinSize is the surface size the session needs.
	MinSize() (w, h float64)
}

// pressState tracks whether a press-drag gesture is in progress on a
// session's continuous control (clock face, color wheel).
type pressState int

const (
	pressIdle pressState = iota
	pressDragging
)

// footerRects returns the Cancel and OK button rectangles in the footer
// strip at the bottom of bounds.
func footerRects(bounds Rectangle, th *theme.Theme) (cancel, ok Rectangle) {
	y := bounds.Y + bounds.Height - th.FooterHeight + (th.FooterHeight-th.ButtonHeight)/2
	ok = Rectangle{
		X:      bounds.X + bounds.Width - th.Padding - th.ButtonWidth,
		Y:      y,
		Width:  th.ButtonWidth,
		Height: th.ButtonHeight,
	}
	cancel = Rectangle{
		X:      ok.X - th.Padding - th.ButtonWidth,
		Y:      y,
		Width:  th.ButtonWidth,
		Height: th.ButtonHeight,
	}
	return cancel, ok
}

// footerAction maps a pointer press onto the footer controls.
func footerAction(ev PointerEvent, bounds Rectangle, th *theme.Theme) Action {
	if ev.Phase != PointerPress {
		return ActionNone
	}
	cancel, ok := footerRects(bounds, th)
	if ok.Contains(ev.X, ev.Y) {
		return ActionCommit
	}
	if cancel.Contains(ev.X, ev.Y) {
		return ActionCancel
	}
	return ActionNone
}

func drawFooter(dst *ebiten.Image, bounds Rectangle, th *theme.Theme) {
	cancel, ok := footerRects(bounds, th)
	drawDialogButton(dst, cancel, "Cancel", color.RGBA(th.Hover), color.RGBA(th.Text), th)
	drawDialogButton(dst, ok, "OK", color.RGBA(th.Accent), color.RGBA(th.AccentText), th)
}

func drawDialogButton(dst *ebiten.Image, r Rectangle, label string, bg, fg color.RGBA, th *theme.Theme) {
	fillRect(dst, r, bg)
	strokeRect(dst, r, color.RGBA(th.Border))
	drawTextCentered(dst, label, r, fg)
}
