package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/widgets/theme"
)

var _ Component = (*Button)(nil)

// Button is a push button, typically used as the trigger that opens a
// picker overlay.
type Button struct {
	bounds  Rectangle
	label   string
	onClick func()
	theme   *theme.Theme
	parent  Container

	// State
	isHovered bool
	isPressed bool
}

func NewButton(x, y, width, height float64, label string, th *theme.Theme, onClick func()) *Button {
	return &Button{
		bounds:  Rectangle{X: x, Y: y, Width: width, Height: height},
		label:   label,
		theme:   th,
		onClick: onClick,
	}
}

func (b *Button) SetParent(parent Container) {
	b.parent = parent
}

func (b *Button) GetParent() Container {
	return b.parent
}

func (b *Button) Update() error {
	return nil
}

// Bounds returns the button rectangle relative to its parent.
func (b *Button) Bounds() Rectangle {
	return b.bounds
}

// ScreenBounds returns the button rectangle in screen coordinates, used as
// the overlay anchor.
func (b *Button) ScreenBounds() Rectangle {
	r := b.bounds
	if b.parent != nil {
		p := b.parent.Bounds()
		r.X += p.X
		r.Y += p.Y
	}
	return r
}

func (b *Button) Draw(screen *ebiten.Image) {
	th := b.theme

	var bg color.RGBA
	switch {
	case b.isPressed:
		bg = color.RGBA(th.Pressed)
	case b.isHovered:
		bg = color.RGBA(th.Hover)
	default:
		bg = color.RGBA(th.Surface)
	}

	r := b.ScreenBounds()
	fillRect(screen, r, bg)
	strokeRect(screen, r, color.RGBA(th.Border))
	drawTextCentered(screen, b.label, r, color.RGBA(th.Text))
}

func (b *Button) HandlePointer(ev PointerEvent) bool {
	inside := b.ScreenBounds().Contains(ev.X, ev.Y)

	switch ev.Phase {
	case PointerMove:
		b.isHovered = inside
		return inside
	case PointerPress:
		b.isHovered = inside
		b.isPressed = inside
		return inside
	case PointerDrag:
		b.isHovered = inside
		return b.isPressed
	case PointerRelease:
		if !b.isPressed {
			return false
		}
		b.isPressed = false
		// A click is a press and release on the same button.
		if inside && b.onClick != nil {
			b.onClick()
		}
		return true
	}
	return false
}
