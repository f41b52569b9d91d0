package ui

import "github.com/hajimehoshi/ebiten/v2"

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() Rectangle
	HandlePointer(ev PointerEvent) bool
	SetParent(parent Container)
	GetParent() Container
}

// Container represents a Component that can hold and manage other Components.
type Container interface {
	Component
	AddChild(child Component)
	RemoveChild(child Component)
	Children() []Component
}

// Rectangle represents the bounds of a Component in screen pixels.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// PointerPhase distinguishes the stages of a press-drag-release gesture.
type PointerPhase int

const (
	// PointerMove is motion with no button held.
	PointerMove PointerPhase = iota
	// PointerPress is the frame the button (or touch) goes down.
	PointerPress
	// PointerDrag is motion while the button is held.
	PointerDrag
	// PointerRelease is the frame the button comes back up.
	PointerRelease
)

// PointerEvent is a mouse or touch event in screen coordinates.
type PointerEvent struct {
	X, Y  float64
	Phase PointerPhase
}
