package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/widgets/theme"
)

// Controller manages all UI elements and owns the window's single overlay
// slot. It polls input once per tick, turns it into pointer events and
// routes them: the overlay first (with exclusive priority while open), then
// the widget tree.
type Controller struct {
	widgets []Component
	overlay *Overlay
	theme   *theme.Theme

	windowWidth  int
	windowHeight int

	// Mouse gesture state
	mouseDown  bool
	lastMouseX int
	lastMouseY int

	// First-finger touch gesture state; additional fingers are ignored
	touchID     ebiten.TouchID
	touchActive bool
	touchIDs    []ebiten.TouchID
}

// NewController creates a new UI controller drawing with the given theme.
func NewController(th *theme.Theme) *Controller {
	return &Controller{
		widgets:      make([]Component, 0),
		overlay:      NewOverlay(th),
		theme:        th,
		windowWidth:  800,
		windowHeight: 600,
	}
}

// AddWidget adds a top-level widget to the UI.
func (c *Controller) AddWidget(w Component) {
	c.widgets = append(c.widgets, w)
}

func (c *Controller) Theme() *theme.Theme {
	return c.theme
}

// OpenOverlay opens a picker session anchored to trigger, using the current
// window size as the viewport.
func (c *Controller) OpenOverlay(s Session, trigger Rectangle) {
	viewport := Rectangle{
		Width:  float64(c.windowWidth),
		Height: float64(c.windowHeight),
	}
	c.overlay.Open(s, trigger, viewport)
}

// OverlayOpen reports whether a picker overlay is currently open, so the
// application can dim background content or suspend its own input handling.
func (c *Controller) OverlayOpen() bool {
	return c.overlay.IsOpen()
}

// Update polls input and updates all UI elements.
func (c *Controller) Update() error {
	for _, ev := range c.pollPointer() {
		c.dispatchPointer(ev)
	}
	c.dispatchKeys()

	for _, w := range c.widgets {
		if err := w.Update(); err != nil {
			return err
		}
	}
	return nil
}

// pollPointer turns this tick's mouse and touch state into pointer events,
// in delivery order. Touches come after the mouse so a simultaneous click
// and tap still arrive as two ordered events.
func (c *Controller) pollPointer() []PointerEvent {
	var evs []PointerEvent

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	moved := x != c.lastMouseX || y != c.lastMouseY

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		c.mouseDown = true
		evs = append(evs, PointerEvent{fx, fy, PointerPress})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		c.mouseDown = false
		evs = append(evs, PointerEvent{fx, fy, PointerRelease})
	case c.mouseDown && moved:
		evs = append(evs, PointerEvent{fx, fy, PointerDrag})
	case moved:
		evs = append(evs, PointerEvent{fx, fy, PointerMove})
	}
	c.lastMouseX, c.lastMouseY = x, y

	return c.appendTouchEvents(evs)
}

// appendTouchEvents maps the first touch onto the same press/drag/release
// phases as the mouse.
func (c *Controller) appendTouchEvents(evs []PointerEvent) []PointerEvent {
	if !c.touchActive {
		c.touchIDs = inpututil.AppendJustPressedTouchIDs(c.touchIDs[:0])
		if len(c.touchIDs) == 0 {
			return evs
		}
		c.touchID = c.touchIDs[0]
		c.touchActive = true
		tx, ty := ebiten.TouchPosition(c.touchID)
		return append(evs, PointerEvent{float64(tx), float64(ty), PointerPress})
	}

	if inpututil.IsTouchJustReleased(c.touchID) {
		c.touchActive = false
		tx, ty := inpututil.TouchPositionInPreviousTick(c.touchID)
		return append(evs, PointerEvent{float64(tx), float64(ty), PointerRelease})
	}

	tx, ty := ebiten.TouchPosition(c.touchID)
	return append(evs, PointerEvent{float64(tx), float64(ty), PointerDrag})
}

func (c *Controller) dispatchPointer(ev PointerEvent) {
	// The overlay owns input exclusively while open; nothing reaches the
	// widgets underneath.
	if c.overlay.IsOpen() {
		c.overlay.HandlePointer(ev)
		return
	}

	for _, w := range c.widgets {
		if w.HandlePointer(ev) {
			return
		}
	}
}

// routedKeys are the keys the pickers react to.
var routedKeys = []ebiten.Key{
	ebiten.KeyEscape,
	ebiten.KeyEnter,
	ebiten.KeyNumpadEnter,
	ebiten.KeyTab,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

func (c *Controller) dispatchKeys() {
	if !c.overlay.IsOpen() {
		return
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	for _, k := range routedKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		c.overlay.HandleKey(k, shift)
		if !c.overlay.IsOpen() {
			return
		}
	}
}

// Draw draws all widgets, then the backdrop and overlay above everything.
func (c *Controller) Draw(screen *ebiten.Image) {
	for _, w := range c.widgets {
		w.Draw(screen)
	}

	if c.overlay.IsOpen() {
		fillRect(screen, Rectangle{
			Width:  float64(c.windowWidth),
			Height: float64(c.windowHeight),
		}, color.RGBA(c.theme.Backdrop))
		c.overlay.Draw(screen)
	}
}

// UpdateWindowSize records the window size used as the overlay viewport.
func (c *Controller) UpdateWindowSize(width, height int) {
	c.windowWidth = width
	c.windowHeight = height
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f", fps, tps))
}

// IsInteractingWithUI returns true if the UI currently captures input.
func (c *Controller) IsInteractingWithUI() bool {
	return c.overlay.IsOpen()
}
