package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/widgets/theme"
)

var _ Container = (*Toolbar)(nil)

// Toolbar is a fixed surface strip holding trigger widgets. Children keep
// coordinates relative to the toolbar; AddNext places them left to right.
type Toolbar struct {
	bounds   Rectangle
	theme    *theme.Theme
	children []Component
	parent   Container

	nextX float64
}

func NewToolbar(x, y, width, height float64, th *theme.Theme) *Toolbar {
	return &Toolbar{
		bounds: Rectangle{X: x, Y: y, Width: width, Height: height},
		theme:  th,
		nextX:  th.Padding,
	}
}

// SetWidth stretches the strip to the given width, keeping its children in
// place. Called by the host when the window resizes.
func (t *Toolbar) SetWidth(width float64) {
	t.bounds.Width = width
}

func (t *Toolbar) AddChild(child Component) {
	child.SetParent(t)
	t.children = append(t.children, child)
}

// AddNext adds a button-sized child at the next free slot, left to right.
func (t *Toolbar) AddNext(width float64, build func(x, y, w, h float64) Component) Component {
	th := t.theme
	h := t.bounds.Height - th.Padding*2
	c := build(t.nextX, th.Padding, width, h)
	t.nextX += width + th.Padding
	t.AddChild(c)
	return c
}

func (t *Toolbar) RemoveChild(child Component) {
	for i, c := range t.children {
		if c == child {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return
		}
	}
}

func (t *Toolbar) Children() []Component {
	return t.children
}

func (t *Toolbar) SetParent(parent Container) {
	t.parent = parent
}

func (t *Toolbar) GetParent() Container {
	return t.parent
}

func (t *Toolbar) Bounds() Rectangle {
	return t.bounds
}

func (t *Toolbar) Update() error {
	for _, c := range t.children {
		if err := c.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (t *Toolbar) Draw(screen *ebiten.Image) {
	drawSurface(screen, t.bounds, t.theme)
	for _, c := range t.children {
		c.Draw(screen)
	}
}

// HandlePointer forwards the event to the children and otherwise swallows
// anything inside the toolbar surface so clicks never pass through it.
func (t *Toolbar) HandlePointer(ev PointerEvent) bool {
	handled := false
	for _, c := range t.children {
		if c.HandlePointer(ev) {
			handled = true
		}
	}
	if handled {
		return true
	}
	return t.bounds.Contains(ev.X, ev.Y)
}
