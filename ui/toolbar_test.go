package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpticalFlyer/widgets/theme"
)

func TestToolbarSetWidthTracksResize(t *testing.T) {
	th := theme.Default()
	tb := NewToolbar(0, 0, 400, 44, th)

	// Presses past the initial strip fall through until the resize.
	assert.False(t, tb.HandlePointer(press(600, 20)))

	tb.SetWidth(800)

	assert.Equal(t, 800.0, tb.Bounds().Width)
	assert.True(t, tb.HandlePointer(press(600, 20)), "widened strip swallows the press")
	assert.False(t, tb.HandlePointer(press(600, 60)), "below the strip stays uncovered")
}

func TestToolbarAddNextPlacesLeftToRight(t *testing.T) {
	th := theme.Default()
	tb := NewToolbar(0, 0, 400, 44, th)

	first := tb.AddNext(110, func(x, y, w, h float64) Component {
		return NewButton(x, y, w, h, "a", th, nil)
	})
	second := tb.AddNext(110, func(x, y, w, h float64) Component {
		return NewButton(x, y, w, h, "b", th, nil)
	})

	a := first.Bounds()
	b := second.Bounds()
	assert.Equal(t, th.Padding, a.X)
	assert.Equal(t, a.X+a.Width+th.Padding, b.X)
	assert.Equal(t, 44-th.Padding*2, a.Height)
	assert.Len(t, tb.Children(), 2)
}
