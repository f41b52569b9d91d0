package ui

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/widgets/caltime"
	"github.com/OpticalFlyer/widgets/geom"
	"github.com/OpticalFlyer/widgets/theme"
)

func dateBounds(s *DateSession) Rectangle {
	w, h := s.MinSize()
	return Rectangle{Width: w, Height: h}
}

// cellCenter returns the screen center of a calendar grid cell.
func cellCenter(s *DateSession, bounds Rectangle, index int) (float64, float64) {
	g := s.gridRect(bounds)
	x, y, w, h := geom.CellRect(index, g.X, g.Y, g.Width, g.Height,
		caltime.GridRows, caltime.GridCols)
	return x + w/2, y + h/2
}

func TestDateSessionGridClickSelectsDay(t *testing.T) {
	value := caltime.NewDate(2026, 3, 10)
	s := NewDateSession(&value, time.Sunday, theme.Default(), nil)
	bounds := dateBounds(s)

	// March 2026 starts on a Sunday, so with a Sunday week start cell 0 is
	// March 1 and cell 19 is March 20.
	x, y := cellCenter(s, bounds, 19)
	act := s.HandlePointer(press(x, y), bounds)

	assert.Equal(t, ActionChanged, act)
	assert.Equal(t, caltime.NewDate(2026, 3, 20), s.Pending())
	assert.Equal(t, caltime.FieldDay, s.Focus())
	assert.Equal(t, caltime.NewDate(2026, 3, 10), value, "owner value must not change before commit")
}

func TestDateSessionNextMonthCellMovesMonth(t *testing.T) {
	value := caltime.NewDate(2026, 3, 10)
	s := NewDateSession(&value, time.Sunday, theme.Default(), nil)
	bounds := dateBounds(s)

	// Cells 31..41 of the March 2026 grid belong to April.
	x, y := cellCenter(s, bounds, 31)
	act := s.HandlePointer(press(x, y), bounds)

	assert.Equal(t, ActionChanged, act)
	assert.Equal(t, caltime.NewDate(2026, 4, 1), s.Pending())
}

func TestDateSessionNavArrowsClampDay(t *testing.T) {
	value := caltime.NewDate(2026, 3, 31)
	s := NewDateSession(&value, time.Sunday, theme.Default(), nil)
	bounds := dateBounds(s)
	prev, next := s.navRects(bounds)

	act := s.HandlePointer(press(prev.X+prev.Width/2, prev.Y+prev.Height/2), bounds)
	assert.Equal(t, ActionChanged, act)
	assert.Equal(t, caltime.NewDate(2026, 2, 28), s.Pending())

	act = s.HandlePointer(press(next.X+next.Width/2, next.Y+next.Height/2), bounds)
	assert.Equal(t, ActionChanged, act)
	assert.Equal(t, caltime.NewDate(2026, 3, 28), s.Pending())
}

func TestDateSessionKeyboard(t *testing.T) {
	value := caltime.NewDate(2026, 3, 31)
	s := NewDateSession(&value, time.Sunday, theme.Default(), nil)

	require.Equal(t, caltime.FieldDay, s.Focus())

	// Day wraps within the month instead of carrying.
	s.HandleKey(ebiten.KeyUp, false)
	assert.Equal(t, caltime.NewDate(2026, 3, 1), s.Pending())
	s.HandleKey(ebiten.KeyDown, false)
	assert.Equal(t, caltime.NewDate(2026, 3, 31), s.Pending())

	// Tab moves focus to the month; incrementing it clamps the day.
	s.HandleKey(ebiten.KeyTab, false)
	assert.Equal(t, caltime.FieldMonth, s.Focus())
	s.HandleKey(ebiten.KeyUp, false)
	assert.Equal(t, caltime.NewDate(2026, 4, 30), s.Pending())

	// Shift-tab cycles back.
	s.HandleKey(ebiten.KeyTab, true)
	assert.Equal(t, caltime.FieldDay, s.Focus())
}

func TestDateSessionFooter(t *testing.T) {
	th := theme.Default()
	value := caltime.NewDate(2026, 3, 10)
	s := NewDateSession(&value, time.Sunday, th, nil)
	bounds := dateBounds(s)
	cancel, ok := footerRects(bounds, th)

	act := s.HandlePointer(press(ok.X+ok.Width/2, ok.Y+ok.Height/2), bounds)
	assert.Equal(t, ActionCommit, act)

	act = s.HandlePointer(press(cancel.X+cancel.Width/2, cancel.Y+cancel.Height/2), bounds)
	assert.Equal(t, ActionCancel, act)
}

func TestDateSessionCommitWritesOwnerOnce(t *testing.T) {
	value := caltime.NewDate(2026, 3, 10)
	var got []caltime.Date
	s := NewDateSession(&value, time.Sunday, theme.Default(), func(d caltime.Date) {
		got = append(got, d)
	})
	bounds := dateBounds(s)

	x, y := cellCenter(s, bounds, 19)
	s.HandlePointer(press(x, y), bounds)
	s.Commit()

	assert.Equal(t, caltime.NewDate(2026, 3, 20), value)
	require.Len(t, got, 1)
	assert.Equal(t, caltime.NewDate(2026, 3, 20), got[0])
}

func TestDateSessionCancelLeavesOwner(t *testing.T) {
	value := caltime.NewDate(2026, 3, 10)
	s := NewDateSession(&value, time.Sunday, theme.Default(), nil)
	bounds := dateBounds(s)

	x, y := cellCenter(s, bounds, 0)
	s.HandlePointer(press(x, y), bounds)
	s.Cancel()

	assert.Equal(t, caltime.NewDate(2026, 3, 10), value)
}
