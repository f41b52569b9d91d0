package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/widgets/caltime"
	"github.com/OpticalFlyer/widgets/geom"
	"github.com/OpticalFlyer/widgets/theme"
)

var _ Session = (*DateSession)(nil)

// Height of the weekday initials row between the header and the day grid.
const weekdayRowHeight = 16.0

// DateSession edits a calendar date on a fixed 6x7 month grid. The grid
// always shows 42 cells, padding with the previous and next month, so the
// layout never reflows between months. The pending date is invisible to the
// value's owner until Commit.
type DateSession struct {
	pending   caltime.Date
	committed *caltime.Date
	onCommit  func(caltime.Date)
	focus     caltime.DateField
	weekStart time.Weekday
	theme     *theme.Theme
}

// NewDateSession starts editing *value. The session works on a copy; *value
// is written only on commit, after which onCommit (if non-nil) fires once
// with the new date.
func NewDateSession(value *caltime.Date, weekStart time.Weekday, th *theme.Theme, onCommit func(caltime.Date)) *DateSession {
	return &DateSession{
		pending:   caltime.NewDate(value.Year, value.Month, value.Day),
		committed: value,
		onCommit:  onCommit,
		focus:     caltime.FieldDay,
		weekStart: weekStart,
		theme:     th,
	}
}

// Pending returns the date currently being edited.
func (s *DateSession) Pending() caltime.Date {
	return s.pending
}

// Focus returns the field keyboard adjustments apply to.
func (s *DateSession) Focus() caltime.DateField {
	return s.focus
}

func (s *DateSession) MinSize() (w, h float64) {
	th := s.theme
	w = th.Padding*2 + th.CellSize*caltime.GridCols
	h = th.Padding + th.HeaderHeight + weekdayRowHeight +
		th.CellSize*caltime.GridRows + th.FooterHeight
	return w, h
}

func (s *DateSession) headerRect(bounds Rectangle) Rectangle {
	th := s.theme
	return Rectangle{
		X:      bounds.X + th.Padding,
		Y:      bounds.Y + th.Padding,
		Width:  bounds.Width - th.Padding*2,
		Height: th.HeaderHeight,
	}
}

// navRects returns the previous-month and next-month arrow rectangles at
// the two ends of the header.
func (s *DateSession) navRects(bounds Rectangle) (prev, next Rectangle) {
	h := s.headerRect(bounds)
	prev = Rectangle{X: h.X, Y: h.Y, Width: h.Height, Height: h.Height}
	next = Rectangle{X: h.X + h.Width - h.Height, Y: h.Y, Width: h.Height, Height: h.Height}
	return prev, next
}

func (s *DateSession) gridRect(bounds Rectangle) Rectangle {
	th := s.theme
	return Rectangle{
		X:      bounds.X + th.Padding,
		Y:      bounds.Y + th.Padding + th.HeaderHeight + weekdayRowHeight,
		Width:  th.CellSize * caltime.GridCols,
		Height: th.CellSize * caltime.GridRows,
	}
}

func (s *DateSession) HandlePointer(ev PointerEvent, bounds Rectangle) Action {
	if a := footerAction(ev, bounds, s.theme); a != ActionNone {
		return a
	}

	if ev.Phase == PointerPress {
		prev, next := s.navRects(bounds)
		if prev.Contains(ev.X, ev.Y) {
			s.pending = s.pending.AddMonths(-1)
			return ActionChanged
		}
		if next.Contains(ev.X, ev.Y) {
			s.pending = s.pending.AddMonths(1)
			return ActionChanged
		}
	}

	if ev.Phase == PointerPress || ev.Phase == PointerDrag {
		g := s.gridRect(bounds)
		if idx, ok := geom.CellAt(ev.X, ev.Y, g.X, g.Y, g.Width, g.Height,
			caltime.GridRows, caltime.GridCols); ok {
			s.selectCell(idx)
			s.focus = caltime.FieldDay
			return ActionChanged
		}
	}

	return ActionNone
}

// selectCell picks the day under the given grid cell. Cells belonging to
// the previous or next month move the pending month along with the day.
func (s *DateSession) selectCell(index int) {
	grid := caltime.MonthGrid(s.pending.Year, s.pending.Month, s.weekStart)
	cell := grid[index]

	d := s.pending
	switch cell.Tag {
	case caltime.PrevMonth:
		d = d.AddMonths(-1)
	case caltime.NextMonth:
		d = d.AddMonths(1)
	}
	s.pending = caltime.NewDate(d.Year, d.Month, cell.Day)
}

func (s *DateSession) HandleKey(key ebiten.Key, shift bool) Action {
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

func (s *DateSession) Commit() {
	*s.committed = s.pending
	if s.onCommit != nil {
		s.onCommit(s.pending)
	}
}

func (s *DateSession) Cancel() {
	// The pending date is discarded with the session.
}

func (s *DateSession) Draw(dst *ebiten.Image, bounds Rectangle) {
	th := s.theme
	drawSurface(dst, bounds, th)

	s.drawHeader(dst, bounds)
	s.drawWeekdayRow(dst, bounds)
	s.drawGrid(dst, bounds)
	drawFooter(dst, bounds, th)
}

func (s *DateSession) drawHeader(dst *ebiten.Image, bounds Rectangle) {
	th := s.theme
	prev, next := s.navRects(bounds)

	strokeRect(dst, prev, color.RGBA(th.Border))
	drawTextCentered(dst, "<", prev, color.RGBA(th.Text))
	strokeRect(dst, next, color.RGBA(th.Border))
	drawTextCentered(dst, ">", next, color.RGBA(th.Text))

	// Date readout: the focused segment is accented and underlined.
	segments := []struct {
		text  string
		field caltime.DateField
	}{
		{fmt.Sprintf("%02d", s.pending.Day), caltime.FieldDay},
		{time.Month(s.pending.Month).String()[:3], caltime.FieldMonth},
		{fmt.Sprintf("%04d", s.pending.Year), caltime.FieldYear},
	}

	h := s.headerRect(bounds)
	total := 0.0
	spaceW, _ := textSize(" ")
	for _, seg := range segments {
		w, _ := textSize(seg.text)
		total += w
	}
	total += spaceW * float64(len(segments)-1)

	x := h.X + (h.Width-total)/2
	for _, seg := range segments {
		w, lineH := textSize(seg.text)
		y := h.Y + (h.Height-lineH)/2
		clr := color.RGBA(s.theme.Text)
		if seg.field == s.focus {
			clr = color.RGBA(s.theme.Accent)
			fillRect(dst, Rectangle{X: x, Y: y + lineH + 1, Width: w, Height: 2}, clr)
		}
		drawText(dst, seg.text, x, y, clr)
		x += w + spaceW
	}
}

var weekdayInitials = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func (s *DateSession) drawWeekdayRow(dst *ebiten.Image, bounds Rectangle) {
	g := s.gridRect(bounds)
	for i := 0; i < caltime.GridCols; i++ {
		name := weekdayInitials[(int(s.weekStart)+i)%7]
		cell := Rectangle{
			X:      g.X + g.Width*float64(i)/caltime.GridCols,
			Y:      g.Y - weekdayRowHeight,
			Width:  g.Width / caltime.GridCols,
			Height: weekdayRowHeight,
		}
		drawTextCentered(dst, name, cell, color.RGBA(s.theme.MutedText))
	}
}

func (s *DateSession) drawGrid(dst *ebiten.Image, bounds Rectangle) {
	th := s.theme
	g := s.gridRect(bounds)
	grid := caltime.MonthGrid(s.pending.Year, s.pending.Month, s.weekStart)

	for i, cell := range grid {
		x, y, w, h := geom.CellRect(i, g.X, g.Y, g.Width, g.Height,
			caltime.GridRows, caltime.GridCols)
		r := Rectangle{X: x, Y: y, Width: w, Height: h}

		selected := cell.Tag == caltime.CurMonth && cell.Day == s.pending.Day
		clr := color.RGBA(th.Text)
		if cell.Tag != caltime.CurMonth {
			clr = color.RGBA(th.MutedText)
		}
		if selected {
			fillRect(dst, r, color.RGBA(th.Accent))
			clr = color.RGBA(th.AccentText)
		}
		drawTextCentered(dst, fmt.Sprintf("%d", cell.Day), r, clr)
	}
}
