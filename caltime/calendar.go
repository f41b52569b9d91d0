// Package caltime provides the date and time arithmetic behind the picker
// widgets: month grid generation, leap-year handling, day clamping and
// wrap-around field adjustment. All functions normalize their inputs and
// never fail; invalid values are corrected by clamping.
package caltime

import "time"

// Tag classifies a month-grid cell by which month its day belongs to.
type Tag int

const (
	PrevMonth Tag = iota
	CurMonth
	NextMonth
)

// GridCell is one cell of the fixed 6x7 calendar grid.
type GridCell struct {
	Day int
	Tag Tag
}

// GridRows, GridCols and GridCells fix the month grid at 6 weeks of 7 days.
// The grid never changes size between months, so the calendar layout never
// reflows.
const (
	GridRows  = 6
	GridCols  = 7
	GridCells = GridRows * GridCols
)

// Date is a Gregorian calendar date. Construct through NewDate so the fields
// are always in range.
type Date struct {
	Year  int
	Month int // 1..12
	Day   int // 1..DaysInMonth(Year, Month)
}

// DateField identifies one editable component of a Date, in focus-cycling
// order: day, month, year.
type DateField int

const (
	FieldDay DateField = iota
	FieldMonth
	FieldYear
)

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year under the proleptic
// Gregorian rule: divisible by 4, not by 100 unless by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month. Out-of-range
// months clamp to the nearest valid month.
func DaysInMonth(year, month int) int {
	if month < 1 {
		month = 1
	} else if month > 12 {
		month = 12
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// ClampDay returns the nearest valid day of the given month: days past the
// end clamp to the last day, days before the 1st clamp to 1. Idempotent.
func ClampDay(year, month, day int) int {
	if day < 1 {
		return 1
	}
	if n := DaysInMonth(year, month); day > n {
		return n
	}
	return day
}

// NewDate builds a Date with month and day normalized into range.
func NewDate(year, month, day int) Date {
	if month < 1 {
		month = 1
	} else if month > 12 {
		month = 12
	}
	return Date{Year: year, Month: month, Day: ClampDay(year, month, day)}
}

// AddField applies delta to one field of the date. The day wraps within the
// current month and the month wraps within the year; the year has no wrap.
// Whenever the month or year change leaves the day out of range it is
// clamped (Jan 31 -> Feb 28/29).
func (d Date) AddField(f DateField, delta int) Date {
	switch f {
	case FieldDay:
		n := DaysInMonth(d.Year, d.Month)
		d.Day = floorMod(d.Day-1+delta, n) + 1
	case FieldMonth:
		d.Month = floorMod(d.Month-1+delta, 12) + 1
		d.Day = ClampDay(d.Year, d.Month, d.Day)
	case FieldYear:
		d.Year += delta
		d.Day = ClampDay(d.Year, d.Month, d.Day)
	}
	return d
}

// AddMonths moves the date by whole months, carrying into the year. This is
// the navigation-arrow behavior, distinct from AddField's in-range wrap.
func (d Date) AddMonths(delta int) Date {
	m := d.Year*12 + (d.Month - 1) + delta
	month := floorMod(m, 12)
	year := (m - month) / 12
	return Date{Year: year, Month: month + 1, Day: ClampDay(year, month+1, d.Day)}
}

// Next returns the field after f in focus order, cycling back to day.
func (f DateField) Next() DateField {
	return DateField((int(f) + 1) % 3)
}

// Prev returns the field before f in focus order.
func (f DateField) Prev() DateField {
	return DateField((int(f) + 2) % 3)
}

// MonthGrid lays out year/month as a fixed 6x7 grid of day cells, reading
// order, starting the week on weekStart. Leading cells are filled from the
// previous month and trailing cells from the next month so the grid is
// always exactly GridCells long.
func MonthGrid(year, month int, weekStart time.Weekday) [GridCells]GridCell {
	var grid [GridCells]GridCell

	if month < 1 {
		month = 1
	} else if month > 12 {
		month = 12
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7

	prevYear, prevMonth := year, month-1
	if prevMonth < 1 {
		prevYear, prevMonth = year-1, 12
	}
	prevDays := DaysInMonth(prevYear, prevMonth)
	curDays := DaysInMonth(year, month)

	for i := 0; i < GridCells; i++ {
		switch {
		case i < lead:
			grid[i] = GridCell{Day: prevDays - lead + 1 + i, Tag: PrevMonth}
		case i < lead+curDays:
			grid[i] = GridCell{Day: i - lead + 1, Tag: CurMonth}
		default:
			grid[i] = GridCell{Day: i - lead - curDays + 1, Tag: NextMonth}
		}
	}

	return grid
}

// floorMod returns a mod n with the sign of n, so negative deltas wrap
// backwards correctly.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
