package caltime

// Meridiem is the half-day marker used on 12-hour clock faces.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// Time is a wall-clock time of day. The hour is stored in 24-hour form even
// when displayed on a 12-hour face; 0 is midnight (12 AM) and 12 is noon
// (12 PM).
type Time struct {
	Hour   int // 0..23
	Minute int // 0..59
	Second int // 0..59
}

// TimeField identifies one editable component of a Time, in focus-cycling
// order: hour, minute, second.
type TimeField int

const (
	FieldHour TimeField = iota
	FieldMinute
	FieldSecond
)

// NewTime builds a Time with every field wrapped into range.
func NewTime(hour, minute, second int) Time {
	return Time{
		Hour:   floorMod(hour, 24),
		Minute: floorMod(minute, 60),
		Second: floorMod(second, 60),
	}
}

// AddField applies delta to one field with wrap-around: the hour wraps
// 23 -> 0, minutes and seconds wrap at 60 without carrying into the next
// field. Because the hour is canonical 24-hour, a wrap on a 12-hour face
// crosses the 11 <-> 12 boundary and toggles the meridiem exactly once per
// 12-hour cycle.
func (t Time) AddField(f TimeField, delta int) Time {
	switch f {
	case FieldHour:
		t.Hour = floorMod(t.Hour+delta, 24)
	case FieldMinute:
		t.Minute = floorMod(t.Minute+delta, 60)
	case FieldSecond:
		t.Second = floorMod(t.Second+delta, 60)
	}
	return t
}

// Hour12 returns the hour as shown on a 12-hour face: 12, 1..11.
func (t Time) Hour12() int {
	h := t.Hour % 12
	if h == 0 {
		return 12
	}
	return h
}

// Meridiem returns which half of the day the time falls in. Midnight is AM,
// noon is PM.
func (t Time) Meridiem() Meridiem {
	if t.Hour >= 12 {
		return PM
	}
	return AM
}

// WithMeridiem moves the time into the given half-day, keeping the face
// position. Setting the current meridiem is a no-op.
func (t Time) WithMeridiem(m Meridiem) Time {
	switch {
	case m == PM && t.Hour < 12:
		t.Hour += 12
	case m == AM && t.Hour >= 12:
		t.Hour -= 12
	}
	return t
}

// WithFacePosition sets the hour from a 12-hour face position 0..11 (0 is
// 12 o'clock), preserving the current meridiem.
func (t Time) WithFacePosition(pos int) Time {
	h := floorMod(pos, 12)
	if t.Hour >= 12 {
		h += 12
	}
	t.Hour = h
	return t
}

// FacePosition returns the hour as a face position 0..11, where 0 is
// 12 o'clock.
func (t Time) FacePosition() int {
	return t.Hour % 12
}

// Next returns the field after f in focus order, cycling back to hour.
func (f TimeField) Next() TimeField {
	return TimeField((int(f) + 1) % 3)
}

// Prev returns the field before f in focus order.
func (f TimeField) Prev() TimeField {
	return TimeField((int(f) + 2) % 3)
}
