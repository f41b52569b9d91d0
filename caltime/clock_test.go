package caltime

import "testing"

func TestTimeAddField(t *testing.T) {
	tests := []struct {
		name  string
		start Time
		field TimeField
		delta int
		want  Time
	}{
		{
			name:  "Hour wraps 23 to 0",
			start: Time{23, 15, 0},
			field: FieldHour, delta: 1,
			want: Time{0, 15, 0},
		},
		{
			name:  "Hour wraps 0 to 23",
			start: Time{0, 0, 0},
			field: FieldHour, delta: -1,
			want: Time{23, 0, 0},
		},
		{
			name:  "Minute wraps without hour carry",
			start: Time{10, 59, 30},
			field: FieldMinute, delta: 1,
			want: Time{10, 0, 30},
		},
		{
			name:  "Second wraps backward",
			start: Time{10, 30, 0},
			field: FieldSecond, delta: -1,
			want: Time{10, 30, 59},
		},
		{
			name:  "Large negative delta",
			start: Time{5, 10, 10},
			field: FieldHour, delta: -49,
			want: Time{4, 10, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.AddField(tt.field, tt.delta); got != tt.want {
				t.Errorf("got %+v; want %+v", got, tt.want)
			}
		})
	}
}

// Crossing the 11 <-> 12 boundary must toggle the meridiem exactly once per
// 12-hour cycle: midnight is 12 AM and noon is 12 PM.
func TestMeridiemBoundaries(t *testing.T) {
	tests := []struct {
		tm       Time
		hour12   int
		meridiem Meridiem
	}{
		{Time{0, 0, 0}, 12, AM},  // midnight
		{Time{1, 0, 0}, 1, AM},
		{Time{11, 59, 0}, 11, AM},
		{Time{12, 0, 0}, 12, PM}, // noon
		{Time{13, 0, 0}, 1, PM},
		{Time{23, 0, 0}, 11, PM},
	}

	for _, tt := range tests {
		if got := tt.tm.Hour12(); got != tt.hour12 {
			t.Errorf("%+v.Hour12() = %d; want %d", tt.tm, got, tt.hour12)
		}
		if got := tt.tm.Meridiem(); got != tt.meridiem {
			t.Errorf("%+v.Meridiem() = %v; want %v", tt.tm, got, tt.meridiem)
		}
	}

	// Stepping the hour forward through a full day toggles the meridiem
	// exactly twice.
	tm := Time{0, 0, 0}
	toggles := 0
	prev := tm.Meridiem()
	for i := 0; i < 24; i++ {
		tm = tm.AddField(FieldHour, 1)
		if m := tm.Meridiem(); m != prev {
			toggles++
			prev = m
		}
	}
	if toggles != 2 {
		t.Errorf("meridiem toggled %d times over 24 hours; want 2", toggles)
	}
}

func TestWithMeridiem(t *testing.T) {
	if got := (Time{9, 30, 0}).WithMeridiem(PM); got != (Time{21, 30, 0}) {
		t.Errorf("9:30 AM -> PM = %+v", got)
	}
	if got := (Time{21, 30, 0}).WithMeridiem(AM); got != (Time{9, 30, 0}) {
		t.Errorf("9:30 PM -> AM = %+v", got)
	}
	if got := (Time{12, 0, 0}).WithMeridiem(PM); got != (Time{12, 0, 0}) {
		t.Errorf("noon -> PM should be a no-op, got %+v", got)
	}
	if got := (Time{0, 5, 0}).WithMeridiem(AM); got != (Time{0, 5, 0}) {
		t.Errorf("midnight -> AM should be a no-op, got %+v", got)
	}
}

func TestFacePosition(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		tm := Time{hour, 0, 0}
		got := tm.WithFacePosition(tm.FacePosition())
		if got != tm {
			t.Errorf("hour %d: face position round trip gave %+v", hour, got)
		}
	}

	// Setting a face position keeps the half-day.
	if got := (Time{15, 0, 0}).WithFacePosition(2); got.Hour != 14 {
		t.Errorf("PM face position 2 gave hour %d; want 14", got.Hour)
	}
	if got := (Time{3, 0, 0}).WithFacePosition(0); got.Hour != 0 {
		t.Errorf("AM face position 0 gave hour %d; want 0", got.Hour)
	}
}

func TestNewTimeNormalizes(t *testing.T) {
	if got := NewTime(25, -1, 61); got != (Time{1, 59, 1}) {
		t.Errorf("NewTime(25, -1, 61) = %+v", got)
	}
}
