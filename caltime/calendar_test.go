package caltime

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month int
		want        int
	}{
		{2024, 2, 29}, // divisible by 4
		{2023, 2, 28},
		{2000, 2, 29}, // divisible by 400
		{1900, 2, 28}, // divisible by 100 but not 400
		{2025, 1, 31},
		{2025, 4, 30},
		{2025, 12, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d; want %d",
				tt.year, tt.month, got, tt.want)
		}
	}
}

func TestClampDayIdempotent(t *testing.T) {
	for year := 1999; year <= 2001; year++ {
		for month := 1; month <= 12; month++ {
			for day := -3; day <= 35; day++ {
				once := ClampDay(year, month, day)
				if once < 1 || once > DaysInMonth(year, month) {
					t.Fatalf("ClampDay(%d, %d, %d) = %d out of range",
						year, month, day, once)
				}
				if twice := ClampDay(year, month, once); twice != once {
					t.Fatalf("ClampDay(%d, %d, %d): not idempotent (%d then %d)",
						year, month, day, once, twice)
				}
			}
		}
	}
}

// The grid must always hold exactly 42 cells with contiguous day numbers:
// a run from the previous month, the full current month, then a run into the
// next month, with no gaps or duplicates.
func TestMonthGridShape(t *testing.T) {
	for year := 1900; year <= 2100; year += 7 {
		for month := 1; month <= 12; month++ {
			grid := MonthGrid(year, month, time.Sunday)

			if len(grid) != GridCells {
				t.Fatalf("%d-%02d: %d cells", year, month, len(grid))
			}

			i := 0
			for ; i < GridCells && grid[i].Tag == PrevMonth; i++ {
			}
			lead := i
			for ; i < GridCells && grid[i].Tag == CurMonth; i++ {
			}
			cur := i - lead
			for ; i < GridCells && grid[i].Tag == NextMonth; i++ {
			}
			if i != GridCells {
				t.Fatalf("%d-%02d: segments out of order", year, month)
			}

			if cur != DaysInMonth(year, month) {
				t.Fatalf("%d-%02d: %d current-month cells; want %d",
					year, month, cur, DaysInMonth(year, month))
			}

			// Leading cells end on the previous month's last day.
			prevYear, prevMonth := year, month-1
			if prevMonth < 1 {
				prevYear, prevMonth = year-1, 12
			}
			for j := 0; j < lead; j++ {
				want := DaysInMonth(prevYear, prevMonth) - lead + 1 + j
				if grid[j].Day != want {
					t.Fatalf("%d-%02d cell %d: day %d; want %d",
						year, month, j, grid[j].Day, want)
				}
			}

			// Current month counts 1..n, trailing cells 1..k.
			for j := 0; j < cur; j++ {
				if grid[lead+j].Day != j+1 {
					t.Fatalf("%d-%02d: current month not contiguous at %d",
						year, month, j)
				}
			}
			for j := lead + cur; j < GridCells; j++ {
				if grid[j].Day != j-lead-cur+1 {
					t.Fatalf("%d-%02d: next month not contiguous at %d",
						year, month, j)
				}
			}
		}
	}
}

func TestMonthGridWeekStart(t *testing.T) {
	// March 2026 starts on a Sunday.
	sun := MonthGrid(2026, 3, time.Sunday)
	if sun[0].Tag != CurMonth || sun[0].Day != 1 {
		t.Errorf("Sunday start: first cell = %+v; want day 1 of current month", sun[0])
	}

	// With a Monday week start the same month needs six leading cells.
	mon := MonthGrid(2026, 3, time.Monday)
	if mon[0].Tag != PrevMonth {
		t.Errorf("Monday start: first cell = %+v; want previous month", mon[0])
	}
	if mon[6].Tag != CurMonth || mon[6].Day != 1 {
		t.Errorf("Monday start: cell 6 = %+v; want day 1 of current month", mon[6])
	}
}

func TestDateAddField(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		field DateField
		delta int
		want  Date
	}{
		{
			name:  "Day wraps forward within month",
			start: Date{2025, 1, 31},
			field: FieldDay, delta: 1,
			want: Date{2025, 1, 1},
		},
		{
			name:  "Day wraps backward within month",
			start: Date{2025, 6, 1},
			field: FieldDay, delta: -1,
			want: Date{2025, 6, 30},
		},
		{
			name:  "Month change clamps day",
			start: Date{2025, 1, 31},
			field: FieldMonth, delta: 1,
			want: Date{2025, 2, 28},
		},
		{
			name:  "Month change clamps day in leap year",
			start: Date{2024, 1, 31},
			field: FieldMonth, delta: 1,
			want: Date{2024, 2, 29},
		},
		{
			name:  "Month wraps without year carry",
			start: Date{2025, 12, 10},
			field: FieldMonth, delta: 1,
			want: Date{2025, 1, 10},
		},
		{
			name:  "Year change clamps leap day",
			start: Date{2024, 2, 29},
			field: FieldYear, delta: 1,
			want: Date{2025, 2, 28},
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

func TestDateAddMonths(t *testing.T) {
	tests := []struct {
		start Date
		delta int
		want  Date
	}{
		{Date{2025, 12, 15}, 1, Date{2026, 1, 15}},
		{Date{2025, 1, 15}, -1, Date{2024, 12, 15}},
		{Date{2025, 1, 31}, 1, Date{2025, 2, 28}},
		{Date{2025, 6, 10}, -18, Date{2023, 12, 10}},
		{Date{2025, 6, 10}, 0, Date{2025, 6, 10}},
	}

	for _, tt := range tests {
		if got := tt.start.AddMonths(tt.delta); got != tt.want {
			t.Errorf("%+v.AddMonths(%d) = %+v; want %+v",
				tt.start, tt.delta, got, tt.want)
		}
	}
}

func TestNewDateNormalizes(t *testing.T) {
	if got := NewDate(2025, 2, 31); got != (Date{2025, 2, 28}) {
		t.Errorf("NewDate(2025, 2, 31) = %+v", got)
	}
	if got := NewDate(2025, 14, 10); got != (Date{2025, 12, 10}) {
		t.Errorf("NewDate(2025, 14, 10) = %+v", got)
	}
	if got := NewDate(2025, 0, 0); got != (Date{2025, 1, 1}) {
		t.Errorf("NewDate(2025, 0, 0) = %+v", got)
	}
}

func TestDateFieldCycle(t *testing.T) {
	if FieldDay.Next() != FieldMonth || FieldMonth.Next() != FieldYear || FieldYear.Next() != FieldDay {
		t.Error("Next does not cycle day -> month -> year -> day")
	}
	if FieldDay.Prev() != FieldYear || FieldYear.Prev() != FieldMonth || FieldMonth.Prev() != FieldDay {
		t.Error("Prev does not cycle day -> year -> month -> day")
	}
}
