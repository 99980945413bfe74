package calendar

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		in   time.Time
		want int
	}{
		{day(2024, time.February, 10), 29},
		{day(2023, time.February, 1), 28},
		{day(2026, time.January, 31), 31},
		{day(2026, time.April, 30), 30},
		{day(2026, time.December, 5), 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.in); got != tt.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", FormatDate(tt.in), got, tt.want)
		}
	}
}

func TestFirstWeekdayAndGrid(t *testing.T) {
	// 1 October 2026 is a Thursday.
	oct := day(2026, time.October, 17)
	if got := FirstWeekday(oct); got != 4 {
		t.Fatalf("FirstWeekday = %d, want 4", got)
	}
	grid := Grid(oct)
	if len(grid) != 5 {
		t.Fatalf("weeks = %d, want 5", len(grid))
	}
	for col := 0; col < 4; col++ {
		if grid[0][col] != 0 {
			t.Fatalf("padding cell %d = %d", col, grid[0][col])
		}
	}
	if grid[0][4] != 1 {
		t.Fatalf("first day cell = %d", grid[0][4])
	}
	if grid[4][6] != 31 {
		t.Fatalf("last cell = %d, want 31", grid[4][6])
	}
}

func TestGridFullWeek(t *testing.T) {
	// February 2026 starts on a Sunday and has exactly four weeks.
	grid := Grid(day(2026, time.February, 1))
	if len(grid) != 4 || grid[0][0] != 1 || grid[3][6] != 28 {
		t.Fatalf("unexpected grid %v", grid)
	}
}

func TestAddMonthsDoesNotSkip(t *testing.T) {
	got := AddMonths(day(2026, time.January, 31), 1)
	if got.Month() != time.February || got.Day() != 1 {
		t.Fatalf("AddMonths = %s", FormatDate(got))
	}
	got = AddMonths(day(2026, time.March, 31), -1)
	if got.Month() != time.February {
		t.Fatalf("AddMonths back = %s", FormatDate(got))
	}
	got = AddMonths(day(2026, time.December, 15), 1)
	if got.Year() != 2027 || got.Month() != time.January {
		t.Fatalf("AddMonths over year = %s", FormatDate(got))
	}
}

func TestCursor(t *testing.T) {
	now := time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)
	c := NewCursor(now)
	if !SameDay(c.Selected, now) || c.Month.Day() != 1 {
		t.Fatalf("NewCursor = %+v", c)
	}
	c.NextMonth()
	c.NextMonth()
	c.NextMonth()
	if c.Month.Year() != 2027 || c.Month.Month() != time.January {
		t.Fatalf("month after 3x next = %s", FormatDate(c.Month))
	}
	c.Select(40)
	if !SameDay(c.Selected, now) {
		t.Fatal("out of range Select should be ignored")
	}
	c.Select(9)
	if FormatDate(c.Selected) != "2027-01-09" {
		t.Fatalf("Selected = %s", FormatDate(c.Selected))
	}
	c.MoveSelection(-9)
	if FormatDate(c.Selected) != "2026-12-31" || c.Month.Month() != time.December {
		t.Fatalf("MoveSelection = %s / %s", FormatDate(c.Selected), FormatDate(c.Month))
	}
	c.Today(now)
	if !SameDay(c.Selected, now) || c.Month.Month() != time.October {
		t.Fatalf("Today = %+v", c)
	}
}

func TestTitles(t *testing.T) {
	c := NewCursor(day(2026, time.October, 1))
	if got := c.Title("en"); got != "October 2026" {
		t.Fatalf("Title(en) = %q", got)
	}
	if got := c.Title("zh"); got != "十月 2026" {
		t.Fatalf("Title(zh) = %q", got)
	}
	if Weekdays("zh")[0] != "日" || Weekdays("en")[6] != "Sa" {
		t.Fatal("unexpected weekday headers")
	}
}

func TestAgenda(t *testing.T) {
	a := NewAgenda(nil)
	if _, err := a.Add("17/10/2026", "x", ""); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("Add bad date err = %v", err)
	}
	if _, err := a.Add("2026-10-17", " ", ""); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("Add blank title err = %v", err)
	}
	first, err := a.Add("2026-10-17", "Dentist", "10am")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	a.Add("2026-10-17", "Dinner", "")
	a.Add("2026-10-18", "Hike", "")

	target := day(2026, time.October, 17)
	got := a.ForDate(target)
	if len(got) != 2 || got[0].Title != "Dentist" || got[1].Title != "Dinner" {
		t.Fatalf("ForDate = %+v", got)
	}
	if !a.HasEvents(target) || a.HasEvents(day(2026, time.October, 19)) {
		t.Fatal("HasEvents mismatch")
	}
	if err := a.Delete(first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := a.Delete(first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete err = %v", err)
	}
	if len(a.ForDate(target)) != 1 {
		t.Fatal("event not deleted")
	}
}
