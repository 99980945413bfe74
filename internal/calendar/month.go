// Package calendar is the calendar widget: month grid arithmetic, a selected
// day, and a per-day event agenda.
package calendar

import "time"

const DateLayout = "2006-01-02"

// Fixed locale strings for headers.
var (
	WeekdaysEN = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	WeekdaysZH = [7]string{"日", "一", "二", "三", "四", "五", "六"}
	MonthsZH   = [12]string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"}
)

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// MonthStart truncates t to midnight on the first of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func DaysInMonth(t time.Time) int {
	return MonthStart(t).AddDate(0, 1, -1).Day()
}

// FirstWeekday is the weekday of the first of t's month, 0 = Sunday.
func FirstWeekday(t time.Time) int {
	return int(MonthStart(t).Weekday())
}

// AddMonths moves from the first of t's month so short months are never
// skipped.
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Grid lays out t's month as Sunday-first weeks. Padding cells are 0.
func Grid(t time.Time) [][7]int {
	first := FirstWeekday(t)
	days := DaysInMonth(t)
	var weeks [][7]int
	var week [7]int
	col := first
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// Cursor is the calendar view state: the month on screen and the selected day.
type Cursor struct {
	Month    time.Time
	Selected time.Time
}

func NewCursor(now time.Time) Cursor {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Cursor{Month: MonthStart(day), Selected: day}
}

func (c *Cursor) NextMonth() { c.Month = AddMonths(c.Month, 1) }

func (c *Cursor) PrevMonth() { c.Month = AddMonths(c.Month, -1) }

// Today jumps both the month and the selection to now.
func (c *Cursor) Today(now time.Time) { *c = NewCursor(now) }

// Select picks a day of the month on screen. Out-of-range days are ignored.
func (c *Cursor) Select(day int) {
	if day < 1 || day > DaysInMonth(c.Month) {
		return
	}
	c.Selected = time.Date(c.Month.Year(), c.Month.Month(), day, 0, 0, 0, 0, c.Month.Location())
}

// MoveSelection shifts the selection by days, following it into the
// neighbouring month when it crosses a boundary.
func (c *Cursor) MoveSelection(days int) {
	c.Selected = c.Selected.AddDate(0, 0, days)
	c.Month = MonthStart(c.Selected)
}

// Title renders the month header, e.g. "October 2026" or "十月 2026".
func (c Cursor) Title(locale string) string {
	if locale == "zh" {
		return MonthsZH[c.Month.Month()-1] + " " + c.Month.Format("2006")
	}
	return c.Month.Format("January 2006")
}

// Weekdays returns the header row for locale.
func Weekdays(locale string) [7]string {
	if locale == "zh" {
		return WeekdaysZH
	}
	return WeekdaysEN
}
