// Package clock formats the digital clock widget.
package clock

import (
	"fmt"
	"time"
)

var weekdaysZH = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// Clock holds the display preferences. Locale is "en" or "zh".
type Clock struct {
	Hour12 bool
	Locale string
}

func (c Clock) FormatTime(t time.Time) string {
	if c.Hour12 {
		return t.Format("3:04:05 PM")
	}
	return t.Format("15:04:05")
}

func (c Clock) FormatDate(t time.Time) string {
	if c.Locale == "zh" {
		return fmt.Sprintf("%d年%d月%d日 %s", t.Year(), int(t.Month()), t.Day(), weekdaysZH[t.Weekday()])
	}
	return t.Format("Mon, January 2, 2006")
}

func (c *Clock) Toggle() { c.Hour12 = !c.Hour12 }

// ToggleLabel names the format a toggle switches to.
func (c Clock) ToggleLabel() string {
	if c.Hour12 {
		return "24-hour"
	}
	return "12-hour"
}
