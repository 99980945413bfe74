package clock

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	at := time.Date(2026, time.October, 17, 21, 5, 9, 0, time.UTC)
	morning := time.Date(2026, time.October, 17, 9, 5, 9, 0, time.UTC)
	tests := []struct {
		c    Clock
		in   time.Time
		want string
	}{
		{Clock{}, at, "21:05:09"},
		{Clock{}, morning, "09:05:09"},
		{Clock{Hour12: true}, at, "9:05:09 PM"},
		{Clock{Hour12: true}, morning, "9:05:09 AM"},
	}
	for _, tt := range tests {
		if got := tt.c.FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v, hour12=%v) = %q, want %q", tt.in, tt.c.Hour12, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	at := time.Date(2026, time.October, 17, 21, 5, 9, 0, time.UTC)
	if got := (Clock{Locale: "en"}).FormatDate(at); got != "Sat, October 17, 2026" {
		t.Fatalf("en date = %q", got)
	}
	if got := (Clock{Locale: "zh"}).FormatDate(at); got != "2026年10月17日 周六" {
		t.Fatalf("zh date = %q", got)
	}
}

func TestToggle(t *testing.T) {
	var c Clock
	if c.ToggleLabel() != "12-hour" {
		t.Fatalf("label = %q", c.ToggleLabel())
	}
	c.Toggle()
	if !c.Hour12 || c.ToggleLabel() != "24-hour" {
		t.Fatalf("after toggle: %+v %q", c, c.ToggleLabel())
	}
}
