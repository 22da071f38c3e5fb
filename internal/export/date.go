package export

import (
	"fmt"
	"time"
)

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// FormatEventDate renders the event date for display: "일시 미정" when the
// invitation has none, the raw value when it cannot be parsed, otherwise the
// Korean long form.
func FormatEventDate(value string) string {
	if value == "" {
		return "일시 미정"
	}
	t, err := parseEventDate(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%d년 %d월 %d일 (%s) %02d:%02d",
		t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()], t.Hour(), t.Minute())
}

// FormatTimestamp renders a stored RSVP timestamp for tables and CSV.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// DdayLabel returns the countdown badge for the event date relative to
// today, or an empty string when the date is absent or unreadable.
func DdayLabel(value string, today time.Time) string {
	if value == "" {
		return ""
	}
	target, err := parseEventDate(value)
	if err != nil {
		return ""
	}

	y1, m1, d1 := today.Local().Date()
	y2, m2, d2 := target.Date()
	dayToday := time.Date(y1, m1, d1, 0, 0, 0, 0, time.Local)
	dayTarget := time.Date(y2, m2, d2, 0, 0, 0, 0, time.Local)
	diff := int(dayTarget.Sub(dayToday).Hours() / 24)

	switch {
	case diff == 0:
		return "🎉 오늘이 행사일입니다"
	case diff > 0:
		return fmt.Sprintf("D-%d", diff)
	default:
		return fmt.Sprintf("D+%d", -diff)
	}
}
