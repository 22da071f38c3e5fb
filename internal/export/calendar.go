// Package export produces the derived artifacts of an invitation: calendar
// links and files, CSV for spreadsheets, and the Korean display forms of the
// event date.
package export

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"opus-invite/internal/models"
)

// ErrNoEventDate means the invitation has no usable date, so no calendar
// artifact can be built.
var ErrNoEventDate = errors.New("invitation has no usable event date")

// The builder form writes dates as datetime-local values.
var eventDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

func parseEventDate(value string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrNoEventDate
}

// EventWindow computes the calendar window for the invitation. A missing
// duration falls back to 120 minutes and anything shorter than 30 is
// clamped up, so the web link and the ICS file always agree.
func EventWindow(cfg models.InvitationConfig) (start, end time.Time, err error) {
	if cfg.EventDate == "" {
		return time.Time{}, time.Time{}, ErrNoEventDate
	}
	start, err = parseEventDate(cfg.EventDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	duration := cfg.DurationMin
	if duration == 0 {
		duration = models.DefaultDurationMin
	}
	if duration < models.MinDurationMin {
		duration = models.MinDurationMin
	}
	return start, start.Add(time.Duration(duration) * time.Minute), nil
}

func utcCompact(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// NoticeItems collects the optional notice lines in display order.
func NoticeItems(cfg models.InvitationConfig) []string {
	var items []string
	if cfg.ParkingInfo != "" {
		items = append(items, "주차/교통: "+cfg.ParkingInfo)
	}
	if cfg.DressCode != "" {
		items = append(items, "드레스코드: "+cfg.DressCode)
	}
	if cfg.BringItem != "" {
		items = append(items, "준비물: "+cfg.BringItem)
	}
	if cfg.ExtraNotice != "" {
		items = append(items, "추가 안내: "+cfg.ExtraNotice)
	}
	return items
}

func eventLocation(cfg models.InvitationConfig) string {
	parts := make([]string, 0, 2)
	if cfg.VenueName != "" {
		parts = append(parts, cfg.VenueName)
	}
	if cfg.Address != "" {
		parts = append(parts, cfg.Address)
	}
	return strings.Join(parts, " ")
}

func eventDetails(cfg models.InvitationConfig) string {
	parts := make([]string, 0, 5)
	if cfg.Message != "" {
		parts = append(parts, cfg.Message)
	}
	parts = append(parts, NoticeItems(cfg)...)
	return strings.Join(parts, "\n")
}

func eventTitle(cfg models.InvitationConfig) string {
	if cfg.EventTitle != "" {
		return cfg.EventTitle
	}
	return "초대 행사"
}

// GoogleCalendarURL builds the prefilled calendar-service link.
func GoogleCalendarURL(cfg models.InvitationConfig) (string, error) {
	start, end, err := EventWindow(cfg)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", eventTitle(cfg))
	params.Set("dates", utcCompact(start)+"/"+utcCompact(end))
	params.Set("location", eventLocation(cfg))
	params.Set("details", eventDetails(cfg))

	return "https://calendar.google.com/calendar/render?" + params.Encode(), nil
}

func icsEscape(value string) string {
	value = strings.ReplaceAll(value, "\n", "\\n")
	value = strings.ReplaceAll(value, ",", "\\,")
	value = strings.ReplaceAll(value, ";", "\\;")
	return value
}

// BuildICS renders the downloadable calendar file. The UID is unique per
// export, derived from the export time like the web page does.
func BuildICS(cfg models.InvitationConfig, now time.Time) (string, error) {
	start, end, err := EventWindow(cfg)
	if err != nil {
		return "", err
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Opus Invitation//KO",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%d@opus-invitation", now.UnixMilli()),
		"DTSTAMP:" + utcCompact(now),
		"DTSTART:" + utcCompact(start),
		"DTEND:" + utcCompact(end),
		"SUMMARY:" + icsEscape(eventTitle(cfg)),
		"DESCRIPTION:" + icsEscape(eventDetails(cfg)),
		"LOCATION:" + icsEscape(eventLocation(cfg)),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n"), nil
}

// ICSFilename derives the download name from the event title, collapsing
// whitespace runs to dashes.
func ICSFilename(cfg models.InvitationConfig) string {
	title := cfg.EventTitle
	if title == "" {
		title = "invitation"
	}
	return strings.Join(strings.Fields(title), "-") + ".ics"
}
