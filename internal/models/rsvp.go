package models

import "time"

// Attendance is the guest's decision. Exactly two values exist; the Korean
// strings are stored as-is so ledgers written by the web pages stay readable.
type Attendance string

const (
	Attending Attendance = "참석"
	Declined  Attendance = "불참"
)

// Meal choices. MealPlanned is the default for an attending guest;
// MealNone is forced whenever the guest declines.
const (
	MealPlanned = "식사 예정"
	MealNone    = "식사 안 함"
)

// DefaultSide is the relationship used when the guest picks none.
const DefaultSide = "친구"

// Source tags recorded on entries so the admin view can tell where a
// response came from.
const (
	SourceInvitePage = "invite-page"
	SourceCLI        = "cli"
)

// RsvpEntry is one guest's response to one invitation. EventTitle is
// denormalized so the admin view renders without re-decoding the token.
type RsvpEntry struct {
	ID             string     `json:"id"`
	InvitationID   string     `json:"invitationId"`
	EventTitle     string     `json:"eventTitle"`
	GuestName      string     `json:"guestName"`
	GuestPhone     string     `json:"guestPhone"`
	Attending      Attendance `json:"attending"`
	Side           string     `json:"side"`
	GuestCount     int        `json:"guestCount"`
	Meal           string     `json:"meal"`
	Note           string     `json:"note"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Source         string     `json:"source"`
	ParticipantKey string     `json:"participantKey,omitempty"`
}

// IsAttending reports whether the entry confirms attendance.
func (e RsvpEntry) IsAttending() bool {
	return e.Attending == Attending
}
