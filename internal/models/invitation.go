package models

// Template keys map to the CSS classes of the invitation card.
const (
	TemplateClassic = "classic"
	TemplateMinimal = "minimal"
	TemplateWarm    = "warm"
	TemplateNeon    = "neon"
	TemplateHanji   = "hanji"
)

// DefaultDurationMin is used when an invitation carries no duration;
// MinDurationMin is the floor applied to whatever the host entered.
const (
	DefaultDurationMin = 120
	MinDurationMin     = 30
)

// InvitationConfig is the record a host builds and shares. The JSON field
// names are part of the wire format: an encoded token must decode the same
// way regardless of which side produced it, so they never change.
type InvitationConfig struct {
	EventType       string `json:"eventType"`
	Template        string `json:"template"`
	EventTitle      string `json:"eventTitle"`
	HostName        string `json:"hostName"`
	EventDate       string `json:"eventDate"`
	DurationMin     int    `json:"durationMin,omitempty"`
	VenueName       string `json:"venueName"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Account         string `json:"account"`
	Character       string `json:"character"`
	Message         string `json:"message"`
	ParkingInfo     string `json:"parkingInfo,omitempty"`
	DressCode       string `json:"dressCode,omitempty"`
	BringItem       string `json:"bringItem,omitempty"`
	ExtraNotice     string `json:"extraNotice,omitempty"`
	ShowQr          bool   `json:"showQr"`
	ShowAccount     bool   `json:"showAccount"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}
