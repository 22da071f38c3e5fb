// Package share builds everything that leaves the app as text: the invite
// and admin links, the share message, map links and QR codes.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"opus-invite/internal/export"
	"opus-invite/internal/models"
)

// InviteLink embeds the token into the viewer link. The token is already
// URL-safe, so it rides the query string untouched.
func InviteLink(basePath, token string) string {
	return basePath + "?data=" + token
}

// AdminLink builds the review-view link for one invitation.
func AdminLink(adminPath, invitationID, title string) string {
	params := url.Values{}
	params.Set("invite", invitationID)
	params.Set("title", title)
	return adminPath + "?" + params.Encode()
}

// ParseInviteLink extracts the token from a pasted invite link. A bare
// token passes through unchanged, so both forms work anywhere a link is
// accepted.
func ParseInviteLink(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "?") {
		return s, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("failed to parse invite link: %w", err)
	}
	token := u.Query().Get("data")
	if token == "" {
		return "", fmt.Errorf("invite link carries no data parameter")
	}
	return token, nil
}

// MapLinks are the three map-service search links for the venue address.
type MapLinks struct {
	Naver  string
	Kakao  string
	Google string
}

// BuildMapLinks returns the map links, or nil when there is no address.
func BuildMapLinks(address string) *MapLinks {
	if address == "" {
		return nil
	}
	return &MapLinks{
		Naver:  "https://map.naver.com/v5/search/" + url.PathEscape(address),
		Kakao:  "https://map.kakao.com/?q=" + url.QueryEscape(address),
		Google: "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address),
	}
}

// ShareMessage composes the text a host pastes into a chat alongside the
// link: headline, then date, venue and address when present, then the link.
func ShareMessage(cfg models.InvitationConfig, shareURL string) string {
	title := cfg.EventTitle
	if title == "" {
		title = "초대장"
	}

	lines := []string{fmt.Sprintf("[%s] %s", cfg.EventType, title)}
	if cfg.EventDate != "" {
		lines = append(lines, "일시: "+export.FormatEventDate(cfg.EventDate))
	}
	if cfg.VenueName != "" {
		lines = append(lines, "장소: "+cfg.VenueName)
	}
	if cfg.Address != "" {
		lines = append(lines, "주소: "+cfg.Address)
	}
	lines = append(lines, shareURL)
	return strings.Join(lines, "\n")
}
