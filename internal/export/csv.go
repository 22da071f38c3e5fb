package export

import (
	"strconv"
	"strings"

	"opus-invite/internal/models"
)

// Column order is fixed and must match the row building below.
var csvHeader = []string{"제출시각", "초대장ID", "이름", "연락처", "참석", "인원", "메모"}

func csvField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// BuildCSV renders the entries as UTF-8 CSV with a leading byte-order marker
// so spreadsheet apps pick the right encoding. Every field is quote-wrapped
// with internal quotes doubled, the header included.
func BuildCSV(entries []models.RsvpEntry) string {
	rows := make([]string, 0, len(entries)+1)

	header := make([]string, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = csvField(h)
	}
	rows = append(rows, strings.Join(header, ","))

	for _, e := range entries {
		fields := []string{
			csvField(FormatTimestamp(e.CreatedAt)),
			csvField(e.InvitationID),
			csvField(e.GuestName),
			csvField(e.GuestPhone),
			csvField(string(e.Attending)),
			csvField(strconv.Itoa(e.GuestCount)),
			csvField(e.Note),
		}
		rows = append(rows, strings.Join(fields, ","))
	}

	return "\uFEFF" + strings.Join(rows, "\n")
}
