// Package ledger holds the pure RSVP bookkeeping: participant identity,
// upsert-by-identity, filtering, aggregation and deletion. Functions take
// and return entry slices and never touch persistence; the storage adapter
// is injected one layer up so all of this is testable in memory.
package ledger

import (
	"strings"

	"opus-invite/internal/models"
)

// FilterAll disables a categorical filter.
const FilterAll = "all"

// ParticipantKey derives the dedup identity of a guest within one
// invitation: phone digits when the guest left a phone number, otherwise
// the lowercased trimmed name.
func ParticipantKey(invitationID, guestName, guestPhone string) string {
	digits := normalizePhone(guestPhone)
	if digits != "" {
		return invitationID + "::phone::" + digits
	}
	return invitationID + "::name::" + strings.ToLower(strings.TrimSpace(guestName))
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize fills in participant keys for entries written before the key
// field existed, so downstream code never special-cases legacy rows. It is
// applied uniformly on every load.
func Normalize(entries []models.RsvpEntry) []models.RsvpEntry {
	out := make([]models.RsvpEntry, len(entries))
	copy(out, entries)
	for i := range out {
		if out[i].ParticipantKey == "" {
			out[i].ParticipantKey = ParticipantKey(out[i].InvitationID, out[i].GuestName, out[i].GuestPhone)
		}
	}
	return out
}

// Upsert merges the candidate into the collection. A second submission by
// the same participant replaces the existing entry's mutable fields while
// keeping its original id and creation time; a first submission is inserted
// at the front, which is the most-recent-first order the admin view shows.
// The returned flag reports whether an existing entry was updated.
func Upsert(entries []models.RsvpEntry, candidate models.RsvpEntry) ([]models.RsvpEntry, bool) {
	if candidate.ParticipantKey == "" {
		candidate.ParticipantKey = ParticipantKey(candidate.InvitationID, candidate.GuestName, candidate.GuestPhone)
	}

	for i, existing := range entries {
		key := existing.ParticipantKey
		if key == "" {
			key = ParticipantKey(existing.InvitationID, existing.GuestName, existing.GuestPhone)
		}
		if key != candidate.ParticipantKey {
			continue
		}

		next := make([]models.RsvpEntry, len(entries))
		copy(next, entries)
		merged := candidate
		merged.ID = existing.ID
		merged.CreatedAt = existing.CreatedAt
		next[i] = merged
		return next, true
	}

	next := make([]models.RsvpEntry, 0, len(entries)+1)
	next = append(next, candidate)
	next = append(next, entries...)
	return next, false
}

// NormalizeAttendance applies the count/meal invariants: a declined RSVP
// always carries zero guests and no meal no matter what was submitted, an
// attending one brings at least one guest and defaults to the planned meal.
func NormalizeAttendance(attending bool, guestCount int, meal string) (int, string) {
	if !attending {
		return 0, models.MealNone
	}
	if guestCount < 1 {
		guestCount = 1
	}
	if meal == "" {
		meal = models.MealPlanned
	}
	return guestCount, meal
}

// FilterByInvitation returns the entries for one invitation. An empty id
// means no filtering, which is the admin view's "all invitations" mode.
func FilterByInvitation(entries []models.RsvpEntry, invitationID string) []models.RsvpEntry {
	if invitationID == "" {
		return entries
	}
	var out []models.RsvpEntry
	for _, e := range entries {
		if e.InvitationID == invitationID {
			out = append(out, e)
		}
	}
	return out
}

// Query is the admin view's search state. Attending and Meal are exact
// matches; FilterAll (or empty) disables either one. Keyword matches
// case-insensitively against name, phone, side, meal, note and event title.
// All active filters must match.
type Query struct {
	Keyword   string
	Attending string
	Meal      string
}

// FilterByQuery applies the query to the entries.
func FilterByQuery(entries []models.RsvpEntry, q Query) []models.RsvpEntry {
	keyword := strings.ToLower(strings.TrimSpace(q.Keyword))

	var out []models.RsvpEntry
	for _, e := range entries {
		if q.Attending != "" && q.Attending != FilterAll && string(e.Attending) != q.Attending {
			continue
		}
		if q.Meal != "" && q.Meal != FilterAll && e.Meal != q.Meal {
			continue
		}
		if keyword != "" {
			target := strings.ToLower(strings.Join([]string{
				e.GuestName, e.GuestPhone, e.Side, e.Meal, e.Note, e.EventTitle,
			}, " "))
			if !strings.Contains(target, keyword) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// Stats is the aggregate block at the top of the admin view.
type Stats struct {
	Total      int
	Attending  int
	Declined   int
	GuestTotal int
	MealTotal  int
}

// Aggregate sums the entries. Guest and meal totals only count attending
// entries; an entry with no stored meal counts toward the planned meal,
// matching how older rows were written.
func Aggregate(entries []models.RsvpEntry) Stats {
	var s Stats
	s.Total = len(entries)
	for _, e := range entries {
		if !e.IsAttending() {
			s.Declined++
			continue
		}
		s.Attending++
		s.GuestTotal += e.GuestCount
		if e.Meal == "" || e.Meal == models.MealPlanned {
			s.MealTotal += e.GuestCount
		}
	}
	return s
}

// DeleteByID removes at most one entry. A no-match is signalled by the
// returned slice having the same length as the input, not by an error.
func DeleteByID(entries []models.RsvpEntry, id string) []models.RsvpEntry {
	out := make([]models.RsvpEntry, 0, len(entries))
	removed := false
	for _, e := range entries {
		if !removed && e.ID == id {
			removed = true
			continue
		}
		out = append(out, e)
	}
	return out
}

// DeleteByInvitation removes every entry for the invitation. An empty id
// deliberately clears the entire ledger; callers gate that behind explicit
// confirmation.
func DeleteByInvitation(entries []models.RsvpEntry, invitationID string) []models.RsvpEntry {
	if invitationID == "" {
		return []models.RsvpEntry{}
	}
	out := make([]models.RsvpEntry, 0, len(entries))
	for _, e := range entries {
		if e.InvitationID != invitationID {
			out = append(out, e)
		}
	}
	return out
}
