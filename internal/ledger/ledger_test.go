package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opus-invite/internal/models"
)

func entry(id, invitationID, name, phone string, attending models.Attendance, count int) models.RsvpEntry {
	e := models.RsvpEntry{
		ID:           id,
		InvitationID: invitationID,
		EventTitle:   "테스트 초대장",
		GuestName:    name,
		GuestPhone:   phone,
		Attending:    attending,
		Side:         models.DefaultSide,
		GuestCount:   count,
		Meal:         models.MealPlanned,
		CreatedAt:    time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		Source:       models.SourceInvitePage,
	}
	e.ParticipantKey = ParticipantKey(invitationID, name, phone)
	if attending == models.Declined {
		e.GuestCount = 0
		e.Meal = models.MealNone
	}
	return e
}

func TestParticipantKeyPrefersPhoneDigits(t *testing.T) {
	key := ParticipantKey("inv-1", "Kim", "010-1111-2222")
	assert.Equal(t, "inv-1::phone::01011112222", key)
}

func TestParticipantKeyFallsBackToName(t *testing.T) {
	key := ParticipantKey("inv-1", "  Kim Minsu ", "")
	assert.Equal(t, "inv-1::name::kim minsu", key)

	// A phone with no digits at all is treated as absent.
	assert.Equal(t, key, ParticipantKey("inv-1", "  Kim Minsu ", "---"))
}

func TestNormalizeFillsLegacyKeys(t *testing.T) {
	legacy := entry("1", "inv-1", "Kim", "010-1111-2222", models.Attending, 2)
	legacy.ParticipantKey = ""

	normalized := Normalize([]models.RsvpEntry{legacy})
	require.Len(t, normalized, 1)
	assert.Equal(t, "inv-1::phone::01011112222", normalized[0].ParticipantKey)
}

func TestUpsertInsertsAtFront(t *testing.T) {
	first := entry("1", "inv-1", "Kim", "010-1111-2222", models.Attending, 2)
	second := entry("2", "inv-1", "Lee", "010-3333-4444", models.Attending, 1)

	entries, wasUpdate := Upsert(nil, first)
	require.False(t, wasUpdate)

	entries, wasUpdate = Upsert(entries, second)
	require.False(t, wasUpdate)
	require.Len(t, entries, 2)
	assert.Equal(t, "Lee", entries[0].GuestName)
	assert.Equal(t, "Kim", entries[1].GuestName)
}

func TestUpsertMergesByParticipantKey(t *testing.T) {
	first := entry("1", "inv-1", "Kim", "010-1111-2222", models.Attending, 3)
	entries, _ := Upsert(nil, first)

	resubmission := entry("2", "inv-1", "Kim", "010-1111-2222", models.Declined, 0)
	resubmission.UpdatedAt = first.UpdatedAt.Add(time.Hour)

	entries, wasUpdate := Upsert(entries, resubmission)
	require.True(t, wasUpdate)
	require.Len(t, entries, 1)

	merged := entries[0]
	assert.Equal(t, "1", merged.ID, "update keeps the original id")
	assert.Equal(t, first.CreatedAt, merged.CreatedAt, "update keeps the original creation time")
	assert.Equal(t, resubmission.UpdatedAt, merged.UpdatedAt)
	assert.Equal(t, models.Declined, merged.Attending)
	assert.Equal(t, 0, merged.GuestCount)
	assert.Equal(t, models.MealNone, merged.Meal)
}

func TestUpsertMatchesLegacyEntriesWithoutKey(t *testing.T) {
	legacy := entry("1", "inv-1", "Kim", "010-1111-2222", models.Attending, 3)
	legacy.ParticipantKey = ""

	resubmission := entry("2", "inv-1", "Kim", "010 1111 2222", models.Attending, 5)

	entries, wasUpdate := Upsert([]models.RsvpEntry{legacy}, resubmission)
	require.True(t, wasUpdate)
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, 5, entries[0].GuestCount)
}

func TestUpsertSameNameDifferentInvitationStaysSeparate(t *testing.T) {
	a := entry("1", "inv-a", "Kim", "", models.Attending, 1)
	b := entry("2", "inv-b", "Kim", "", models.Attending, 1)

	entries, _ := Upsert(nil, a)
	entries, wasUpdate := Upsert(entries, b)
	assert.False(t, wasUpdate)
	assert.Len(t, entries, 2)
}

func TestNormalizeAttendance(t *testing.T) {
	count, meal := NormalizeAttendance(false, 5, models.MealPlanned)
	assert.Equal(t, 0, count)
	assert.Equal(t, models.MealNone, meal)

	count, meal = NormalizeAttendance(true, 0, models.MealPlanned)
	assert.Equal(t, 1, count)
	assert.Equal(t, models.MealPlanned, meal)

	count, meal = NormalizeAttendance(true, -2, "")
	assert.Equal(t, 1, count)
	assert.Equal(t, models.MealPlanned, meal)

	count, meal = NormalizeAttendance(true, 4, models.MealNone)
	assert.Equal(t, 4, count)
	assert.Equal(t, models.MealNone, meal)
}

func TestFilterByInvitation(t *testing.T) {
	entries := []models.RsvpEntry{
		entry("1", "A", "Kim", "", models.Attending, 1),
		entry("2", "B", "Lee", "", models.Attending, 1),
		entry("3", "A", "Park", "", models.Declined, 0),
	}

	onlyA := FilterByInvitation(entries, "A")
	require.Len(t, onlyA, 2)
	for _, e := range onlyA {
		assert.Equal(t, "A", e.InvitationID)
	}

	assert.Len(t, FilterByInvitation(entries, ""), 3, "empty id means no filtering")
	assert.Empty(t, FilterByInvitation(entries, "C"))
}

func TestFilterByQueryKeyword(t *testing.T) {
	entries := []models.RsvpEntry{
		entry("1", "A", "Kim Minsu", "010-1111-2222", models.Attending, 1),
		entry("2", "A", "Lee", "010-3333-4444", models.Attending, 1),
	}
	entries[1].Note = "늦게 도착합니다"

	matched := FilterByQuery(entries, Query{Keyword: "minsu"})
	require.Len(t, matched, 1)
	assert.Equal(t, "1", matched[0].ID)

	matched = FilterByQuery(entries, Query{Keyword: "도착"})
	require.Len(t, matched, 1)
	assert.Equal(t, "2", matched[0].ID)

	// Keyword also matches the denormalized event title.
	assert.Len(t, FilterByQuery(entries, Query{Keyword: "테스트"}), 2)
	assert.Empty(t, FilterByQuery(entries, Query{Keyword: "nobody"}))
}

func TestFilterByQueryCategorical(t *testing.T) {
	entries := []models.RsvpEntry{
		entry("1", "A", "Kim", "", models.Attending, 2),
		entry("2", "A", "Lee", "", models.Declined, 0),
	}

	matched := FilterByQuery(entries, Query{Attending: string(models.Declined)})
	require.Len(t, matched, 1)
	assert.Equal(t, "2", matched[0].ID)

	assert.Len(t, FilterByQuery(entries, Query{Attending: FilterAll}), 2)

	matched = FilterByQuery(entries, Query{Meal: models.MealNone})
	require.Len(t, matched, 1)
	assert.Equal(t, "2", matched[0].ID)

	// Filters intersect.
	matched = FilterByQuery(entries, Query{Keyword: "kim", Attending: string(models.Declined)})
	assert.Empty(t, matched)
}

func TestAggregate(t *testing.T) {
	noMeal := entry("3", "A", "Park", "", models.Attending, 2)
	noMeal.Meal = "" // legacy row predating the meal field

	entries := []models.RsvpEntry{
		entry("1", "A", "Kim", "", models.Attending, 3),
		entry("2", "A", "Lee", "", models.Declined, 0),
		noMeal,
		entry("4", "A", "Choi", "", models.Attending, 1),
	}
	entries[3].Meal = models.MealNone

	stats := Aggregate(entries)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Attending)
	assert.Equal(t, 1, stats.Declined)
	assert.Equal(t, 6, stats.GuestTotal)
	assert.Equal(t, 5, stats.MealTotal, "missing meal counts as planned, 식사 안 함 does not")
}

func TestDeleteByID(t *testing.T) {
	entries := []models.RsvpEntry{
		entry("1", "A", "Kim", "", models.Attending, 1),
		entry("2", "A", "Lee", "", models.Attending, 1),
	}

	next := DeleteByID(entries, "1")
	require.Len(t, next, 1)
	assert.Equal(t, "2", next[0].ID)

	// No match is signalled by unchanged length, never an error.
	assert.Len(t, DeleteByID(entries, "missing"), 2)
}

func TestDeleteByInvitation(t *testing.T) {
	var entries []models.RsvpEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, entry(string(rune('a'+i)), "A", "G", "", models.Attending, 1))
	}
	entries = append(entries,
		entry("x", "B", "H", "", models.Attending, 1),
		entry("y", "B", "I", "", models.Attending, 1),
	)

	next := DeleteByInvitation(entries, "A")
	require.Len(t, next, 2)
	for _, e := range next {
		assert.Equal(t, "B", e.InvitationID)
	}

	assert.Empty(t, DeleteByInvitation(entries, ""), "empty id clears the entire ledger")
}
