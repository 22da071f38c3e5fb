package handler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opus-invite/internal/models"
	"opus-invite/internal/storage"
)

func newTestHandler(t *testing.T) (*RSVPHandler, *storage.Store) {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryKV())
	h := NewRSVPHandler(store, models.SourceCLI)

	ids := 0
	h.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}
	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	h.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return h, store
}

func TestSubmitRejectsEmptyGuestName(t *testing.T) {
	h, store := newTestHandler(t)

	_, _, err := h.Submit("inv-1", "테스트", Submission{GuestName: "   "})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, store.Entries(), "no partial write on validation failure")
}

func TestSubmitDefaultsAndNormalizes(t *testing.T) {
	h, _ := newTestHandler(t)

	entry, wasUpdate, err := h.Submit("inv-1", "", Submission{
		GuestName:  " Kim ",
		Attending:  true,
		GuestCount: 0,
	})
	require.NoError(t, err)
	assert.False(t, wasUpdate)
	assert.Equal(t, "Kim", entry.GuestName)
	assert.Equal(t, models.DefaultSide, entry.Side)
	assert.Equal(t, 1, entry.GuestCount, "attending count clamps up to 1")
	assert.Equal(t, models.MealPlanned, entry.Meal)
	assert.Equal(t, "초대장", entry.EventTitle)
	assert.Equal(t, models.SourceCLI, entry.Source)
}

func TestSubmitThenResubmitMergesEntry(t *testing.T) {
	h, store := newTestHandler(t)

	first, wasUpdate, err := h.Submit("inv-1", "테스트", Submission{
		GuestName:  "Kim",
		GuestPhone: "010-1111-2222",
		Attending:  true,
		GuestCount: 3,
		Meal:       models.MealPlanned,
	})
	require.NoError(t, err)
	require.False(t, wasUpdate)

	second, wasUpdate, err := h.Submit("inv-1", "테스트", Submission{
		GuestName:  "Kim",
		GuestPhone: "010-1111-2222",
		Attending:  false,
		GuestCount: 3,
		Meal:       models.MealPlanned,
	})
	require.NoError(t, err)
	require.True(t, wasUpdate)

	entries := store.Entries()
	require.Len(t, entries, 1, "resubmission must not create a second entry")

	merged := entries[0]
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, first.CreatedAt, merged.CreatedAt)
	assert.True(t, merged.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, models.Declined, merged.Attending)
	assert.Equal(t, 0, merged.GuestCount)
	assert.Equal(t, models.MealNone, merged.Meal)
	assert.Equal(t, second.UpdatedAt, merged.UpdatedAt)
}

func TestSubmitSeparateGuestsStaySeparate(t *testing.T) {
	h, store := newTestHandler(t)

	_, _, err := h.Submit("inv-1", "테스트", Submission{GuestName: "Kim", Attending: true})
	require.NoError(t, err)
	_, _, err = h.Submit("inv-1", "테스트", Submission{GuestName: "Lee", Attending: true})
	require.NoError(t, err)

	entries := store.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Lee", entries[0].GuestName, "newest entry sits at the front")
}
