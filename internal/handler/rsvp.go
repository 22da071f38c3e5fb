package handler

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"opus-invite/internal/ledger"
	"opus-invite/internal/models"
	"opus-invite/internal/storage"
)

// ValidationError rejects a submission before anything is written. It is
// surfaced inline to the guest; the ledger is untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Submission is what the guest fills in on the invite page.
type Submission struct {
	GuestName  string
	GuestPhone string
	Side       string
	Attending  bool
	GuestCount int
	Meal       string
	Note       string
}

// RSVPHandler processes guest responses against the ledger.
type RSVPHandler struct {
	store  *storage.Store
	source string
	log    zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewRSVPHandler creates a handler tagging entries with the given source.
func NewRSVPHandler(store *storage.Store, source string) *RSVPHandler {
	if source == "" {
		source = models.SourceCLI
	}
	return &RSVPHandler{
		store:  store,
		source: source,
		log:    zerolog.New(os.Stdout).With().Str("component", "rsvp").Logger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Submit validates, normalizes and upserts one response. A returning
// participant (same phone, or same name when no phone was given) updates
// their existing entry in place; the returned flag tells the caller which
// happened so it can word its feedback.
func (h *RSVPHandler) Submit(invitationID, eventTitle string, sub Submission) (models.RsvpEntry, bool, error) {
	guestName := strings.TrimSpace(sub.GuestName)
	if guestName == "" {
		return models.RsvpEntry{}, false, &ValidationError{Field: "guest name", Reason: "must not be empty"}
	}

	side := strings.TrimSpace(sub.Side)
	if side == "" {
		side = models.DefaultSide
	}

	guestCount, meal := ledger.NormalizeAttendance(sub.Attending, sub.GuestCount, sub.Meal)
	attending := models.Declined
	if sub.Attending {
		attending = models.Attending
	}
	if eventTitle == "" {
		eventTitle = "초대장"
	}

	now := h.now()
	entry := models.RsvpEntry{
		ID:             h.newID(),
		InvitationID:   invitationID,
		EventTitle:     eventTitle,
		GuestName:      guestName,
		GuestPhone:     strings.TrimSpace(sub.GuestPhone),
		Attending:      attending,
		Side:           side,
		GuestCount:     guestCount,
		Meal:           meal,
		Note:           strings.TrimSpace(sub.Note),
		CreatedAt:      now,
		UpdatedAt:      now,
		Source:         h.source,
		ParticipantKey: ledger.ParticipantKey(invitationID, guestName, sub.GuestPhone),
	}

	entries, wasUpdate := ledger.Upsert(h.store.Entries(), entry)
	if err := h.store.SaveEntries(entries); err != nil {
		return models.RsvpEntry{}, false, fmt.Errorf("failed to save RSVP: %w", err)
	}

	h.log.Info().
		Str("invitation", invitationID).
		Str("guest", guestName).
		Bool("update", wasUpdate).
		Msg("RSVP recorded")

	// On update the stored entry kept its original id and creation time.
	if wasUpdate {
		for _, e := range entries {
			if e.ParticipantKey == entry.ParticipantKey {
				return e, true, nil
			}
		}
	}
	return entry, wasUpdate, nil
}
