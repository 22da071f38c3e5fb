package handler

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"opus-invite/internal/export"
	"opus-invite/internal/ledger"
	"opus-invite/internal/models"
	"opus-invite/internal/storage"
)

// AdminHandler backs the review view: listing, stats, export and deletion.
type AdminHandler struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewAdminHandler creates an admin handler over the store.
func NewAdminHandler(store *storage.Store) *AdminHandler {
	return &AdminHandler{
		store: store,
		log:   zerolog.New(os.Stdout).With().Str("component", "admin").Logger(),
	}
}

// List returns the entries for the invitation (all invitations when the id
// is empty) narrowed by the query, plus stats over the invitation's full
// set. Stats ignore the search filters on purpose: the header numbers stay
// stable while the operator types.
func (a *AdminHandler) List(invitationID string, q ledger.Query) ([]models.RsvpEntry, ledger.Stats) {
	scoped := ledger.FilterByInvitation(a.store.Entries(), invitationID)
	return ledger.FilterByQuery(scoped, q), ledger.Aggregate(scoped)
}

// ExportCSV renders the invitation's entries as spreadsheet-ready CSV and
// reports how many rows it contains.
func (a *AdminHandler) ExportCSV(invitationID string) (string, int) {
	scoped := ledger.FilterByInvitation(a.store.Entries(), invitationID)
	return export.BuildCSV(scoped), len(scoped)
}

// DeleteEntry removes a single entry by id. It reports false when no entry
// matched, which is not an error.
func (a *AdminHandler) DeleteEntry(id string) (bool, error) {
	entries := a.store.Entries()
	next := ledger.DeleteByID(entries, id)
	if len(next) == len(entries) {
		return false, nil
	}
	if err := a.store.SaveEntries(next); err != nil {
		return false, fmt.Errorf("failed to delete entry: %w", err)
	}
	a.log.Info().Str("id", id).Msg("RSVP entry deleted")
	return true, nil
}

// CountByInvitation reports how many entries a ClearInvitation call would
// remove, so callers can confirm before committing. An empty id counts the
// whole ledger.
func (a *AdminHandler) CountByInvitation(invitationID string) int {
	return len(ledger.FilterByInvitation(a.store.Entries(), invitationID))
}

// ClearInvitation removes every entry for the invitation and returns the
// number removed. An empty id clears the entire ledger; the caller is
// responsible for confirming that with the operator first.
func (a *AdminHandler) ClearInvitation(invitationID string) (int, error) {
	entries := a.store.Entries()
	next := ledger.DeleteByInvitation(entries, invitationID)
	removed := len(entries) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := a.store.SaveEntries(next); err != nil {
		return 0, fmt.Errorf("failed to clear entries: %w", err)
	}
	a.log.Info().Str("invitation", invitationID).Int("removed", removed).Msg("RSVP entries cleared")
	return removed, nil
}
