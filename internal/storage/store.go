package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"opus-invite/internal/ledger"
	"opus-invite/internal/models"
)

// Store gives typed access to the two blobs. Every read degrades to
// empty/absent on a missing key, non-JSON content or wrong top-level shape:
// corrupt storage is never a user-visible error, just an empty ledger.
type Store struct {
	kv  KV
	log zerolog.Logger
}

// NewStore wraps a persistence adapter.
func NewStore(kv KV) *Store {
	return &Store{
		kv:  kv,
		log: zerolog.New(os.Stdout).With().Str("component", "storage").Logger(),
	}
}

// Entries loads the full ledger, oldest entries last. Legacy rows without a
// participant key get one filled in here so nothing downstream has to care.
func (s *Store) Entries() []models.RsvpEntry {
	raw, ok, err := s.kv.Get(EntriesKey)
	if err != nil {
		s.log.Debug().Err(err).Msg("ledger read failed, treating as empty")
		return []models.RsvpEntry{}
	}
	if !ok || raw == "" {
		return []models.RsvpEntry{}
	}

	var entries []models.RsvpEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.log.Debug().Err(err).Msg("ledger blob is not a valid entry array, treating as empty")
		return []models.RsvpEntry{}
	}
	return ledger.Normalize(entries)
}

// SaveEntries replaces the persisted ledger.
func (s *Store) SaveEntries(entries []models.RsvpEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err := s.kv.Set(EntriesKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	return nil
}

// Draft returns the in-progress invitation draft, if one is stored.
func (s *Store) Draft() (models.InvitationConfig, bool) {
	var cfg models.InvitationConfig

	raw, ok, err := s.kv.Get(DraftKey)
	if err != nil {
		s.log.Debug().Err(err).Msg("draft read failed, treating as absent")
		return cfg, false
	}
	if !ok || raw == "" {
		return cfg, false
	}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		s.log.Debug().Err(err).Msg("draft blob is not a valid invitation, treating as absent")
		return models.InvitationConfig{}, false
	}
	return cfg, true
}

// SaveDraft persists the in-progress invitation.
func (s *Store) SaveDraft(cfg models.InvitationConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.kv.Set(DraftKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist draft: %w", err)
	}
	return nil
}

// ClearDraft discards the stored draft.
func (s *Store) ClearDraft() error {
	if err := s.kv.Delete(DraftKey); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

// Close releases the underlying adapter.
func (s *Store) Close() error {
	return s.kv.Close()
}
