// Package storage persists the RSVP ledger and the in-progress draft as two
// independent keyed text blobs, mirroring the browser's local storage layout
// so the data stays portable between the CLI and the web pages.
package storage

// KV is the injected persistence adapter: get/set against a keyed store.
// The second Get result reports whether the key exists at all.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Storage keys shared with the web implementation.
const (
	EntriesKey = "opus_rsvp_entries_v1"
	DraftKey   = "opus_invitation_draft_v1"
)
