// Package codec turns an invitation configuration into a URL-safe token and
// back, and derives the short invitation identifier from a token. The token
// is the only thing that travels between host and guest, so both directions
// must agree byte-for-byte with what the share link carries.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"opus-invite/internal/models"
)

// DecodeError means the token is not a usable invitation: either it is not
// valid under the URL-safe alphabet or the decoded text is not a well-formed
// configuration record. Callers must treat it as "no invitation at all" and
// never render partial data.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid invitation token: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid invitation token: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode serializes the configuration to JSON and applies the unpadded
// URL-safe base64 alphabet. The result survives copy-paste and QR round
// trips without percent-encoding, including multi-byte text and embedded
// data-URL images, because the transform runs over the raw UTF-8 bytes.
func Encode(cfg models.InvitationConfig) (string, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal invitation: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode is the exact inverse of Encode. The unpadded decoder re-derives the
// stripped fill length from the token length modulo 4.
func Decode(token string) (models.InvitationConfig, error) {
	var cfg models.InvitationConfig

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return cfg, &DecodeError{Reason: "not url-safe base64", Err: err}
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, &DecodeError{Reason: "malformed invitation record", Err: err}
	}
	return cfg, nil
}

// DeriveInvitationID computes the short identifier that keys RSVP entries to
// an invitation: a rolling hash*31 over the token's characters accumulated
// in signed 32-bit, absolute value, rendered as lowercase hex with the
// "inv-" prefix. Tokens are ASCII by construction, so iterating bytes is the
// same as iterating character codes.
//
// The id is derived from the literal token, not from semantic content: two
// different encodings of logically identical data (a re-uploaded image that
// serializes differently, say) produce different ids and split the ledger.
// Known limitation, kept for compatibility with existing links.
func DeriveInvitationID(token string) string {
	var hash int32
	for i := 0; i < len(token); i++ {
		hash = hash*31 + int32(token[i])
	}

	// Widen before negating so math.MinInt32 keeps its magnitude.
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	return "inv-" + strconv.FormatInt(v, 16)
}
