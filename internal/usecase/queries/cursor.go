package queries

import (
	"encoding/base64"
	"encoding/json"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type cursorPayload struct {
	ID string `json:"id"`
}

// EncodeCursor wraps the last-seen id into an opaque page token.
func EncodeCursor(id string) string {
	data, err := json.Marshal(cursorPayload{ID: id})
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor unwraps a page token back into the last-seen id. Anything
// malformed decodes to "", which restarts the listing from the beginning.
func DecodeCursor(cursor string) string {
	if cursor == "" {
		return ""
	}

	data, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return ""
	}

	var payload cursorPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.ID
}

func ValidateLimit(limit int) int32 {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return int32(limit)
}
