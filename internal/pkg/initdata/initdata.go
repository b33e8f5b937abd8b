// Package initdata validates and decodes the signed payload header issued to
// the mini-app by the messenger platform. The payload is a URL-encoded set of
// key=value pairs carrying an HMAC-SHA256 signature in its "hash" field.
package initdata

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/url"
	"sort"
	"strings"
)

// derivationKey is the fixed HMAC key used to derive the per-application
// secret from the shared bot token.
const derivationKey = "WebAppData"

// Keys whose values are JSON-encoded sub-objects rather than plain strings.
var structuredKeys = map[string]struct{}{
	"user":     {},
	"chat":     {},
	"receiver": {},
	"payload":  {},
}

// Verify reports whether raw carries a valid signature for the given shared
// secret. Every malformed input, missing hash, or missing secret degrades to
// false; callers must treat all failures uniformly.
func Verify(raw, secret string) bool {
	if raw == "" {
		slog.Warn("signed payload is empty")
		return false
	}
	if secret == "" {
		slog.Error("signed payload secret is not configured, verification impossible")
		return false
	}

	pairs, err := parsePairs(raw)
	if err != nil {
		slog.Warn("failed to parse signed payload", "error", err.Error())
		return false
	}

	hash, ok := pairs["hash"]
	if !ok || hash == "" {
		slog.Warn("signed payload is missing hash")
		return false
	}
	delete(pairs, "hash")

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+pairs[k])
	}
	checkString := strings.Join(lines, "\n")

	derived := hmacSHA256([]byte(derivationKey), []byte(secret))
	computed := hex.EncodeToString(hmacSHA256(derived, []byte(checkString)))

	valid := hmac.Equal([]byte(computed), []byte(hash))
	if !valid {
		slog.Warn("signed payload hash mismatch")
	}
	return valid
}

// Parse decodes raw into a key→value map. Values of structured keys are
// JSON-decoded; on decode failure the raw decoded string is retained instead.
// Parse never fails: unparseable pairs are kept as-is rather than dropped, so
// a valid signature's outcome is never masked by payload shape issues.
func Parse(raw string) map[string]any {
	parsed := make(map[string]any)
	for _, pair := range strings.Split(raw, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		if decodedKey, err := url.QueryUnescape(key); err == nil {
			key = decodedKey
		}
		if decodedValue, err := url.QueryUnescape(value); err == nil {
			value = decodedValue
		}

		if _, structured := structuredKeys[key]; structured {
			var obj any
			dec := json.NewDecoder(bytes.NewReader([]byte(value)))
			dec.UseNumber()
			if err := dec.Decode(&obj); err == nil {
				parsed[key] = obj
				continue
			}
		}
		parsed[key] = value
	}
	return parsed
}

// User returns the embedded user object of a parsed payload, or nil.
func User(payload map[string]any) map[string]any {
	user, ok := payload["user"].(map[string]any)
	if !ok {
		return nil
	}
	return user
}

// UserID extracts the external user identifier from raw, best-effort. The id
// may be a JSON number or string; both normalize to a string. Returns "" when
// the payload carries no usable id.
func UserID(raw string) string {
	user := User(Parse(raw))
	if user == nil {
		return ""
	}
	switch id := user["id"].(type) {
	case json.Number:
		return id.String()
	case string:
		return id
	default:
		return ""
	}
}

// parsePairs decodes raw strictly: any percent-decoding error fails the whole
// parse. Duplicate keys keep the last occurrence.
func parsePairs(raw string) (map[string]string, error) {
	pairs := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		pairs[decodedKey] = decodedValue
	}
	return pairs, nil
}

func hmacSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
