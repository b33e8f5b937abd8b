// Package authtest builds valid signed payloads for tests.
package authtest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// SignPayload assembles a URL-encoded payload over fields and appends a
// valid hash computed with the given secret.
func SignPayload(secret string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	encoded := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
		encoded = append(encoded, url.QueryEscape(k)+"="+url.QueryEscape(fields[k]))
	}

	derived := hmacSHA256([]byte("WebAppData"), []byte(secret))
	hash := hex.EncodeToString(hmacSHA256(derived, []byte(strings.Join(lines, "\n"))))

	encoded = append(encoded, "hash="+hash)
	return strings.Join(encoded, "&")
}

// SignUserPayload signs a payload whose user object has the given id.
func SignUserPayload(secret, userID string) string {
	return SignPayload(secret, map[string]string{
		"user": fmt.Sprintf(`{"id":%q,"first_name":"Test","last_name":"User","language_code":"en"}`, userID),
	})
}

func hmacSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
