//go:build unit

package initdata_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
	"testing"

	"unihub/internal/pkg/initdata"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "123456:test-bot-token"

// sign builds a raw payload with a valid hash over the given fields.
func sign(t *testing.T, secret string, fields map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}

	derived := hmac.New(sha256.New, []byte("WebAppData"))
	derived.Write([]byte(secret))

	mac := hmac.New(sha256.New, derived.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, k+"="+url.QueryEscape(fields[k]))
	}
	parts = append(parts, "hash="+hash)
	return strings.Join(parts, "&")
}

func TestVerify(t *testing.T) {
	fields := map[string]string{
		"user":      `{"id":"u1","first_name":"Alice","language_code":"en"}`,
		"auth_date": "1756300000",
	}

	t.Run("valid signature", func(t *testing.T) {
		raw := sign(t, testSecret, fields)
		assert.True(t, initdata.Verify(raw, testSecret))
	})

	t.Run("deterministic for same input", func(t *testing.T) {
		raw := sign(t, testSecret, fields)
		first := initdata.Verify(raw, testSecret)
		second := initdata.Verify(raw, testSecret)
		assert.Equal(t, first, second)
		assert.True(t, first)
	})

	t.Run("tampered hash fails", func(t *testing.T) {
		raw := sign(t, testSecret, fields)
		last := raw[len(raw)-1]
		flipped := byte('0')
		if last == '0' {
			flipped = '1'
		}
		tampered := raw[:len(raw)-1] + string(flipped)
		assert.False(t, initdata.Verify(tampered, testSecret))
	})

	t.Run("tampered field fails", func(t *testing.T) {
		raw := sign(t, testSecret, fields)
		tampered := strings.Replace(raw, "auth_date=1756300000", "auth_date=1756399999", 1)
		assert.False(t, initdata.Verify(tampered, testSecret))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		raw := sign(t, testSecret, fields)
		assert.False(t, initdata.Verify(raw, "other-secret"))
	})

	t.Run("missing hash fails without panic", func(t *testing.T) {
		assert.False(t, initdata.Verify("user=%7B%22id%22%3A%22u1%22%7D&auth_date=1", testSecret))
	})

	t.Run("empty payload fails", func(t *testing.T) {
		assert.False(t, initdata.Verify("", testSecret))
	})

	t.Run("empty secret fails", func(t *testing.T) {
		raw := sign(t, testSecret, fields)
		assert.False(t, initdata.Verify(raw, ""))
	})

	t.Run("malformed percent encoding fails closed", func(t *testing.T) {
		assert.False(t, initdata.Verify("user=%zz&hash=deadbeef", testSecret))
	})
}

func TestParse(t *testing.T) {
	t.Run("structured keys are JSON decoded", func(t *testing.T) {
		raw := "user=" + url.QueryEscape(`{"id":"u1","first_name":"Alice"}`) + "&auth_date=1756300000"
		parsed := initdata.Parse(raw)

		want := map[string]any{
			"user": map[string]any{
				"id":         "u1",
				"first_name": "Alice",
			},
			"auth_date": "1756300000",
		}
		if diff := cmp.Diff(want, parsed); diff != "" {
			t.Errorf("Parse mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid JSON in structured key degrades to string", func(t *testing.T) {
		raw := "user=" + url.QueryEscape(`{"id": broken`) + "&auth_date=1"
		parsed := initdata.Parse(raw)
		assert.Equal(t, `{"id": broken`, parsed["user"])
	})

	t.Run("plain keys stay strings", func(t *testing.T) {
		parsed := initdata.Parse("query_id=AAF&auth_date=1756300000")
		assert.Equal(t, "AAF", parsed["query_id"])
		assert.Equal(t, "1756300000", parsed["auth_date"])
	})

	t.Run("never fails on garbage", func(t *testing.T) {
		assert.NotNil(t, initdata.Parse("%%%=&&&=%zz"))
		assert.NotNil(t, initdata.Parse(""))
	})
}

func TestUserID(t *testing.T) {
	t.Run("string id", func(t *testing.T) {
		raw := "user=" + url.QueryEscape(`{"id":"u1"}`)
		assert.Equal(t, "u1", initdata.UserID(raw))
	})

	t.Run("numeric id keeps exact digits", func(t *testing.T) {
		raw := "user=" + url.QueryEscape(`{"id":987654321012}`)
		assert.Equal(t, "987654321012", initdata.UserID(raw))
	})

	t.Run("missing user", func(t *testing.T) {
		assert.Equal(t, "", initdata.UserID("auth_date=1"))
	})

	t.Run("missing id", func(t *testing.T) {
		raw := "user=" + url.QueryEscape(`{"first_name":"Alice"}`)
		assert.Equal(t, "", initdata.UserID(raw))
	})

	t.Run("unparsable user object", func(t *testing.T) {
		raw := "user=" + url.QueryEscape(`not-json`)
		assert.Equal(t, "", initdata.UserID(raw))
	})
}

func TestSignHelperRoundTrip(t *testing.T) {
	// Guards the test helper itself: a payload signed here must decode back
	// to the fields it was built from.
	fields := map[string]string{"user": `{"id":"u1"}`, "auth_date": "42"}
	raw := sign(t, testSecret, fields)

	parsed := initdata.Parse(raw)
	user, ok := parsed["user"].(map[string]any)
	require.True(t, ok)

	var id any = user["id"]
	if n, isNum := id.(json.Number); isNum {
		id = n.String()
	}
	assert.Equal(t, "u1", id)
}
