//go:build unit

package queries

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorRoundTrip(t *testing.T) {
	for _, id := range []string{"uni-001", "od-42", "a b/c?d", ""} {
		assert.Equal(t, id, DecodeCursor(EncodeCursor(id)))
	}
}

func TestDecodeCursorMalformed(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", DecodeCursor(""))
	})

	t.Run("not base64", func(t *testing.T) {
		assert.Equal(t, "", DecodeCursor("%%%not-base64%%%"))
	})

	t.Run("base64 but not json", func(t *testing.T) {
		token := base64.URLEncoding.EncodeToString([]byte("not json"))
		assert.Equal(t, "", DecodeCursor(token))
	})

	t.Run("json without id", func(t *testing.T) {
		token := base64.URLEncoding.EncodeToString([]byte(`{"other":"x"}`))
		assert.Equal(t, "", DecodeCursor(token))
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, int32(DefaultListLimit), ValidateLimit(0))
	assert.Equal(t, int32(DefaultListLimit), ValidateLimit(-5))
	assert.Equal(t, int32(7), ValidateLimit(7))
	assert.Equal(t, int32(MaxListLimit), ValidateLimit(100))
	assert.Equal(t, int32(MaxListLimit), ValidateLimit(1000))
}
