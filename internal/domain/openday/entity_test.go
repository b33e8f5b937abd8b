//go:build unit

package openday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unihub/internal/domain/openday"
)

func i32(v int32) *int32 { return &v }

func buildEvent(capacity, remaining *int32, open bool, deadline *time.Time) *openday.Event {
	starts := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	return openday.ReconstructEvent(
		"od-1", "uni-1", openday.TypeOpenDoors,
		"Open Doors Day", "",
		starts, starts.Add(3*time.Hour),
		"Main hall", "Moscow",
		capacity, remaining, open, deadline,
	)
}

func TestAcceptsRegistrationsAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("open without deadline", func(t *testing.T) {
		assert.True(t, buildEvent(nil, nil, true, nil).AcceptsRegistrationsAt(now))
	})

	t.Run("closed flag wins", func(t *testing.T) {
		assert.False(t, buildEvent(nil, nil, false, nil).AcceptsRegistrationsAt(now))
	})

	t.Run("deadline in the future", func(t *testing.T) {
		deadline := now.Add(time.Hour)
		assert.True(t, buildEvent(nil, nil, true, &deadline).AcceptsRegistrationsAt(now))
	})

	t.Run("deadline passed", func(t *testing.T) {
		deadline := now.Add(-time.Minute)
		assert.False(t, buildEvent(nil, nil, true, &deadline).AcceptsRegistrationsAt(now))
	})
}

func TestEffectiveRemaining(t *testing.T) {
	t.Run("untracked capacity always has room", func(t *testing.T) {
		e := buildEvent(nil, nil, true, nil)
		assert.False(t, e.TracksCapacity())
		assert.True(t, e.HasCapacityLeft())
	})

	t.Run("remaining falls back to capacity", func(t *testing.T) {
		e := buildEvent(i32(50), nil, true, nil)
		assert.Equal(t, int32(50), e.EffectiveRemaining())
		assert.True(t, e.HasCapacityLeft())
	})

	t.Run("zero remaining exhausts the event", func(t *testing.T) {
		e := buildEvent(i32(50), i32(0), true, nil)
		assert.Equal(t, int32(0), e.EffectiveRemaining())
		assert.False(t, e.HasCapacityLeft())
	})

	t.Run("negative remaining clamps to zero", func(t *testing.T) {
		e := buildEvent(i32(50), i32(-3), true, nil)
		assert.Equal(t, int32(0), e.EffectiveRemaining())
	})
}

func TestNewRegistration(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := openday.NewRegistration("od-1", nil, nil, "Ivan Ivanov", "ivan@example.com", "", "", "key-1", "req-1")
		require.NoError(t, err)
		assert.Equal(t, openday.RegistrationConfirmed, r.Status())
		assert.Equal(t, "key-1", r.IdempotencyKey())
	})

	t.Run("requires full name", func(t *testing.T) {
		_, err := openday.NewRegistration("od-1", nil, nil, "", "ivan@example.com", "", "", "", "")
		assert.ErrorIs(t, err, openday.ErrEmptyFullName)
	})

	t.Run("requires email", func(t *testing.T) {
		_, err := openday.NewRegistration("od-1", nil, nil, "Ivan Ivanov", "", "", "", "", "")
		assert.ErrorIs(t, err, openday.ErrEmptyEmail)
	})
}

func TestAttachTicket(t *testing.T) {
	r, err := openday.NewRegistration("od-1", nil, nil, "Ivan Ivanov", "ivan@example.com", "", "", "", "")
	require.NoError(t, err)

	r.AttachTicket("signed-code", "OD-000123")
	assert.Equal(t, map[string]any{"code": "signed-code", "number": "OD-000123"}, r.Ticket())
}
