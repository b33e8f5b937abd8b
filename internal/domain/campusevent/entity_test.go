//go:build unit

package campusevent_test

import (
	"testing"
	"time"

	"unihub/internal/domain/campusevent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func buildEvent(status campusevent.Status, deadline *time.Time) *campusevent.Event {
	starts := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return campusevent.ReconstructEvent(
		"ev-01", "Hackathon", "", "", "hackathon",
		starts, starts.Add(8*time.Hour),
		nil, nil, nil, deadline, status,
	)
}

func TestAcceptsRegistrationsAt(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("scheduled event without deadline accepts", func(t *testing.T) {
		assert.True(t, buildEvent(campusevent.StatusScheduled, nil).AcceptsRegistrationsAt(now))
	})

	t.Run("canceled and finished events refuse", func(t *testing.T) {
		assert.False(t, buildEvent(campusevent.StatusCanceled, nil).AcceptsRegistrationsAt(now))
		assert.False(t, buildEvent(campusevent.StatusFinished, nil).AcceptsRegistrationsAt(now))
	})

	t.Run("deadline in the past refuses", func(t *testing.T) {
		past := now.Add(-time.Hour)
		assert.False(t, buildEvent(campusevent.StatusScheduled, &past).AcceptsRegistrationsAt(now))
	})

	t.Run("deadline in the future accepts", func(t *testing.T) {
		future := now.Add(time.Hour)
		assert.True(t, buildEvent(campusevent.StatusScheduled, &future).AcceptsRegistrationsAt(now))
	})
}

func TestNewRegistration(t *testing.T) {
	userID := uuid.New()

	reg := campusevent.NewRegistration("ev-01", userID, nil)

	assert.NotEqual(t, uuid.Nil, reg.ID())
	assert.Equal(t, "ev-01", reg.EventID())
	assert.Equal(t, userID, reg.UserID())
	assert.Equal(t, "confirmed", reg.Status())
	assert.NotNil(t, reg.FormPayload())
	assert.Empty(t, reg.Ticket())

	reg.AttachTicket("signed-code", "EV-ABCD1234")
	assert.Equal(t, "signed-code", reg.Ticket()["code"])
	assert.Equal(t, "EV-ABCD1234", reg.Ticket()["number"])
}
