//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"unihub/internal/pkg/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := ticket.NewIssuer("signing-key", time.Hour)
	registrationID := uuid.New()
	now := time.Now()

	code, err := issuer.Issue("od-msk-001", registrationID, now)
	require.NoError(t, err)
	require.NotEmpty(t, code)

	claims, err := issuer.Verify(code)
	require.NoError(t, err)
	assert.Equal(t, "od-msk-001", claims.EventID)
	assert.Equal(t, registrationID, claims.RegistrationID)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := ticket.NewIssuer("signing-key", time.Hour)
	other := ticket.NewIssuer("other-key", time.Hour)

	code, err := issuer.Issue("od-msk-001", uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = other.Verify(code)
	assert.ErrorIs(t, err, ticket.ErrInvalidTicket)
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := ticket.NewIssuer("signing-key", time.Minute)

	code, err := issuer.Issue("od-msk-001", uuid.New(), time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = issuer.Verify(code)
	assert.ErrorIs(t, err, ticket.ErrExpiredTicket)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := ticket.NewIssuer("signing-key", time.Hour)
	_, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ticket.ErrInvalidTicket)
}
