//go:build unit

package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unihub/internal/domain/profile"
)

func TestNewProfile(t *testing.T) {
	t.Run("defaults to applicant with no scopes", func(t *testing.T) {
		p, err := profile.NewProfile("1001", "Ivan Ivanov", "", "ru")
		require.NoError(t, err)

		assert.Equal(t, "1001", p.ExternalID())
		assert.Equal(t, profile.RoleApplicant, p.Role())
		assert.Empty(t, p.Scopes())
		assert.False(t, p.IsAdmin())
	})

	t.Run("rejects empty external id", func(t *testing.T) {
		_, err := profile.NewProfile("   ", "Anyone", "", "en")
		assert.ErrorIs(t, err, profile.ErrEmptyExternalID)
	})
}

func TestGrant(t *testing.T) {
	p, err := profile.NewProfile("1001", "Ivan Ivanov", "", "ru")
	require.NoError(t, err)

	t.Run("replaces role and scopes", func(t *testing.T) {
		require.NoError(t, p.Grant(profile.RoleStudent, []string{"events:read", "events:register"}))
		assert.Equal(t, profile.RoleStudent, p.Role())
		assert.True(t, p.HasScope("events:register"))
		assert.False(t, p.HasScope("admin:write"))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		assert.ErrorIs(t, p.Grant(profile.Role("wizard"), nil), profile.ErrInvalidRole)
	})

	t.Run("rejects blank scope", func(t *testing.T) {
		assert.ErrorIs(t, p.Grant(profile.RoleStaff, []string{" "}), profile.ErrInvalidScope)
	})

	t.Run("revoke drops back to applicant", func(t *testing.T) {
		p.Revoke()
		assert.Equal(t, profile.RoleApplicant, p.Role())
		assert.Empty(t, p.Scopes())
	})
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"applicant", "student", "staff", "deanery", "career_center", "dorm_manager", "librarian", "supervisor", "admin"} {
		role, err := profile.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := profile.NewRole("wizard")
	assert.ErrorIs(t, err, profile.ErrInvalidRole)
}
