package profile

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrEmptyExternalID = errors.New("external user id must not be empty")
	ErrInvalidScope    = errors.New("scope must not be empty")
)

// Profile is the local identity attached to an external user id coming
// from a verified signed payload. A profile is created lazily on first
// authenticated request and enriched later when the user links a
// university account.
type Profile struct {
	id         uuid.UUID
	externalID string
	role       Role
	scopes     []string
	fullName   string
	email      string
	locale     string
	settings   map[string]any
	createdAt  time.Time
	updatedAt  time.Time
}

// NewProfile builds the default profile for a previously unseen
// external user id. Everyone starts as an applicant with no scopes.
func NewProfile(externalID, fullName, email, locale string) (*Profile, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, ErrEmptyExternalID
	}
	return &Profile{
		id:         uuid.New(),
		externalID: externalID,
		role:       RoleApplicant,
		scopes:     []string{},
		fullName:   fullName,
		email:      email,
		locale:     locale,
		settings:   map[string]any{},
	}, nil
}

func ReconstructProfile(
	id uuid.UUID,
	externalID string,
	role Role,
	scopes []string,
	fullName, email, locale string,
	settings map[string]any,
	createdAt, updatedAt time.Time,
) *Profile {
	if scopes == nil {
		scopes = []string{}
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return &Profile{
		id:         id,
		externalID: externalID,
		role:       role,
		scopes:     scopes,
		fullName:   fullName,
		email:      email,
		locale:     locale,
		settings:   settings,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Grant replaces role and scopes after a successful university login.
func (p *Profile) Grant(role Role, scopes []string) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	for _, s := range scopes {
		if strings.TrimSpace(s) == "" {
			return ErrInvalidScope
		}
	}
	p.role = role
	p.scopes = append([]string{}, scopes...)
	return nil
}

// Revoke drops the user back to the default applicant role.
func (p *Profile) Revoke() {
	p.role = RoleApplicant
	p.scopes = []string{}
}

func (p *Profile) HasScope(scope string) bool {
	for _, s := range p.scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func (p *Profile) IsAdmin() bool {
	return p.role == RoleAdmin
}

func (p *Profile) ID() uuid.UUID            { return p.id }
func (p *Profile) ExternalID() string       { return p.externalID }
func (p *Profile) Role() Role               { return p.role }
func (p *Profile) Scopes() []string         { return p.scopes }
func (p *Profile) FullName() string         { return p.fullName }
func (p *Profile) Email() string            { return p.email }
func (p *Profile) Locale() string           { return p.locale }
func (p *Profile) Settings() map[string]any { return p.settings }
func (p *Profile) CreatedAt() time.Time     { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time     { return p.updatedAt }
