package response

import (
	"time"

	"github.com/google/uuid"

	"unihub/internal/domain/profile"
)

type ProfileResponse struct {
	ID        uuid.UUID      `json:"id"`
	UserID    string         `json:"user_id"`
	Role      string         `json:"role"`
	Scopes    []string       `json:"scopes"`
	FullName  string         `json:"full_name,omitempty"`
	Email     string         `json:"email,omitempty"`
	Locale    string         `json:"locale,omitempty"`
	Settings  map[string]any `json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func FromProfile(p *profile.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID(),
		UserID:    p.ExternalID(),
		Role:      p.Role().String(),
		Scopes:    p.Scopes(),
		FullName:  p.FullName(),
		Email:     p.Email(),
		Locale:    p.Locale(),
		Settings:  p.Settings(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
