package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UniversityView struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	ShortTitle   string         `json:"short_title,omitempty"`
	City         string         `json:"city,omitempty"`
	Region       string         `json:"region,omitempty"`
	Description  string         `json:"description,omitempty"`
	ContactEmail string         `json:"contact_email,omitempty"`
	ContactPhone string         `json:"contact_phone,omitempty"`
	WebsiteURL   string         `json:"website_url,omitempty"`
	LogoURL      string         `json:"logo_url,omitempty"`
	HasDormitory bool           `json:"has_dormitory"`
	HasOpenDay   bool           `json:"has_open_day"`
	Extra        map[string]any `json:"extra,omitempty"`
}

type ProgramView struct {
	ID            string `json:"id"`
	UniversityID  string `json:"university_id"`
	Title         string `json:"title"`
	Level         string `json:"level,omitempty"`
	Format        string `json:"format,omitempty"`
	DurationYears int32  `json:"duration_years,omitempty"`
	HasBudget     bool   `json:"has_budget"`
	Description   string `json:"description,omitempty"`
}

type OpenDayEventView struct {
	ID                   string     `json:"id"`
	UniversityID         string     `json:"university_id"`
	Type                 string     `json:"type"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	StartsAt             time.Time  `json:"starts_at"`
	EndsAt               time.Time  `json:"ends_at"`
	Location             string     `json:"location,omitempty"`
	City                 string     `json:"city,omitempty"`
	Capacity             *int32     `json:"capacity,omitempty"`
	Remaining            *int32     `json:"remaining,omitempty"`
	RegistrationOpen     bool       `json:"registration_open"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
}

type CampusEventView struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	Subtitle             string         `json:"subtitle,omitempty"`
	Description          string         `json:"description,omitempty"`
	Category             string         `json:"category,omitempty"`
	StartsAt             time.Time      `json:"starts_at"`
	EndsAt               time.Time      `json:"ends_at"`
	Location             map[string]any `json:"location,omitempty"`
	Capacity             *int32         `json:"capacity,omitempty"`
	Remaining            *int32         `json:"remaining,omitempty"`
	RegistrationDeadline *time.Time     `json:"registration_deadline,omitempty"`
	Status               string         `json:"status"`
}

type EventRegistrationView struct {
	ID          uuid.UUID      `json:"id"`
	EventID     string         `json:"event_id"`
	EventTitle  string         `json:"event_title"`
	Status      string         `json:"status"`
	FormPayload map[string]any `json:"form_payload,omitempty"`
	Ticket      map[string]any `json:"ticket,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Page is a cursor-paginated result set. NextCursor is nil when the page
// was not full, meaning there is nothing more to fetch.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`
}

// buildPage trims the limit+1 overfetch down to the page size and encodes
// the continuation cursor from the last visible item.
func buildPage[T any](items []T, limit int32, lastID func(T) string) Page[T] {
	page := Page[T]{Items: items}
	if page.Items == nil {
		page.Items = []T{}
	}
	if int32(len(items)) > limit {
		page.Items = items[:limit]
		cursor := EncodeCursor(lastID(page.Items[len(page.Items)-1]))
		page.NextCursor = &cursor
	}
	return page
}
