package shared

import (
	"time"

	"github.com/google/uuid"
)

// Read-side snapshots returned by the readstores. They carry exactly what
// list and detail endpoints render.

type UniversitySnapshot struct {
	ID           string
	Title        string
	ShortTitle   string
	City         string
	Region       string
	Description  string
	ContactEmail string
	ContactPhone string
	WebsiteURL   string
	LogoURL      string
	HasDormitory bool
	HasOpenDay   bool
	Extra        map[string]any
}

type UniversityFilter struct {
	City         string
	HasDormitory *bool
	HasOpenDay   *bool
}

type ProgramSnapshot struct {
	ID            string
	UniversityID  string
	Title         string
	Level         string
	Format        string
	DurationYears int32
	HasBudget     bool
	Description   string
}

type ProgramFilter struct {
	UniversityID string
	Level        string
	Format       string
	HasBudget    *bool
}

type OpenDayEventSnapshot struct {
	ID                   string
	UniversityID         string
	Type                 string
	Title                string
	Description          string
	StartsAt             time.Time
	EndsAt               time.Time
	Location             string
	City                 string
	Capacity             *int32
	Remaining            *int32
	RegistrationOpen     bool
	RegistrationDeadline *time.Time
}

type OpenDayFilter struct {
	UniversityID string
	Type         string
}

type CampusEventSnapshot struct {
	ID                   string
	Title                string
	Subtitle             string
	Description          string
	Category             string
	StartsAt             time.Time
	EndsAt               time.Time
	Location             map[string]any
	Capacity             *int32
	Remaining            *int32
	RegistrationDeadline *time.Time
	Status               string
}

type CampusEventFilter struct {
	Query    string
	Category string
}

type EventRegistrationSnapshot struct {
	ID          uuid.UUID
	EventID     string
	EventTitle  string
	Status      string
	FormPayload map[string]any
	Ticket      map[string]any
	CreatedAt   time.Time
}
