package campusevent

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCanceled  Status = "canceled"
	StatusFinished  Status = "finished"
)

func (s Status) String() string {
	return string(s)
}

// Event is a campus-wide happening students register for with their
// profile, unlike open days which are registered by email.
type Event struct {
	id                   string
	title                string
	subtitle             string
	description          string
	category             string
	startsAt             time.Time
	endsAt               time.Time
	location             map[string]any
	capacity             *int32
	remaining            *int32
	registrationDeadline *time.Time
	status               Status
}

func ReconstructEvent(
	id, title, subtitle, description, category string,
	startsAt, endsAt time.Time,
	location map[string]any,
	capacity, remaining *int32,
	registrationDeadline *time.Time,
	status Status,
) *Event {
	if location == nil {
		location = map[string]any{}
	}
	return &Event{
		id:                   id,
		title:                title,
		subtitle:             subtitle,
		description:          description,
		category:             category,
		startsAt:             startsAt,
		endsAt:               endsAt,
		location:             location,
		capacity:             capacity,
		remaining:            remaining,
		registrationDeadline: registrationDeadline,
		status:               status,
	}
}

// AcceptsRegistrationsAt reports whether the event is still scheduled and
// its deadline, if any, has not passed.
func (e *Event) AcceptsRegistrationsAt(now time.Time) bool {
	if e.status != StatusScheduled {
		return false
	}
	if e.registrationDeadline != nil && now.After(*e.registrationDeadline) {
		return false
	}
	return true
}

func (e *Event) ID() string                       { return e.id }
func (e *Event) Title() string                    { return e.title }
func (e *Event) Subtitle() string                 { return e.subtitle }
func (e *Event) Description() string              { return e.description }
func (e *Event) Category() string                 { return e.category }
func (e *Event) StartsAt() time.Time              { return e.startsAt }
func (e *Event) EndsAt() time.Time                { return e.endsAt }
func (e *Event) Location() map[string]any         { return e.location }
func (e *Event) Capacity() *int32                 { return e.capacity }
func (e *Event) Remaining() *int32                { return e.remaining }
func (e *Event) RegistrationDeadline() *time.Time { return e.registrationDeadline }
func (e *Event) Status() Status                   { return e.status }

// Registration links a profile to an event. UNIQUE(event_id, user_id) in
// storage makes creation naturally idempotent.
type Registration struct {
	id          uuid.UUID
	eventID     string
	userID      uuid.UUID
	status      string
	formPayload map[string]any
	ticket      map[string]any
	createdAt   time.Time
}

func NewRegistration(eventID string, userID uuid.UUID, formPayload map[string]any) *Registration {
	if formPayload == nil {
		formPayload = map[string]any{}
	}
	return &Registration{
		id:          uuid.New(),
		eventID:     eventID,
		userID:      userID,
		status:      "confirmed",
		formPayload: formPayload,
		ticket:      map[string]any{},
	}
}

func ReconstructRegistration(
	id uuid.UUID,
	eventID string,
	userID uuid.UUID,
	status string,
	formPayload, ticket map[string]any,
	createdAt time.Time,
) *Registration {
	if formPayload == nil {
		formPayload = map[string]any{}
	}
	if ticket == nil {
		ticket = map[string]any{}
	}
	return &Registration{
		id:          id,
		eventID:     eventID,
		userID:      userID,
		status:      status,
		formPayload: formPayload,
		ticket:      ticket,
		createdAt:   createdAt,
	}
}

func (r *Registration) AttachTicket(code, number string) {
	r.ticket = map[string]any{"code": code, "number": number}
}

func (r *Registration) ID() uuid.UUID               { return r.id }
func (r *Registration) EventID() string             { return r.eventID }
func (r *Registration) UserID() uuid.UUID           { return r.userID }
func (r *Registration) Status() string              { return r.status }
func (r *Registration) FormPayload() map[string]any { return r.formPayload }
func (r *Registration) Ticket() map[string]any      { return r.ticket }
func (r *Registration) CreatedAt() time.Time        { return r.createdAt }
