package openday

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyEmail    = errors.New("registration email must not be empty")
	ErrEmptyFullName = errors.New("registration full name must not be empty")
)

// Event is an admission open-day slot. Capacity is optional: events with a
// nil capacity accept an unlimited number of registrations.
type Event struct {
	id                   string
	universityID         string
	eventType            EventType
	title                string
	description          string
	startsAt             time.Time
	endsAt               time.Time
	location             string
	city                 string
	capacity             *int32
	remaining            *int32
	registrationOpen     bool
	registrationDeadline *time.Time
}

func ReconstructEvent(
	id, universityID string,
	eventType EventType,
	title, description string,
	startsAt, endsAt time.Time,
	location, city string,
	capacity, remaining *int32,
	registrationOpen bool,
	registrationDeadline *time.Time,
) *Event {
	return &Event{
		id:                   id,
		universityID:         universityID,
		eventType:            eventType,
		title:                title,
		description:          description,
		startsAt:             startsAt,
		endsAt:               endsAt,
		location:             location,
		city:                 city,
		capacity:             capacity,
		remaining:            remaining,
		registrationOpen:     registrationOpen,
		registrationDeadline: registrationDeadline,
	}
}

// AcceptsRegistrationsAt reports whether the event is open and its
// deadline, if any, has not passed.
func (e *Event) AcceptsRegistrationsAt(now time.Time) bool {
	if !e.registrationOpen {
		return false
	}
	if e.registrationDeadline != nil && now.After(*e.registrationDeadline) {
		return false
	}
	return true
}

func (e *Event) TracksCapacity() bool {
	return e.capacity != nil
}

// EffectiveRemaining is the number of free slots. A remaining counter that
// was never initialized falls back to the full capacity; negative stored
// values are clamped to zero.
func (e *Event) EffectiveRemaining() int32 {
	if e.capacity == nil {
		return 0
	}
	rem := *e.capacity
	if e.remaining != nil {
		rem = *e.remaining
	}
	if rem < 0 {
		rem = 0
	}
	return rem
}

func (e *Event) HasCapacityLeft() bool {
	if !e.TracksCapacity() {
		return true
	}
	return e.EffectiveRemaining() > 0
}

func (e *Event) ID() string                       { return e.id }
func (e *Event) UniversityID() string             { return e.universityID }
func (e *Event) Type() EventType                  { return e.eventType }
func (e *Event) Title() string                    { return e.title }
func (e *Event) Description() string              { return e.description }
func (e *Event) StartsAt() time.Time              { return e.startsAt }
func (e *Event) EndsAt() time.Time                { return e.endsAt }
func (e *Event) Location() string                 { return e.location }
func (e *Event) City() string                     { return e.city }
func (e *Event) Capacity() *int32                 { return e.capacity }
func (e *Event) Remaining() *int32                { return e.remaining }
func (e *Event) RegistrationOpen() bool           { return e.registrationOpen }
func (e *Event) RegistrationDeadline() *time.Time { return e.registrationDeadline }

// Registration is a visitor's confirmed slot at an open day. Registrations
// are keyed naturally by (event, email) so the same visitor cannot hold two
// slots at the same event.
type Registration struct {
	id             uuid.UUID
	eventID        string
	programID      *string
	userID         *uuid.UUID
	fullName       string
	email          string
	phone          string
	comment        string
	status         RegistrationStatus
	ticket         map[string]any
	idempotencyKey string
	requestID      string
	createdAt      time.Time
}

func NewRegistration(
	eventID string,
	programID *string,
	userID *uuid.UUID,
	fullName, email, phone, comment string,
	idempotencyKey, requestID string,
) (*Registration, error) {
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	return &Registration{
		id:             uuid.New(),
		eventID:        eventID,
		programID:      programID,
		userID:         userID,
		fullName:       fullName,
		email:          email,
		phone:          phone,
		comment:        comment,
		status:         RegistrationConfirmed,
		ticket:         map[string]any{},
		idempotencyKey: idempotencyKey,
		requestID:      requestID,
	}, nil
}

func ReconstructRegistration(
	id uuid.UUID,
	eventID string,
	programID *string,
	userID *uuid.UUID,
	fullName, email, phone, comment string,
	status RegistrationStatus,
	ticket map[string]any,
	idempotencyKey, requestID string,
	createdAt time.Time,
) *Registration {
	if ticket == nil {
		ticket = map[string]any{}
	}
	return &Registration{
		id:             id,
		eventID:        eventID,
		programID:      programID,
		userID:         userID,
		fullName:       fullName,
		email:          email,
		phone:          phone,
		comment:        comment,
		status:         status,
		ticket:         ticket,
		idempotencyKey: idempotencyKey,
		requestID:      requestID,
		createdAt:      createdAt,
	}
}

// AttachTicket stores the signed ticket code alongside its display number.
func (r *Registration) AttachTicket(code, number string) {
	r.ticket = map[string]any{"code": code, "number": number}
}

func (r *Registration) ID() uuid.UUID              { return r.id }
func (r *Registration) EventID() string            { return r.eventID }
func (r *Registration) ProgramID() *string         { return r.programID }
func (r *Registration) UserID() *uuid.UUID         { return r.userID }
func (r *Registration) FullName() string           { return r.fullName }
func (r *Registration) Email() string              { return r.email }
func (r *Registration) Phone() string              { return r.phone }
func (r *Registration) Comment() string            { return r.comment }
func (r *Registration) Status() RegistrationStatus { return r.status }
func (r *Registration) Ticket() map[string]any     { return r.ticket }
func (r *Registration) IdempotencyKey() string     { return r.idempotencyKey }
func (r *Registration) RequestID() string          { return r.requestID }
func (r *Registration) CreatedAt() time.Time       { return r.createdAt }
