package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"unihub/internal/domain/openday"
	"unihub/internal/infra"
	"unihub/internal/infra/db"
)

const openDayEventColumns = `id, university_id, type, title, description, starts_at, ends_at,
	location, city, capacity, remaining, registration_open, registration_deadline`

const openDayRegistrationColumns = `id, event_id, program_id, user_id, full_name, email, phone,
	comment, status, ticket, idempotency_key, request_id, created_at`

type OpenDayRepository struct{}

func NewOpenDayRepository() *OpenDayRepository {
	return &OpenDayRepository{}
}

// LockEventByID loads the event row under FOR UPDATE so capacity checks and
// the decrement happen against a stable row within the transaction.
func (r *OpenDayRepository) LockEventByID(ctx context.Context, dbtx db.DBTX, id string) (*openday.Event, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+openDayEventColumns+` FROM open_day_events WHERE id = $1 FOR UPDATE`, id)

	event, err := scanOpenDayEventEntity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("open day event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock open day event", err)
	}
	return event, nil
}

func (r *OpenDayRepository) FindEventByID(ctx context.Context, dbtx db.DBTX, id string) (*openday.Event, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+openDayEventColumns+` FROM open_day_events WHERE id = $1`, id)

	event, err := scanOpenDayEventEntity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("open day event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find open day event", err)
	}
	return event, nil
}

// DecrementRemaining takes one slot. A NULL remaining counter is seeded from
// capacity first, and the result never goes below zero. Events without a
// capacity are left untouched.
func (r *OpenDayRepository) DecrementRemaining(ctx context.Context, dbtx db.DBTX, id string) error {
	_, err := dbtx.Exec(ctx, `
		UPDATE open_day_events
		SET remaining = GREATEST(COALESCE(remaining, capacity) - 1, 0), updated_at = now()
		WHERE id = $1 AND capacity IS NOT NULL`,
		id)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement remaining slots", err)
	}
	return nil
}

func (r *OpenDayRepository) CreateRegistration(ctx context.Context, dbtx db.DBTX, reg *openday.Registration) error {
	ticketJSON, err := json.Marshal(reg.Ticket())
	if err != nil {
		return infra.WrapRepoErr("failed to encode ticket", err)
	}

	_, err = dbtx.Exec(ctx, `
		INSERT INTO open_day_registrations
			(id, event_id, program_id, user_id, full_name, email, phone, comment, status, ticket, idempotency_key, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		reg.ID(), reg.EventID(), reg.ProgramID(), reg.UserID(),
		reg.FullName(), reg.Email(), reg.Phone(), reg.Comment(),
		reg.Status().String(), ticketJSON, reg.IdempotencyKey(), reg.RequestID())
	if err != nil {
		return infra.WrapRepoErr("failed to create open day registration", err)
	}
	return nil
}

func (r *OpenDayRepository) FindRegistrationByIdempotencyKey(ctx context.Context, dbtx db.DBTX, key string) (*openday.Registration, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+openDayRegistrationColumns+` FROM open_day_registrations WHERE idempotency_key = $1`, key)

	reg, err := scanOpenDayRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("open day registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find registration by idempotency key", err)
	}
	return reg, nil
}

func (r *OpenDayRepository) FindRegistrationByEventEmail(ctx context.Context, dbtx db.DBTX, eventID, email string) (*openday.Registration, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+openDayRegistrationColumns+` FROM open_day_registrations WHERE event_id = $1 AND email = $2`,
		eventID, email)

	reg, err := scanOpenDayRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("open day registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find registration by event and email", err)
	}
	return reg, nil
}

func scanOpenDayEventEntity(row pgx.Row) (*openday.Event, error) {
	var (
		id, universityID, eventType, title, description string
		startsAt, endsAt                                time.Time
		location, city                                  string
		capacity, remaining                             *int32
		registrationOpen                                bool
		registrationDeadline                            *time.Time
	)
	if err := row.Scan(&id, &universityID, &eventType, &title, &description,
		&startsAt, &endsAt, &location, &city, &capacity, &remaining,
		&registrationOpen, &registrationDeadline); err != nil {
		return nil, err
	}

	return openday.ReconstructEvent(
		id, universityID, openday.EventType(eventType), title, description,
		startsAt, endsAt, location, city, capacity, remaining,
		registrationOpen, registrationDeadline,
	), nil
}

func scanOpenDayRegistration(row pgx.Row) (*openday.Registration, error) {
	var (
		id              uuid.UUID
		eventID         string
		programID       *string
		userID          *uuid.UUID
		fullName        string
		email           string
		phone           string
		comment         string
		status          string
		ticketJSON      []byte
		idempotencyKey  string
		requestID       string
		createdAt       time.Time
	)
	if err := row.Scan(&id, &eventID, &programID, &userID, &fullName, &email,
		&phone, &comment, &status, &ticketJSON, &idempotencyKey, &requestID, &createdAt); err != nil {
		return nil, err
	}

	var ticket map[string]any
	if err := json.Unmarshal(ticketJSON, &ticket); err != nil {
		ticket = map[string]any{}
	}

	return openday.ReconstructRegistration(
		id, eventID, programID, userID, fullName, email, phone, comment,
		openday.RegistrationStatus(status), ticket, idempotencyKey, requestID, createdAt,
	), nil
}
