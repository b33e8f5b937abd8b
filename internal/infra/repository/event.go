package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"unihub/internal/domain/campusevent"
	"unihub/internal/infra"
	"unihub/internal/infra/db"
)

const campusEventColumns = `id, title, subtitle, description, category, starts_at, ends_at,
	location, capacity, remaining, registration_deadline, status`

const eventRegistrationColumns = `id, event_id, user_id, status, form_payload, ticket, created_at`

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) FindByID(ctx context.Context, dbtx db.DBTX, id string) (*campusevent.Event, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+campusEventColumns+` FROM campus_events WHERE id = $1`, id)

	event, err := scanCampusEventEntity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("campus event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campus event", err)
	}
	return event, nil
}

// CreateRegistration inserts the registration. The UNIQUE(event_id, user_id)
// constraint surfaces a duplicate attempt as KindDuplicateKey.
func (r *EventRepository) CreateRegistration(ctx context.Context, dbtx db.DBTX, reg *campusevent.Registration) error {
	payloadJSON, err := json.Marshal(reg.FormPayload())
	if err != nil {
		return infra.WrapRepoErr("failed to encode form payload", err)
	}
	ticketJSON, err := json.Marshal(reg.Ticket())
	if err != nil {
		return infra.WrapRepoErr("failed to encode ticket", err)
	}

	_, err = dbtx.Exec(ctx, `
		INSERT INTO event_registrations (id, event_id, user_id, status, form_payload, ticket)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		reg.ID(), reg.EventID(), reg.UserID(), reg.Status(), payloadJSON, ticketJSON)
	if err != nil {
		return infra.WrapRepoErr("failed to create event registration", err)
	}
	return nil
}

func (r *EventRepository) FindRegistration(ctx context.Context, dbtx db.DBTX, eventID string, userID uuid.UUID) (*campusevent.Registration, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+eventRegistrationColumns+` FROM event_registrations WHERE event_id = $1 AND user_id = $2`,
		eventID, userID)

	reg, err := scanEventRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event registration", err)
	}
	return reg, nil
}

func scanCampusEventEntity(row pgx.Row) (*campusevent.Event, error) {
	var (
		id, title, subtitle, description, category string
		startsAt, endsAt                           time.Time
		locationJSON                               []byte
		capacity, remaining                        *int32
		registrationDeadline                       *time.Time
		status                                     string
	)
	if err := row.Scan(&id, &title, &subtitle, &description, &category,
		&startsAt, &endsAt, &locationJSON, &capacity, &remaining,
		&registrationDeadline, &status); err != nil {
		return nil, err
	}

	var location map[string]any
	if err := json.Unmarshal(locationJSON, &location); err != nil {
		location = map[string]any{}
	}

	return campusevent.ReconstructEvent(
		id, title, subtitle, description, category,
		startsAt, endsAt, location, capacity, remaining,
		registrationDeadline, campusevent.Status(status),
	), nil
}

func scanEventRegistration(row pgx.Row) (*campusevent.Registration, error) {
	var (
		id          uuid.UUID
		eventID     string
		userID      uuid.UUID
		status      string
		payloadJSON []byte
		ticketJSON  []byte
		createdAt   time.Time
	)
	if err := row.Scan(&id, &eventID, &userID, &status, &payloadJSON, &ticketJSON, &createdAt); err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		payload = map[string]any{}
	}
	var ticket map[string]any
	if err := json.Unmarshal(ticketJSON, &ticket); err != nil {
		ticket = map[string]any{}
	}

	return campusevent.ReconstructRegistration(id, eventID, userID, status, payload, ticket, createdAt), nil
}
