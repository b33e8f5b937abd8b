package readstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"unihub/internal/infra"
	"unihub/internal/infra/db"
	"unihub/internal/usecase/shared"
)

const campusEventColumns = `id, title, subtitle, description, category, starts_at, ends_at,
	location, capacity, remaining, registration_deadline, status`

type CampusEventReadStore struct{}

func NewCampusEventReadStore() *CampusEventReadStore {
	return &CampusEventReadStore{}
}

// List returns scheduled events only. The text query matches title and
// description case-insensitively.
func (r *CampusEventReadStore) List(ctx context.Context, dbtx db.DBTX, filter shared.CampusEventFilter, afterID string, limit int32) ([]*shared.CampusEventSnapshot, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+campusEventColumns+`
		FROM campus_events
		WHERE status = 'scheduled'
		  AND ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category = $2)
		  AND id > $3
		ORDER BY id
		LIMIT $4`,
		filter.Query, filter.Category, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campus events", err)
	}
	defer rows.Close()

	var result []*shared.CampusEventSnapshot
	for rows.Next() {
		snap, err := scanCampusEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan campus event row", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read campus event rows", err)
	}
	return result, nil
}

func (r *CampusEventReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.CampusEventSnapshot, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+campusEventColumns+` FROM campus_events WHERE id = $1`, id)

	snap, err := scanCampusEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("campus event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campus event by id", err)
	}
	return snap, nil
}

// ListRegistrationsByUser returns the caller's registrations, newest first,
// joined with the event title for display.
func (r *CampusEventReadStore) ListRegistrationsByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*shared.EventRegistrationSnapshot, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT er.id, er.event_id, ce.title, er.status, er.form_payload, er.ticket, er.created_at
		FROM event_registrations er
		JOIN campus_events ce ON ce.id = er.event_id
		WHERE er.user_id = $1
		ORDER BY er.created_at DESC`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event registrations", err)
	}
	defer rows.Close()

	var result []*shared.EventRegistrationSnapshot
	for rows.Next() {
		var (
			snap        shared.EventRegistrationSnapshot
			payloadJSON []byte
			ticketJSON  []byte
		)
		if err := rows.Scan(&snap.ID, &snap.EventID, &snap.EventTitle, &snap.Status,
			&payloadJSON, &ticketJSON, &snap.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event registration row", err)
		}
		if err := json.Unmarshal(payloadJSON, &snap.FormPayload); err != nil {
			snap.FormPayload = map[string]any{}
		}
		if err := json.Unmarshal(ticketJSON, &snap.Ticket); err != nil {
			snap.Ticket = map[string]any{}
		}
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event registration rows", err)
	}
	return result, nil
}

func scanCampusEvent(row pgx.Row) (*shared.CampusEventSnapshot, error) {
	var (
		snap         shared.CampusEventSnapshot
		locationJSON []byte
	)
	if err := row.Scan(&snap.ID, &snap.Title, &snap.Subtitle, &snap.Description,
		&snap.Category, &snap.StartsAt, &snap.EndsAt, &locationJSON,
		&snap.Capacity, &snap.Remaining, &snap.RegistrationDeadline, &snap.Status); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(locationJSON, &snap.Location); err != nil {
		snap.Location = map[string]any{}
	}
	return &snap, nil
}
