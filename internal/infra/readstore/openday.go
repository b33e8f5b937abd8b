package readstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"unihub/internal/infra"
	"unihub/internal/infra/db"
	"unihub/internal/usecase/shared"
)

const openDayColumns = `id, university_id, type, title, description, starts_at, ends_at,
	location, city, capacity, remaining, registration_open, registration_deadline`

type OpenDayReadStore struct{}

func NewOpenDayReadStore() *OpenDayReadStore {
	return &OpenDayReadStore{}
}

func (r *OpenDayReadStore) List(ctx context.Context, dbtx db.DBTX, filter shared.OpenDayFilter, afterID string, limit int32) ([]*shared.OpenDayEventSnapshot, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+openDayColumns+`
		FROM open_day_events
		WHERE university_id = $1
		  AND ($2 = '' OR type = $2)
		  AND id > $3
		ORDER BY id
		LIMIT $4`,
		filter.UniversityID, filter.Type, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open day events", err)
	}
	defer rows.Close()

	var result []*shared.OpenDayEventSnapshot
	for rows.Next() {
		snap, err := scanOpenDayEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan open day event row", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read open day event rows", err)
	}
	return result, nil
}

func (r *OpenDayReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.OpenDayEventSnapshot, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+openDayColumns+` FROM open_day_events WHERE id = $1`, id)

	snap, err := scanOpenDayEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("open day event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find open day event by id", err)
	}
	return snap, nil
}

func scanOpenDayEvent(row pgx.Row) (*shared.OpenDayEventSnapshot, error) {
	var snap shared.OpenDayEventSnapshot
	if err := row.Scan(&snap.ID, &snap.UniversityID, &snap.Type, &snap.Title,
		&snap.Description, &snap.StartsAt, &snap.EndsAt, &snap.Location, &snap.City,
		&snap.Capacity, &snap.Remaining, &snap.RegistrationOpen, &snap.RegistrationDeadline); err != nil {
		return nil, err
	}
	return &snap, nil
}
