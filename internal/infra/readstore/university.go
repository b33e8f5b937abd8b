package readstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"unihub/internal/infra"
	"unihub/internal/infra/db"
	"unihub/internal/usecase/shared"
)

const universityColumns = `id, title, short_title, city, region, description,
	contact_email, contact_phone, website_url, logo_url, has_dormitory, has_open_day, extra`

type UniversityReadStore struct{}

func NewUniversityReadStore() *UniversityReadStore {
	return &UniversityReadStore{}
}

// List returns universities after the cursor id, ordered by id, at most
// limit rows. Nil filter pointers leave the column unconstrained.
func (r *UniversityReadStore) List(ctx context.Context, dbtx db.DBTX, filter shared.UniversityFilter, afterID string, limit int32) ([]*shared.UniversitySnapshot, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+universityColumns+`
		FROM universities
		WHERE ($1 = '' OR city = $1)
		  AND ($2::boolean IS NULL OR has_dormitory = $2)
		  AND ($3::boolean IS NULL OR has_open_day = $3)
		  AND id > $4
		ORDER BY id
		LIMIT $5`,
		filter.City, filter.HasDormitory, filter.HasOpenDay, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list universities", err)
	}
	defer rows.Close()

	var result []*shared.UniversitySnapshot
	for rows.Next() {
		snap, err := scanUniversity(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan university row", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read university rows", err)
	}
	return result, nil
}

func (r *UniversityReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.UniversitySnapshot, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+universityColumns+` FROM universities WHERE id = $1`, id)

	snap, err := scanUniversity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("university not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find university by id", err)
	}
	return snap, nil
}

func scanUniversity(row pgx.Row) (*shared.UniversitySnapshot, error) {
	var (
		snap      shared.UniversitySnapshot
		extraJSON []byte
	)
	if err := row.Scan(&snap.ID, &snap.Title, &snap.ShortTitle, &snap.City, &snap.Region,
		&snap.Description, &snap.ContactEmail, &snap.ContactPhone, &snap.WebsiteURL,
		&snap.LogoURL, &snap.HasDormitory, &snap.HasOpenDay, &extraJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(extraJSON, &snap.Extra); err != nil {
		snap.Extra = map[string]any{}
	}
	return &snap, nil
}
