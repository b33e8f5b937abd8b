package readstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"unihub/internal/infra"
	"unihub/internal/infra/db"
	"unihub/internal/usecase/shared"
)

const programColumns = `id, university_id, title, level, format, duration_years, has_budget, description`

type ProgramReadStore struct{}

func NewProgramReadStore() *ProgramReadStore {
	return &ProgramReadStore{}
}

func (r *ProgramReadStore) List(ctx context.Context, dbtx db.DBTX, filter shared.ProgramFilter, afterID string, limit int32) ([]*shared.ProgramSnapshot, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+programColumns+`
		FROM programs
		WHERE ($1 = '' OR university_id = $1)
		  AND ($2 = '' OR level = $2)
		  AND ($3 = '' OR format = $3)
		  AND ($4::boolean IS NULL OR has_budget = $4)
		  AND id > $5
		ORDER BY id
		LIMIT $6`,
		filter.UniversityID, filter.Level, filter.Format, filter.HasBudget, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list programs", err)
	}
	defer rows.Close()

	var result []*shared.ProgramSnapshot
	for rows.Next() {
		snap, err := scanProgram(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan program row", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read program rows", err)
	}
	return result, nil
}

func (r *ProgramReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.ProgramSnapshot, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = $1`, id)

	snap, err := scanProgram(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("program not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find program by id", err)
	}
	return snap, nil
}

func scanProgram(row pgx.Row) (*shared.ProgramSnapshot, error) {
	var snap shared.ProgramSnapshot
	if err := row.Scan(&snap.ID, &snap.UniversityID, &snap.Title, &snap.Level,
		&snap.Format, &snap.DurationYears, &snap.HasBudget, &snap.Description); err != nil {
		return nil, err
	}
	return &snap, nil
}
