package queries

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"

	"unihub/internal/infra"
	"unihub/internal/infra/db"
	"unihub/internal/infra/readstore"
	"unihub/internal/pkg/errs"
	"unihub/internal/usecase/shared"
)

type AdmissionsQueries interface {
	ListUniversities(ctx context.Context, filter shared.UniversityFilter, cursor string, limit int) (Page[*UniversityView], error)
	GetUniversity(ctx context.Context, id string) (*UniversityView, error)
	ListPrograms(ctx context.Context, filter shared.ProgramFilter, cursor string, limit int) (Page[*ProgramView], error)
	ListOpenDays(ctx context.Context, filter shared.OpenDayFilter, cursor string, limit int) (Page[*OpenDayEventView], error)
}

type UniversityReadStore interface {
	List(ctx context.Context, dbtx db.DBTX, filter shared.UniversityFilter, afterID string, limit int32) ([]*shared.UniversitySnapshot, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.UniversitySnapshot, error)
}

type ProgramReadStore interface {
	List(ctx context.Context, dbtx db.DBTX, filter shared.ProgramFilter, afterID string, limit int32) ([]*shared.ProgramSnapshot, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.ProgramSnapshot, error)
}

type OpenDayReadStore interface {
	List(ctx context.Context, dbtx db.DBTX, filter shared.OpenDayFilter, afterID string, limit int32) ([]*shared.OpenDayEventSnapshot, error)
}

type admissionsQueriesImpl struct {
	pool         *pgxpool.Pool
	universities UniversityReadStore
	programs     ProgramReadStore
	openDays     OpenDayReadStore
}

func NewAdmissionsQueries(pool *pgxpool.Pool) AdmissionsQueries {
	return &admissionsQueriesImpl{
		pool:         pool,
		universities: readstore.NewUniversityReadStore(),
		programs:     readstore.NewProgramReadStore(),
		openDays:     readstore.NewOpenDayReadStore(),
	}
}

func (q *admissionsQueriesImpl) ListUniversities(ctx context.Context, filter shared.UniversityFilter, cursor string, limit int) (Page[*UniversityView], error) {
	n := ValidateLimit(limit)
	rows, err := q.universities.List(ctx, q.pool, filter, DecodeCursor(cursor), n+1)
	if err != nil {
		return Page[*UniversityView]{}, err
	}

	views, err := copyViews[UniversityView](rows)
	if err != nil {
		return Page[*UniversityView]{}, err
	}
	return buildPage(views, n, func(v *UniversityView) string { return v.ID }), nil
}

func (q *admissionsQueriesImpl) GetUniversity(ctx context.Context, id string) (*UniversityView, error) {
	snap, err := q.universities.FindByID(ctx, q.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUniversityNotFound)
		}
		return nil, err
	}

	var view UniversityView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to convert university view")
	}
	return &view, nil
}

func (q *admissionsQueriesImpl) ListPrograms(ctx context.Context, filter shared.ProgramFilter, cursor string, limit int) (Page[*ProgramView], error) {
	n := ValidateLimit(limit)
	rows, err := q.programs.List(ctx, q.pool, filter, DecodeCursor(cursor), n+1)
	if err != nil {
		return Page[*ProgramView]{}, err
	}

	views, err := copyViews[ProgramView](rows)
	if err != nil {
		return Page[*ProgramView]{}, err
	}
	return buildPage(views, n, func(v *ProgramView) string { return v.ID }), nil
}

// ListOpenDays returns an empty page when no university is given, the
// catalog is too large to list unscoped.
func (q *admissionsQueriesImpl) ListOpenDays(ctx context.Context, filter shared.OpenDayFilter, cursor string, limit int) (Page[*OpenDayEventView], error) {
	if filter.UniversityID == "" {
		return Page[*OpenDayEventView]{Items: []*OpenDayEventView{}}, nil
	}

	n := ValidateLimit(limit)
	rows, err := q.openDays.List(ctx, q.pool, filter, DecodeCursor(cursor), n+1)
	if err != nil {
		return Page[*OpenDayEventView]{}, err
	}

	views, err := copyViews[OpenDayEventView](rows)
	if err != nil {
		return Page[*OpenDayEventView]{}, err
	}
	return buildPage(views, n, func(v *OpenDayEventView) string { return v.ID }), nil
}

func copyViews[V any, S any](rows []S) ([]*V, error) {
	views := make([]*V, len(rows))
	for i, row := range rows {
		views[i] = new(V)
		if err := copier.Copy(views[i], row); err != nil {
			return nil, errs.Wrap(err, "failed to convert view")
		}
	}
	return views, nil
}
