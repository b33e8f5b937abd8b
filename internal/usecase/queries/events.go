package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"

	"unihub/internal/infra"
	"unihub/internal/infra/db"
	"unihub/internal/infra/readstore"
	"unihub/internal/pkg/errs"
	"unihub/internal/usecase/shared"
)

type EventQueries interface {
	List(ctx context.Context, filter shared.CampusEventFilter, cursor string, limit int) (Page[*CampusEventView], error)
	GetByID(ctx context.Context, id string) (*CampusEventView, error)
	ListMyRegistrations(ctx context.Context, userID uuid.UUID) ([]*EventRegistrationView, error)
}

type CampusEventReadStore interface {
	List(ctx context.Context, dbtx db.DBTX, filter shared.CampusEventFilter, afterID string, limit int32) ([]*shared.CampusEventSnapshot, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.CampusEventSnapshot, error)
	ListRegistrationsByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*shared.EventRegistrationSnapshot, error)
}

type eventQueriesImpl struct {
	pool   *pgxpool.Pool
	events CampusEventReadStore
}

func NewEventQueries(pool *pgxpool.Pool) EventQueries {
	return &eventQueriesImpl{
		pool:   pool,
		events: readstore.NewCampusEventReadStore(),
	}
}

func (q *eventQueriesImpl) List(ctx context.Context, filter shared.CampusEventFilter, cursor string, limit int) (Page[*CampusEventView], error) {
	n := ValidateLimit(limit)
	rows, err := q.events.List(ctx, q.pool, filter, DecodeCursor(cursor), n+1)
	if err != nil {
		return Page[*CampusEventView]{}, err
	}

	views, err := copyViews[CampusEventView](rows)
	if err != nil {
		return Page[*CampusEventView]{}, err
	}
	return buildPage(views, n, func(v *CampusEventView) string { return v.ID }), nil
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id string) (*CampusEventView, error) {
	snap, err := q.events.FindByID(ctx, q.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, err
	}

	var view CampusEventView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Wrap(err, "failed to convert campus event view")
	}
	return &view, nil
}

func (q *eventQueriesImpl) ListMyRegistrations(ctx context.Context, userID uuid.UUID) ([]*EventRegistrationView, error) {
	rows, err := q.events.ListRegistrationsByUser(ctx, q.pool, userID)
	if err != nil {
		return nil, err
	}

	views, err := copyViews[EventRegistrationView](rows)
	if err != nil {
		return nil, err
	}
	return views, nil
}
