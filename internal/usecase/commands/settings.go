package commands

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"unihub/internal/domain/profile"
	"unihub/internal/infra"
	"unihub/internal/pkg/errs"
	"unihub/internal/pkg/initdata"
)

type SettingsCommands interface {
	Get(ctx context.Context, rawInitData string) (map[string]any, error)
	Update(ctx context.Context, rawInitData string, settings map[string]any) (*profile.Profile, error)
}

type settingsCommandsImpl struct {
	pool     *pgxpool.Pool
	profiles ProfileRepository
}

func NewSettingsCommands(pool *pgxpool.Pool, profiles ProfileRepository) SettingsCommands {
	return &settingsCommandsImpl{
		pool:     pool,
		profiles: profiles,
	}
}

func (s *settingsCommandsImpl) Get(ctx context.Context, rawInitData string) (map[string]any, error) {
	p, err := s.find(ctx, rawInitData)
	if err != nil {
		return nil, err
	}
	return p.Settings(), nil
}

func (s *settingsCommandsImpl) Update(ctx context.Context, rawInitData string, settings map[string]any) (*profile.Profile, error) {
	p, err := s.find(ctx, rawInitData)
	if err != nil {
		return nil, err
	}

	updated, err := s.profiles.UpdateSettings(ctx, s.pool, p.ID(), settings)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProfileNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func (s *settingsCommandsImpl) find(ctx context.Context, rawInitData string) (*profile.Profile, error) {
	externalID := initdata.UserID(rawInitData)
	if externalID == "" {
		return nil, errs.Mark(errs.New("signed payload carries no user id"), errs.ErrIdentityUnknown)
	}

	p, err := s.profiles.FindByExternalID(ctx, s.pool, externalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProfileNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}
