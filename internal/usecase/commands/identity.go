package commands

import (
	"context"

	"unihub/internal/domain/profile"
	"unihub/internal/infra"
	"unihub/internal/infra/db"
	"unihub/internal/pkg/errs"
	"unihub/internal/pkg/initdata"
)

// requireProfile resolves the caller's existing profile from the signed
// payload. The payload must carry a user id and the profile must have
// been created by a prior identity resolution.
func requireProfile(ctx context.Context, dbtx db.DBTX, profiles ProfileRepository, rawInitData string) (*profile.Profile, error) {
	externalID := initdata.UserID(rawInitData)
	if externalID == "" {
		return nil, errs.Mark(errs.New("signed payload carries no user id"), errs.ErrIdentityUnknown)
	}

	p, err := profiles.FindByExternalID(ctx, dbtx, externalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProfileNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}
