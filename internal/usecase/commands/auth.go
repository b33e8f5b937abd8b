package commands

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"unihub/internal/domain/profile"
	"unihub/internal/infra"
	"unihub/internal/infra/repository"
	"unihub/internal/pkg/errs"
	"unihub/internal/pkg/initdata"
)

type AuthCommands interface {
	// Resolve maps a verified signed payload onto the local profile,
	// creating it on first sight.
	Resolve(ctx context.Context, rawInitData string) (*profile.Profile, error)
	Login(ctx context.Context, rawInitData, login, password string, meta RequestMeta) (*profile.Profile, error)
	Logout(ctx context.Context, rawInitData string, meta RequestMeta) (*profile.Profile, error)
}

type authCommandsImpl struct {
	pool      *pgxpool.Pool
	profiles  ProfileRepository
	directory Directory
	audit     AuditWriter
}

func NewAuthCommands(pool *pgxpool.Pool, profiles ProfileRepository, directory Directory, audit AuditWriter) AuthCommands {
	return &authCommandsImpl{
		pool:      pool,
		profiles:  profiles,
		directory: directory,
		audit:     audit,
	}
}

func (a *authCommandsImpl) Resolve(ctx context.Context, rawInitData string) (*profile.Profile, error) {
	externalID := initdata.UserID(rawInitData)
	if externalID == "" {
		return nil, errs.Mark(errs.New("signed payload carries no user id"), errs.ErrIdentityUnknown)
	}

	payload := initdata.Parse(rawInitData)
	fullName, locale, email := displayFields(payload)

	p, err := profile.NewProfile(externalID, fullName, email, locale)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdentityUnknown)
	}

	// The upsert both creates first-seen profiles and refreshes display
	// fields for returning ones. Concurrent first requests converge on the
	// row that won the unique constraint.
	resolved, err := a.profiles.Upsert(ctx, a.pool, p, payload)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return resolved, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, rawInitData, login, password string, meta RequestMeta) (*profile.Profile, error) {
	p, err := a.requireProfile(ctx, rawInitData)
	if err != nil {
		return nil, err
	}

	account, err := a.directory.Authenticate(login, password)
	if err != nil {
		return nil, err
	}

	role, err := profile.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	updated, err := a.profiles.UpdateGrant(ctx, a.pool, p.ID(), role, account.Scopes, account.FullName, account.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	id := updated.ID()
	a.audit.Write(ctx, a.pool, repository.AuditEntry{
		UserID:    &id,
		Action:    "auth.login",
		Resource:  "profile:" + updated.ExternalID(),
		RequestID: meta.RequestID,
		Metadata:  map[string]any{"role": updated.Role().String()},
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return updated, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, rawInitData string, meta RequestMeta) (*profile.Profile, error) {
	p, err := a.requireProfile(ctx, rawInitData)
	if err != nil {
		return nil, err
	}

	updated, err := a.profiles.UpdateGrant(ctx, a.pool, p.ID(), profile.RoleApplicant, []string{}, "", "")
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	id := updated.ID()
	a.audit.Write(ctx, a.pool, repository.AuditEntry{
		UserID:    &id,
		Action:    "auth.logout",
		Resource:  "profile:" + updated.ExternalID(),
		RequestID: meta.RequestID,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return updated, nil
}

func (a *authCommandsImpl) requireProfile(ctx context.Context, rawInitData string) (*profile.Profile, error) {
	externalID := initdata.UserID(rawInitData)
	if externalID == "" {
		return nil, errs.Mark(errs.New("signed payload carries no user id"), errs.ErrIdentityUnknown)
	}

	p, err := a.profiles.FindByExternalID(ctx, a.pool, externalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProfileNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}

// displayFields pulls the mutable profile fields out of the parsed payload.
func displayFields(payload map[string]any) (fullName, locale, email string) {
	user := initdata.User(payload)
	if user == nil {
		return "", "", ""
	}

	first := asString(user["first_name"])
	last := asString(user["last_name"])
	fullName = strings.TrimSpace(first + " " + last)
	if fullName == "" {
		fullName = asString(user["name"])
	}
	if fullName == "" {
		fullName = asString(user["username"])
	}

	locale = asString(user["language_code"])
	email = asString(user["email"])
	return fullName, locale, email
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}
