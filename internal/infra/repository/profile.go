package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"unihub/internal/domain/profile"
	"unihub/internal/infra"
	"unihub/internal/infra/db"
)

const profileColumns = `id, user_id, role, scopes, full_name, email, locale, time_zone, metadata, settings, created_at, updated_at`

type ProfileRepository struct{}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) FindByExternalID(ctx context.Context, dbtx db.DBTX, externalID string) (*profile.Profile, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`,
		externalID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by external id", err)
	}
	return p, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*profile.Profile, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE id = $1`,
		id)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by id", err)
	}
	return p, nil
}

// Upsert inserts the profile or, when the external id is already taken,
// refreshes its mutable display fields. Role, scopes and settings are never
// touched here. The returned profile is always the winning row.
func (r *ProfileRepository) Upsert(ctx context.Context, dbtx db.DBTX, p *profile.Profile, metadata map[string]any) (*profile.Profile, error) {
	scopesJSON, err := json.Marshal(p.Scopes())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode scopes", err)
	}
	metadataJSON, err := json.Marshal(orEmptyMap(metadata))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode metadata", err)
	}
	settingsJSON, err := json.Marshal(p.Settings())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode settings", err)
	}

	row := dbtx.QueryRow(ctx, `
		INSERT INTO user_profiles (id, user_id, role, scopes, full_name, email, locale, metadata, settings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name  = EXCLUDED.full_name,
			locale     = EXCLUDED.locale,
			email      = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE user_profiles.email END,
			metadata   = EXCLUDED.metadata,
			updated_at = now()
		RETURNING `+profileColumns,
		p.ID(), p.ExternalID(), p.Role().String(), scopesJSON,
		p.FullName(), p.Email(), p.Locale(), metadataJSON, settingsJSON)

	result, err := scanProfile(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert profile", err)
	}
	return result, nil
}

// UpdateGrant replaces role, scopes and directory-sourced display fields
// after a university login or logout.
func (r *ProfileRepository) UpdateGrant(ctx context.Context, dbtx db.DBTX, id uuid.UUID, role profile.Role, scopes []string, fullName, email string) (*profile.Profile, error) {
	if scopes == nil {
		scopes = []string{}
	}
	scopesJSON, err := json.Marshal(scopes)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode scopes", err)
	}

	row := dbtx.QueryRow(ctx, `
		UPDATE user_profiles SET
			role       = $2,
			scopes     = $3,
			full_name  = CASE WHEN $4 <> '' THEN $4 ELSE full_name END,
			email      = CASE WHEN $5 <> '' THEN $5 ELSE email END,
			updated_at = now()
		WHERE id = $1
		RETURNING `+profileColumns,
		id, role.String(), scopesJSON, fullName, email)

	result, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update profile grant", err)
	}
	return result, nil
}

func (r *ProfileRepository) UpdateSettings(ctx context.Context, dbtx db.DBTX, id uuid.UUID, settings map[string]any) (*profile.Profile, error) {
	settingsJSON, err := json.Marshal(orEmptyMap(settings))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode settings", err)
	}

	row := dbtx.QueryRow(ctx, `
		UPDATE user_profiles SET settings = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+profileColumns,
		id, settingsJSON)

	result, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update profile settings", err)
	}
	return result, nil
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	var (
		id                 uuid.UUID
		externalID         string
		role               string
		scopesJSON         []byte
		fullName           string
		email              string
		locale             string
		timeZone           string
		metadataJSON       []byte
		settingsJSON       []byte
		createdAt, updated time.Time
	)
	if err := row.Scan(&id, &externalID, &role, &scopesJSON, &fullName, &email,
		&locale, &timeZone, &metadataJSON, &settingsJSON, &createdAt, &updated); err != nil {
		return nil, err
	}

	var scopes []string
	if err := json.Unmarshal(scopesJSON, &scopes); err != nil {
		scopes = []string{}
	}
	var settings map[string]any
	if err := json.Unmarshal(settingsJSON, &settings); err != nil {
		settings = map[string]any{}
	}

	return profile.ReconstructProfile(
		id, externalID, profile.Role(role), scopes,
		fullName, email, locale, settings, createdAt, updated,
	), nil
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
