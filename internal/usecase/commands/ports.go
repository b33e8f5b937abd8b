package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"unihub/internal/domain/campusevent"
	"unihub/internal/domain/openday"
	"unihub/internal/domain/profile"
	"unihub/internal/infra/db"
	"unihub/internal/infra/repository"
	"unihub/internal/infra/university"
	"unihub/internal/usecase/shared"
)

// RequestMeta carries per-request identifiers recorded in audit entries.
type RequestMeta struct {
	RequestID string
	IPAddress string
	UserAgent string
}

type ProfileRepository interface {
	FindByExternalID(ctx context.Context, dbtx db.DBTX, externalID string) (*profile.Profile, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*profile.Profile, error)
	Upsert(ctx context.Context, dbtx db.DBTX, p *profile.Profile, metadata map[string]any) (*profile.Profile, error)
	UpdateGrant(ctx context.Context, dbtx db.DBTX, id uuid.UUID, role profile.Role, scopes []string, fullName, email string) (*profile.Profile, error)
	UpdateSettings(ctx context.Context, dbtx db.DBTX, id uuid.UUID, settings map[string]any) (*profile.Profile, error)
}

type OpenDayRepository interface {
	FindEventByID(ctx context.Context, dbtx db.DBTX, id string) (*openday.Event, error)
	LockEventByID(ctx context.Context, dbtx db.DBTX, id string) (*openday.Event, error)
	DecrementRemaining(ctx context.Context, dbtx db.DBTX, id string) error
	CreateRegistration(ctx context.Context, dbtx db.DBTX, reg *openday.Registration) error
	FindRegistrationByIdempotencyKey(ctx context.Context, dbtx db.DBTX, key string) (*openday.Registration, error)
	FindRegistrationByEventEmail(ctx context.Context, dbtx db.DBTX, eventID, email string) (*openday.Registration, error)
}

type EventRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id string) (*campusevent.Event, error)
	CreateRegistration(ctx context.Context, dbtx db.DBTX, reg *campusevent.Registration) error
	FindRegistration(ctx context.Context, dbtx db.DBTX, eventID string, userID uuid.UUID) (*campusevent.Registration, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, inq *repository.Inquiry) error
	FindByIdempotencyKey(ctx context.Context, dbtx db.DBTX, key string) (*repository.Inquiry, error)
}

type UniversityFinder interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.UniversitySnapshot, error)
}

type ProgramFinder interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id string) (*shared.ProgramSnapshot, error)
}

type AuditWriter interface {
	Write(ctx context.Context, dbtx db.DBTX, entry repository.AuditEntry)
}

type Directory interface {
	Authenticate(login, password string) (university.Account, error)
}

type TicketIssuer interface {
	Issue(eventID string, registrationID uuid.UUID, now time.Time) (string, error)
}
