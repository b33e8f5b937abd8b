package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"unihub/internal/domain/openday"
	"unihub/internal/infra"
	"unihub/internal/infra/db"
	"unihub/internal/infra/repository"
	"unihub/internal/pkg/clock"
	"unihub/internal/pkg/errs"
	"unihub/internal/usecase/shared"
)

type RegisterOpenDayInput struct {
	EventID   string
	ProgramID *string
	FullName  string
	Email     string
	Phone     string
	Comment   string
}

type RegisterOpenDayResult struct {
	Registration *openday.Registration
	IsReplayed   bool
}

type OpenDayCommands interface {
	Register(ctx context.Context, rawInitData string, input RegisterOpenDayInput, idempotencyKey string, meta RequestMeta) (*RegisterOpenDayResult, error)
}

type openDayCommandsImpl struct {
	pool     *pgxpool.Pool
	openDays OpenDayRepository
	programs ProgramFinder
	profiles ProfileRepository
	audit    AuditWriter
	tickets  TicketIssuer
	clock    clock.Clock
}

func NewOpenDayCommands(
	pool *pgxpool.Pool,
	openDays OpenDayRepository,
	programs ProgramFinder,
	profiles ProfileRepository,
	audit AuditWriter,
	tickets TicketIssuer,
	clk clock.Clock,
) OpenDayCommands {
	return &openDayCommandsImpl{
		pool:     pool,
		openDays: openDays,
		programs: programs,
		profiles: profiles,
		audit:    audit,
		tickets:  tickets,
		clock:    clk,
	}
}

func (c *openDayCommandsImpl) Register(ctx context.Context, rawInitData string, input RegisterOpenDayInput, idempotencyKey string, meta RequestMeta) (*RegisterOpenDayResult, error) {
	if replayed, err := c.findReplay(ctx, idempotencyKey); err != nil {
		return nil, err
	} else if replayed != nil {
		return &RegisterOpenDayResult{Registration: replayed, IsReplayed: true}, nil
	}

	caller, err := requireProfile(ctx, c.pool, c.profiles, rawInitData)
	if err != nil {
		return nil, err
	}
	userID := caller.ID()

	event, err := c.openDays.FindEventByID(ctx, c.pool, input.EventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !event.AcceptsRegistrationsAt(c.clock.Now()) {
		return nil, errs.Mark(errs.New("registration window is closed"), errs.ErrRegistrationClosed)
	}

	if err := c.validateProgram(ctx, input.ProgramID, event.UniversityID()); err != nil {
		return nil, err
	}

	reg, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (*openday.Registration, error) {
		return c.registerInTx(ctx, tx, input, &userID, idempotencyKey, meta)
	})
	if err != nil {
		// A concurrent duplicate surfaces here through the natural-key or
		// idempotency-key constraint.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			if replayed, replayErr := c.findReplay(ctx, idempotencyKey); replayErr == nil && replayed != nil {
				return &RegisterOpenDayResult{Registration: replayed, IsReplayed: true}, nil
			}
			return nil, errs.Mark(err, errs.ErrAlreadyRegistered)
		}
		return nil, err
	}

	regID := reg.ID().String()
	c.audit.Write(ctx, c.pool, repository.AuditEntry{
		UserID:         &userID,
		Action:         "admissions.open_day.register",
		Resource:       "open_day_registration:" + regID,
		RequestID:      meta.RequestID,
		IdempotencyKey: idempotencyKey,
		Metadata:       map[string]any{"event_id": input.EventID, "email": input.Email},
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
	})

	return &RegisterOpenDayResult{Registration: reg, IsReplayed: false}, nil
}

func (c *openDayCommandsImpl) registerInTx(ctx context.Context, tx db.DBTX, input RegisterOpenDayInput, userID *uuid.UUID, idempotencyKey string, meta RequestMeta) (*openday.Registration, error) {
	locked, err := c.openDays.LockEventByID(ctx, tx, input.EventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Recheck under the lock, the window may have closed between the
	// preflight read and here.
	if !locked.AcceptsRegistrationsAt(c.clock.Now()) {
		return nil, errs.Mark(errs.New("registration window is closed"), errs.ErrRegistrationClosed)
	}

	existing, err := c.openDays.FindRegistrationByEventEmail(ctx, tx, input.EventID, input.Email)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return nil, errs.Mark(errs.New("email already registered for this event"), errs.ErrAlreadyRegistered)
	}

	if locked.TracksCapacity() && !locked.HasCapacityLeft() {
		return nil, errs.Mark(errs.New("no remaining slots"), errs.ErrCapacityExhausted)
	}

	reg, err := openday.NewRegistration(
		input.EventID, input.ProgramID, userID,
		input.FullName, input.Email, input.Phone, input.Comment,
		idempotencyKey, meta.RequestID,
	)
	if err != nil {
		return nil, err
	}

	code, err := c.tickets.Issue(input.EventID, reg.ID(), c.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue ticket")
	}
	reg.AttachTicket(code, ticketNumber("OD", reg.ID()))

	if err := c.openDays.CreateRegistration(ctx, tx, reg); err != nil {
		return nil, err
	}

	if locked.TracksCapacity() {
		if err := c.openDays.DecrementRemaining(ctx, tx, input.EventID); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return reg, nil
}

func (c *openDayCommandsImpl) findReplay(ctx context.Context, idempotencyKey string) (*openday.Registration, error) {
	if idempotencyKey == "" {
		return nil, nil
	}

	reg, err := c.openDays.FindRegistrationByIdempotencyKey(ctx, c.pool, idempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reg, nil
}

func (c *openDayCommandsImpl) validateProgram(ctx context.Context, programID *string, universityID string) error {
	if programID == nil || *programID == "" {
		return nil
	}

	prog, err := c.programs.FindByID(ctx, c.pool, *programID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrProgramNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if prog.UniversityID != universityID {
		return errs.Mark(errs.New("program belongs to another university"), errs.ErrProgramNotAllowed)
	}
	return nil
}

func ticketNumber(prefix string, id uuid.UUID) string {
	return prefix + "-" + strings.ToUpper(id.String()[:8])
}
