package commands

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"unihub/internal/domain/campusevent"
	"unihub/internal/infra"
	"unihub/internal/infra/repository"
	"unihub/internal/pkg/clock"
	"unihub/internal/pkg/errs"
)

type RegisterEventResult struct {
	Registration *campusevent.Registration
}

type EventCommands interface {
	Register(ctx context.Context, rawInitData, eventID string, formPayload map[string]any, meta RequestMeta) (*RegisterEventResult, error)
}

type eventCommandsImpl struct {
	pool     *pgxpool.Pool
	events   EventRepository
	profiles ProfileRepository
	audit    AuditWriter
	tickets  TicketIssuer
	clock    clock.Clock
}

func NewEventCommands(
	pool *pgxpool.Pool,
	events EventRepository,
	profiles ProfileRepository,
	audit AuditWriter,
	tickets TicketIssuer,
	clk clock.Clock,
) EventCommands {
	return &eventCommandsImpl{
		pool:     pool,
		events:   events,
		profiles: profiles,
		audit:    audit,
		tickets:  tickets,
		clock:    clk,
	}
}

func (c *eventCommandsImpl) Register(ctx context.Context, rawInitData, eventID string, formPayload map[string]any, meta RequestMeta) (*RegisterEventResult, error) {
	caller, err := requireProfile(ctx, c.pool, c.profiles, rawInitData)
	if err != nil {
		return nil, err
	}

	event, err := c.events.FindByID(ctx, c.pool, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !event.AcceptsRegistrationsAt(c.clock.Now()) {
		return nil, errs.Mark(errs.New("registration window is closed"), errs.ErrRegistrationClosed)
	}

	existing, err := c.events.FindRegistration(ctx, c.pool, eventID, caller.ID())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return nil, errs.Mark(errs.New("already registered for this event"), errs.ErrAlreadyRegistered)
	}

	reg := campusevent.NewRegistration(eventID, caller.ID(), formPayload)

	code, err := c.tickets.Issue(eventID, reg.ID(), c.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue ticket")
	}
	reg.AttachTicket(code, ticketNumber("EV", reg.ID()))

	if err := c.events.CreateRegistration(ctx, c.pool, reg); err != nil {
		// UNIQUE(event_id, user_id) catches both the sequential and the
		// concurrent repeat registration.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrAlreadyRegistered)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	callerID := caller.ID()
	c.audit.Write(ctx, c.pool, repository.AuditEntry{
		UserID:    &callerID,
		Action:    "events.register",
		Resource:  "event_registration:" + reg.ID().String(),
		RequestID: meta.RequestID,
		Metadata:  map[string]any{"event_id": eventID},
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return &RegisterEventResult{Registration: reg}, nil
}
