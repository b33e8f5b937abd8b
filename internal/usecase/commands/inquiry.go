package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"unihub/internal/infra"
	"unihub/internal/infra/repository"
	"unihub/internal/pkg/errs"
)

type CreateInquiryInput struct {
	UniversityID string
	ProgramID    *string
	FullName     string
	Email        string
	Phone        string
	Question     string
	Topic        string
	Consents     map[string]any
}

type CreateInquiryResult struct {
	Inquiry    *repository.Inquiry
	IsReplayed bool
}

type InquiryCommands interface {
	Create(ctx context.Context, rawInitData string, input CreateInquiryInput, idempotencyKey string, meta RequestMeta) (*CreateInquiryResult, error)
}

type inquiryCommandsImpl struct {
	pool         *pgxpool.Pool
	inquiries    InquiryRepository
	universities UniversityFinder
	programs     ProgramFinder
	profiles     ProfileRepository
	audit        AuditWriter
}

func NewInquiryCommands(
	pool *pgxpool.Pool,
	inquiries InquiryRepository,
	universities UniversityFinder,
	programs ProgramFinder,
	profiles ProfileRepository,
	audit AuditWriter,
) InquiryCommands {
	return &inquiryCommandsImpl{
		pool:         pool,
		inquiries:    inquiries,
		universities: universities,
		programs:     programs,
		profiles:     profiles,
		audit:        audit,
	}
}

func (c *inquiryCommandsImpl) Create(ctx context.Context, rawInitData string, input CreateInquiryInput, idempotencyKey string, meta RequestMeta) (*CreateInquiryResult, error) {
	if idempotencyKey != "" {
		existing, err := c.inquiries.FindByIdempotencyKey(ctx, c.pool, idempotencyKey)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if existing != nil {
			return &CreateInquiryResult{Inquiry: existing, IsReplayed: true}, nil
		}
	}

	caller, err := requireProfile(ctx, c.pool, c.profiles, rawInitData)
	if err != nil {
		return nil, err
	}
	callerID := caller.ID()

	uni, err := c.universities.FindByID(ctx, c.pool, input.UniversityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUniversityNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if input.ProgramID != nil && *input.ProgramID != "" {
		prog, err := c.programs.FindByID(ctx, c.pool, *input.ProgramID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrProgramNotFound)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if prog.UniversityID != uni.ID {
			return nil, errs.Mark(errs.New("program belongs to another university"), errs.ErrProgramNotAllowed)
		}
	}

	inq := &repository.Inquiry{
		ID:             uuid.New(),
		UserID:         &callerID,
		UniversityID:   input.UniversityID,
		ProgramID:      input.ProgramID,
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		Question:       input.Question,
		Topic:          input.Topic,
		Consents:       input.Consents,
		Status:         "new",
		IdempotencyKey: idempotencyKey,
		RequestID:      meta.RequestID,
	}

	if err := c.inquiries.Create(ctx, c.pool, inq); err != nil {
		// Two concurrent submissions with the same key race on the partial
		// unique index. The loser replays the winner's record.
		if infra.IsKind(err, infra.KindDuplicateKey) && idempotencyKey != "" {
			existing, findErr := c.inquiries.FindByIdempotencyKey(ctx, c.pool, idempotencyKey)
			if findErr == nil && existing != nil {
				return &CreateInquiryResult{Inquiry: existing, IsReplayed: true}, nil
			}
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.audit.Write(ctx, c.pool, repository.AuditEntry{
		UserID:         inq.UserID,
		Action:         "admissions.inquiry.create",
		Resource:       "admissions_inquiry:" + inq.ID.String(),
		RequestID:      meta.RequestID,
		IdempotencyKey: idempotencyKey,
		Metadata:       map[string]any{"university_id": input.UniversityID, "topic": input.Topic},
		IPAddress:      meta.IPAddress,
		UserAgent:      meta.UserAgent,
	})

	return &CreateInquiryResult{Inquiry: inq, IsReplayed: false}, nil
}
