package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"unihub/internal/infra"
	"unihub/internal/infra/db"
)

// Inquiry is an admissions question submitted by an applicant. It is a
// plain record, not a domain aggregate, so the repository works with it
// directly.
type Inquiry struct {
	ID             uuid.UUID
	UserID         *uuid.UUID
	UniversityID   string
	ProgramID      *string
	FullName       string
	Email          string
	Phone          string
	Question       string
	Topic          string
	Consents       map[string]any
	Status         string
	IdempotencyKey string
	RequestID      string
	CreatedAt      time.Time
}

const inquiryColumns = `id, user_id, university_id, program_id, full_name, email, phone,
	question, topic, consents, status, idempotency_key, request_id, created_at`

type InquiryRepository struct{}

func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{}
}

func (r *InquiryRepository) Create(ctx context.Context, dbtx db.DBTX, inq *Inquiry) error {
	consentsJSON, err := json.Marshal(orEmptyMap(inq.Consents))
	if err != nil {
		return infra.WrapRepoErr("failed to encode consents", err)
	}

	_, err = dbtx.Exec(ctx, `
		INSERT INTO admissions_inquiries
			(id, user_id, university_id, program_id, full_name, email, phone, question, topic, consents, status, idempotency_key, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		inq.ID, inq.UserID, inq.UniversityID, inq.ProgramID,
		inq.FullName, inq.Email, inq.Phone, inq.Question, inq.Topic,
		consentsJSON, inq.Status, inq.IdempotencyKey, inq.RequestID)
	if err != nil {
		return infra.WrapRepoErr("failed to create admissions inquiry", err)
	}
	return nil
}

func (r *InquiryRepository) FindByIdempotencyKey(ctx context.Context, dbtx db.DBTX, key string) (*Inquiry, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+inquiryColumns+` FROM admissions_inquiries WHERE idempotency_key = $1`, key)

	inq, err := scanInquiry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("admissions inquiry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inquiry by idempotency key", err)
	}
	return inq, nil
}

func scanInquiry(row pgx.Row) (*Inquiry, error) {
	var (
		inq          Inquiry
		consentsJSON []byte
	)
	if err := row.Scan(&inq.ID, &inq.UserID, &inq.UniversityID, &inq.ProgramID,
		&inq.FullName, &inq.Email, &inq.Phone, &inq.Question, &inq.Topic,
		&consentsJSON, &inq.Status, &inq.IdempotencyKey, &inq.RequestID, &inq.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(consentsJSON, &inq.Consents); err != nil {
		inq.Consents = map[string]any{}
	}
	return &inq, nil
}
