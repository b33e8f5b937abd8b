package response

import (
	"time"

	"github.com/google/uuid"

	"unihub/internal/domain/openday"
	"unihub/internal/infra/repository"
)

type OpenDayRegistrationResponse struct {
	ID        uuid.UUID      `json:"id"`
	EventID   string         `json:"event_id"`
	ProgramID *string        `json:"program_id,omitempty"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	Comment   string         `json:"comment,omitempty"`
	Status    string         `json:"status"`
	Ticket    map[string]any `json:"ticket"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromOpenDayRegistration(reg *openday.Registration) *OpenDayRegistrationResponse {
	return &OpenDayRegistrationResponse{
		ID:        reg.ID(),
		EventID:   reg.EventID(),
		ProgramID: reg.ProgramID(),
		FullName:  reg.FullName(),
		Email:     reg.Email(),
		Phone:     reg.Phone(),
		Comment:   reg.Comment(),
		Status:    reg.Status().String(),
		Ticket:    reg.Ticket(),
		CreatedAt: reg.CreatedAt(),
	}
}

type InquiryResponse struct {
	ID           uuid.UUID `json:"id"`
	UniversityID string    `json:"university_id"`
	ProgramID    *string   `json:"program_id,omitempty"`
	Question     string    `json:"question"`
	Topic        string    `json:"topic,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromInquiry(inq *repository.Inquiry) *InquiryResponse {
	return &InquiryResponse{
		ID:           inq.ID,
		UniversityID: inq.UniversityID,
		ProgramID:    inq.ProgramID,
		Question:     inq.Question,
		Topic:        inq.Topic,
		Status:       inq.Status,
		CreatedAt:    inq.CreatedAt,
	}
}
