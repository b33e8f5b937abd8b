package request

import (
	"strings"

	"unihub/internal/usecase/commands"
)

type OpenDayRegistrationRequest struct {
	EventID   string  `json:"event_id" binding:"required"`
	ProgramID *string `json:"program_id,omitempty"`
	FullName  string  `json:"full_name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone,omitempty"`
	Comment   string  `json:"comment,omitempty"`
}

func (r OpenDayRegistrationRequest) ToInput() commands.RegisterOpenDayInput {
	return commands.RegisterOpenDayInput{
		EventID:   r.EventID,
		ProgramID: trimmedPtr(r.ProgramID),
		FullName:  strings.TrimSpace(r.FullName),
		Email:     strings.TrimSpace(strings.ToLower(r.Email)),
		Phone:     strings.TrimSpace(r.Phone),
		Comment:   strings.TrimSpace(r.Comment),
	}
}

type InquiryRequest struct {
	UniversityID string         `json:"university_id" binding:"required"`
	ProgramID    *string        `json:"program_id,omitempty"`
	FullName     string         `json:"full_name,omitempty"`
	Email        string         `json:"email,omitempty" binding:"omitempty,email"`
	Phone        string         `json:"phone,omitempty"`
	Question     string         `json:"question" binding:"required"`
	Topic        string         `json:"topic,omitempty"`
	Consents     map[string]any `json:"consents,omitempty"`
}

func (r InquiryRequest) ToInput() commands.CreateInquiryInput {
	return commands.CreateInquiryInput{
		UniversityID: r.UniversityID,
		ProgramID:    trimmedPtr(r.ProgramID),
		FullName:     strings.TrimSpace(r.FullName),
		Email:        strings.TrimSpace(strings.ToLower(r.Email)),
		Phone:        strings.TrimSpace(r.Phone),
		Question:     strings.TrimSpace(r.Question),
		Topic:        strings.TrimSpace(r.Topic),
		Consents:     r.Consents,
	}
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
