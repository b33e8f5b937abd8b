package response

import (
	"time"

	"github.com/google/uuid"

	"unihub/internal/domain/campusevent"
)

type EventRegistrationResponse struct {
	ID          uuid.UUID      `json:"id"`
	EventID     string         `json:"event_id"`
	Status      string         `json:"status"`
	FormPayload map[string]any `json:"form_payload,omitempty"`
	Ticket      map[string]any `json:"ticket"`
	CreatedAt   time.Time      `json:"created_at"`
}

func FromEventRegistration(reg *campusevent.Registration) *EventRegistrationResponse {
	return &EventRegistrationResponse{
		ID:          reg.ID(),
		EventID:     reg.EventID(),
		Status:      reg.Status(),
		FormPayload: reg.FormPayload(),
		Ticket:      reg.Ticket(),
		CreatedAt:   reg.CreatedAt(),
	}
}
