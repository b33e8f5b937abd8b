package request

type EventRegistrationRequest struct {
	FormPayload map[string]any `json:"form_payload,omitempty"`
}
