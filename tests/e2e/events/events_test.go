//go:build e2e

package events_test

import (
	"net/http"
	"testing"

	"unihub/tests/common/authtest"
	"unihub/tests/common/httptest"
	"unihub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	eventsURL          = "/api/v1/events"
	myRegistrationsURL = "/api/v1/events/registrations/my"
)

type eventsSuite struct {
	e2e.SharedSuite
}

func TestEventsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(eventsSuite))
}

func (s *eventsSuite) signedPayload(userID string) string {
	return authtest.SignUserPayload(s.Config.Auth.BotToken, userID)
}

// ensureProfile resolves the identity once so registration finds a profile.
func (s *eventsSuite) ensureProfile(userID string) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/auth/me", nil, s.signedPayload(userID))
	require.Equal(s.T(), http.StatusOK, rec.Code)
}

func (s *eventsSuite) TestListAndGet() {
	s.Run("list shows only scheduled events", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, eventsURL, nil, s.signedPayload("u1"))

		var response struct {
			Items []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"items"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		require.Len(s.T(), response.Items, 1)
		require.Equal(s.T(), "ev-01", response.Items[0].ID)
	})

	s.Run("get returns 404 for unknown id", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, eventsURL+"/nope", nil, s.signedPayload("u1"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "event_not_found")
	})
}

func (s *eventsSuite) TestRegistration() {
	body := map[string]any{"form_payload": map[string]any{"team": "solo"}}

	s.Run("registration issues a ticket and shows up in my list", func() {
		s.ensureProfile("u1")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			eventsURL+"/ev-01/registrations", body, s.signedPayload("u1"))

		var response struct {
			EventID string         `json:"event_id"`
			Ticket  map[string]any `json:"ticket"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		require.Equal(s.T(), "ev-01", response.EventID)
		require.NotEmpty(s.T(), response.Ticket["code"])

		list := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, myRegistrationsURL, nil, s.signedPayload("u1"))

		var listResponse struct {
			Items []struct {
				EventID    string `json:"event_id"`
				EventTitle string `json:"event_title"`
			} `json:"items"`
		}
		httptest.AssertSuccessResponse(s.T(), list, http.StatusOK, &listResponse)
		require.Len(s.T(), listResponse.Items, 1)
		require.Equal(s.T(), "Spring Hackathon", listResponse.Items[0].EventTitle)
	})

	s.Run("second registration by the same user returns 409", func() {
		s.ensureProfile("u1")

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			eventsURL+"/ev-01/registrations", body, s.signedPayload("u1"))
		require.Equal(s.T(), http.StatusCreated, first.Code)

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			eventsURL+"/ev-01/registrations", body, s.signedPayload("u1"))
		httptest.AssertErrorResponse(s.T(), second, http.StatusConflict, "already_registered")
	})

	s.Run("finished event cannot be registered for", func() {
		s.ensureProfile("u1")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			eventsURL+"/ev-02/registrations", body, s.signedPayload("u1"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "registration_closed")
	})
}
