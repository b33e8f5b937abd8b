//go:build e2e

package admissions_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"unihub/tests/common/authtest"
	"unihub/tests/common/dbtest"
	"unihub/tests/common/httptest"
	"unihub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	meURL           = "/api/v1/auth/me"
	registrationURL = "/api/v1/admissions/open-days/registrations"
	inquiryURL      = "/api/v1/admissions/inquiries"
)

type admissionsSuite struct {
	e2e.SharedSuite
}

func TestAdmissionsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(admissionsSuite))
}

func (s *admissionsSuite) signedPayload(userID string) string {
	return authtest.SignUserPayload(s.Config.Auth.BotToken, userID)
}

// ensureProfile creates the caller's profile through identity resolution,
// the way a real client session starts.
func (s *admissionsSuite) ensureProfile(userID string) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, s.signedPayload(userID))
	require.Equal(s.T(), http.StatusOK, rec.Code)
}

func (s *admissionsSuite) registrationBody(eventID, email string) map[string]any {
	return map[string]any{
		"event_id":  eventID,
		"full_name": "Ada Lovelace",
		"email":     email,
	}
}

func (s *admissionsSuite) TestSignedPayloadGate() {
	s.Run("missing header is rejected with 401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "init data is required")
	})

	s.Run("tampered payload is rejected with 403", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, s.signedPayload("u1")+"x")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "invalid init data signature")
	})

	s.Run("valid payload creates a profile on first contact", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, s.signedPayload("u1"))

		var response struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		require.Equal(s.T(), "u1", response.UserID)
		require.Equal(s.T(), "applicant", response.Role)

		var count int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM user_profiles WHERE user_id = 'u1'").Scan(&count)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, count)
	})

	s.Run("health endpoint bypasses the gate", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(s.T(), http.StatusOK, rec.Code)
	})
}

func (s *admissionsSuite) TestOpenDayRegistration() {
	s.Run("successful registration returns a ticket", func() {
		capacity := int32(10)
		dbtest.CreateOpenDayEvent(s.T(), s.DB, "od-01", &capacity, true)
		s.ensureProfile("u1")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-01", "ada@example.com"), s.signedPayload("u1"))

		var response struct {
			EventID string         `json:"event_id"`
			Status  string         `json:"status"`
			Ticket  map[string]any `json:"ticket"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		require.Equal(s.T(), "od-01", response.EventID)
		require.Equal(s.T(), "confirmed", response.Status)
		require.NotEmpty(s.T(), response.Ticket["code"])

		var remaining int32
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT remaining FROM open_day_events WHERE id = 'od-01'").Scan(&remaining)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int32(9), remaining)

		var linked int
		err = s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM open_day_registrations WHERE event_id = 'od-01' AND user_id IS NOT NULL").Scan(&linked)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, linked)
	})

	s.Run("payload without a user id returns 400", func() {
		capacity := int32(10)
		dbtest.CreateOpenDayEvent(s.T(), s.DB, "od-01", &capacity, true)
		anonymous := authtest.SignPayload(s.Config.Auth.BotToken, map[string]string{"query_id": "q-1"})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-01", "ada@example.com"), anonymous)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "user_id_required")
	})

	s.Run("caller without a profile returns 404", func() {
		capacity := int32(10)
		dbtest.CreateOpenDayEvent(s.T(), s.DB, "od-01", &capacity, true)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-01", "ada@example.com"), s.signedPayload("ghost"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "profile_not_found")
	})

	s.Run("duplicate email on the same event returns 409", func() {
		capacity := int32(10)
		dbtest.CreateOpenDayEvent(s.T(), s.DB, "od-01", &capacity, true)
		s.ensureProfile("u1")
		s.ensureProfile("u2")

		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-01", "ada@example.com"), s.signedPayload("u1"))
		require.Equal(s.T(), http.StatusCreated, first.Code)

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-01", "ada@example.com"), s.signedPayload("u2"))
		httptest.AssertErrorResponse(s.T(), second, http.StatusConflict, "already_registered")
	})

	s.Run("closed event returns 409", func() {
		dbtest.CreateOpenDayEvent(s.T(), s.DB, "od-closed", nil, false)
		s.ensureProfile("u1")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-closed", "ada@example.com"), s.signedPayload("u1"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "registration_closed")
	})

	s.Run("unknown event returns 404", func() {
		s.ensureProfile("u1")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-missing", "ada@example.com"), s.signedPayload("u1"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "event_not_found")
	})

	s.Run("idempotency key replays the original result", func() {
		capacity := int32(10)
		dbtest.CreateOpenDayEvent(s.T(), s.DB, "od-01", &capacity, true)
		s.ensureProfile("u1")
		headers := map[string]string{"Idempotency-Key": "idem-e2e-1"}

		first := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-01", "ada@example.com"), s.signedPayload("u1"), headers)
		require.Equal(s.T(), http.StatusCreated, first.Code)

		second := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, registrationURL,
			s.registrationBody("od-01", "ada@example.com"), s.signedPayload("u1"), headers)
		require.Equal(s.T(), http.StatusOK, second.Code)

		var firstBody, secondBody map[string]any
		require.NoError(s.T(), json.Unmarshal(first.Body.Bytes(), &firstBody))
		require.NoError(s.T(), json.Unmarshal(second.Body.Bytes(), &secondBody))
		require.Equal(s.T(), firstBody["id"], secondBody["id"])

		var count int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM open_day_registrations WHERE event_id = 'od-01'").Scan(&count)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, count)
	})

	s.Run("capacity is never oversold under concurrency", func() {
		capacity := int32(1)
		dbtest.CreateOpenDayEvent(s.T(), s.DB, "od-tight", &capacity, true)
		s.ensureProfile("u1")

		emails := []string{"first@example.com", "second@example.com"}
		codes := make([]int, len(emails))

		var wg sync.WaitGroup
		for i, email := range emails {
			wg.Add(1)
			go func(i int, email string) {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationURL,
					s.registrationBody("od-tight", email), s.signedPayload("u1"))
				codes[i] = rec.Code
			}(i, email)
		}
		wg.Wait()

		created := 0
		conflicted := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(s.T(), 1, created, "exactly one registration must win")
		require.Equal(s.T(), 1, conflicted, "the loser must get a conflict")

		var remaining int32
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT remaining FROM open_day_events WHERE id = 'od-tight'").Scan(&remaining)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int32(0), remaining)
	})
}

func (s *admissionsSuite) TestInquiries() {
	s.Run("inquiry is stored against a known university", func() {
		s.ensureProfile("u1")
		body := map[string]any{
			"university_id": "u-01",
			"question":      "Do you offer evening classes?",
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, inquiryURL, body, s.signedPayload("u1"))

		var response struct {
			UniversityID string `json:"university_id"`
			Status       string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		require.Equal(s.T(), "u-01", response.UniversityID)
		require.Equal(s.T(), "new", response.Status)
	})

	s.Run("program from another university is rejected with 409", func() {
		s.ensureProfile("u1")
		body := map[string]any{
			"university_id": "u-01",
			"program_id":    "p-02",
			"question":      "Can I transfer?",
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, inquiryURL, body, s.signedPayload("u1"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "program_not_allowed")
	})

	s.Run("caller without a profile returns 404", func() {
		body := map[string]any{
			"university_id": "u-01",
			"question":      "Is there a dorm?",
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, inquiryURL, body, s.signedPayload("ghost"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "profile_not_found")
	})
}
