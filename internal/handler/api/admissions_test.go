//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"unihub/internal/domain/openday"
	"unihub/internal/handler/api"
	resdto "unihub/internal/handler/dto/response"
	"unihub/internal/infra/repository"
	"unihub/internal/pkg/errs"
	"unihub/internal/usecase/commands"
	"unihub/internal/usecase/queries"
	"unihub/tests/common/httptest"
	commandsmock "unihub/tests/mock/commands"
	queriesmock "unihub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdmissionsHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockQueries   *queriesmock.MockAdmissionsQueries
	mockOpenDays  *commandsmock.MockOpenDayCommands
	mockInquiries *commandsmock.MockInquiryCommands
	handler       *api.AdmissionsHandler
}

func (s *AdmissionsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAdmissionsQueries(s.mockCtrl)
	s.mockOpenDays = commandsmock.NewMockOpenDayCommands(s.mockCtrl)
	s.mockInquiries = commandsmock.NewMockInquiryCommands(s.mockCtrl)
	s.handler = api.NewAdmissionsHandler(s.mockQueries, s.mockOpenDays, s.mockInquiries)

	s.router.GET("/admissions/universities", s.handler.ListUniversities)
	s.router.GET("/admissions/universities/:id", s.handler.GetUniversity)
	s.router.GET("/admissions/open-days", s.handler.ListOpenDays)
	s.router.POST("/admissions/open-days/registrations", withIdentity(s.handler.RegisterOpenDay))
	s.router.POST("/admissions/inquiries", withIdentity(s.handler.CreateInquiry))
}

func (s *AdmissionsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdmissionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdmissionsHandlerTestSuite))
}

func (s *AdmissionsHandlerTestSuite) TestListUniversities() {
	s.Run("success: returns page with filters applied", func() {
		cursor := "eyJpZCI6InUtMDEifQ"
		page := queries.Page[*queries.UniversityView]{
			Items:      []*queries.UniversityView{{ID: "u-01", Title: "Test University"}},
			NextCursor: &cursor,
		}
		s.mockQueries.EXPECT().ListUniversities(gomock.Any(), gomock.Any(), "", 0).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admissions/universities?city=Boston", nil, "")

		var response struct {
			Items      []map[string]any `json:"items"`
			NextCursor *string          `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.NotNil(response.NextCursor)
	})
}

func (s *AdmissionsHandlerTestSuite) TestGetUniversity() {
	s.Run("error: 404 for unknown id", func() {
		s.mockQueries.EXPECT().GetUniversity(gomock.Any(), "nope").
			Return(nil, errs.ErrUniversityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admissions/universities/nope", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "university_not_found")
	})
}

func (s *AdmissionsHandlerTestSuite) TestRegisterOpenDay() {
	url := "/admissions/open-days/registrations"
	body := map[string]any{
		"event_id":  "od-01",
		"full_name": "Ada Lovelace",
		"email":     "ada@example.com",
	}

	newRegistration := func() *openday.Registration {
		return openday.ReconstructRegistration(
			uuid.New(), "od-01", nil, nil,
			"Ada Lovelace", "ada@example.com", "", "",
			openday.RegistrationConfirmed,
			map[string]any{"code": "jwt", "number": "OD-ABCD1234"},
			"idem-1", "req-1", time.Now(),
		)
	}

	s.Run("success: 201 for a new registration", func() {
		s.mockOpenDays.EXPECT().Register(gomock.Any(), testRawInitData, gomock.Any(), "idem-1", gomock.Any()).
			Return(&commands.RegisterOpenDayResult{Registration: newRegistration()}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, testRawInitData,
			map[string]string{"Idempotency-Key": "idem-1"})

		var response resdto.OpenDayRegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("od-01", response.EventID)
		s.Equal("confirmed", response.Status)
		s.NotEmpty(response.Ticket)
	})

	s.Run("success: 200 when the idempotency key replays", func() {
		s.mockOpenDays.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), "idem-1", gomock.Any()).
			Return(&commands.RegisterOpenDayResult{Registration: newRegistration(), IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, testRawInitData,
			map[string]string{"Idempotency-Key": "idem-1"})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for unknown event", func() {
		s.mockOpenDays.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testRawInitData)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "event_not_found")
	})

	s.Run("error: 409 when capacity runs out", func() {
		s.mockOpenDays.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCapacityExhausted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testRawInitData)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "capacity_exhausted")
	})

	s.Run("error: 409 for duplicate email", func() {
		s.mockOpenDays.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrAlreadyRegistered).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testRawInitData)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already_registered")
	})

	s.Run("error: 409 when the program belongs to another university", func() {
		s.mockOpenDays.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrProgramNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testRawInitData)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "program_not_allowed")
	})

	s.Run("error: 404 when the caller has no profile", func() {
		s.mockOpenDays.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testRawInitData)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "profile_not_found")
	})

	s.Run("error: 400 when email is missing", func() {
		invalid := map[string]any{"event_id": "od-01", "full_name": "Ada"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, invalid, testRawInitData)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request format")
	})
}

func (s *AdmissionsHandlerTestSuite) TestCreateInquiry() {
	url := "/admissions/inquiries"
	body := map[string]any{
		"university_id": "u-01",
		"question":      "Do you offer evening classes?",
	}

	s.Run("success: 201 for a new inquiry", func() {
		inquiry := &repository.Inquiry{
			ID:           uuid.New(),
			UniversityID: "u-01",
			Question:     "Do you offer evening classes?",
			Status:       "new",
			CreatedAt:    time.Now(),
		}
		s.mockInquiries.EXPECT().Create(gomock.Any(), testRawInitData, gomock.Any(), "", gomock.Any()).
			Return(&commands.CreateInquiryResult{Inquiry: inquiry}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testRawInitData)

		var response resdto.InquiryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("u-01", response.UniversityID)
		s.Equal("new", response.Status)
	})

	s.Run("error: 404 for unknown university", func() {
		s.mockInquiries.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUniversityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, testRawInitData)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "university_not_found")
	})
}
