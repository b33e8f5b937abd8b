//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"unihub/internal/domain/profile"
	"unihub/internal/handler/api"
	"unihub/internal/pkg/errs"
	"unihub/tests/common/httptest"
	commandsmock "unihub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockSettings *commandsmock.MockSettingsCommands
	handler      *api.SettingsHandler
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettings = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.handler = api.NewSettingsHandler(s.mockSettings)

	s.router.GET("/users/settings", withIdentity(s.handler.Get))
	s.router.PUT("/users/settings", withIdentity(s.handler.Update))
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func (s *SettingsHandlerTestSuite) TestGet() {
	s.Run("success: returns stored settings", func() {
		s.mockSettings.EXPECT().Get(gomock.Any(), testRawInitData).
			Return(map[string]any{"notifications": true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/settings", nil, testRawInitData)

		var response struct {
			Settings map[string]any `json:"settings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(true, response.Settings["notifications"])
	})

	s.Run("error: 404 when profile does not exist", func() {
		s.mockSettings.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/settings", nil, testRawInitData)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "profile_not_found")
	})
}

func (s *SettingsHandlerTestSuite) TestUpdate() {
	s.Run("success: replaces settings wholesale", func() {
		now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
		updated := profile.ReconstructProfile(
			uuid.New(), "u1", profile.RoleApplicant, []string{},
			"Ada Lovelace", "ada@example.com", "en",
			map[string]any{"theme": "dark"}, now, now,
		)
		s.mockSettings.EXPECT().Update(gomock.Any(), testRawInitData, gomock.Any()).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/users/settings",
			map[string]any{"theme": "dark"}, testRawInitData)

		var response struct {
			Settings map[string]any `json:"settings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("dark", response.Settings["theme"])
	})
}
