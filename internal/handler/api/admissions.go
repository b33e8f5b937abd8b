package api

import (
	"net/http"

	reqdto "unihub/internal/handler/dto/request"
	resdto "unihub/internal/handler/dto/response"
	"unihub/internal/handler/httperr"
	"unihub/internal/handler/middleware"
	"unihub/internal/usecase/commands"
	"unihub/internal/usecase/queries"
	"unihub/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AdmissionsHandler struct {
	queries   queries.AdmissionsQueries
	openDays  commands.OpenDayCommands
	inquiries commands.InquiryCommands
}

func NewAdmissionsHandler(
	q queries.AdmissionsQueries,
	openDays commands.OpenDayCommands,
	inquiries commands.InquiryCommands,
) *AdmissionsHandler {
	return &AdmissionsHandler{
		queries:   q,
		openDays:  openDays,
		inquiries: inquiries,
	}
}

// @Summary List universities
// @Tags admissions
// @Produce json
// @Param city query string false "Filter by city"
// @Param has_dormitory query bool false "Filter by dormitory availability"
// @Param has_open_day query bool false "Filter by open day availability"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} queries.Page[queries.UniversityView]
// @Router /admissions/universities [get]
func (h *AdmissionsHandler) ListUniversities(c *gin.Context) {
	filter := shared.UniversityFilter{
		City:         c.Query("city"),
		HasDormitory: boolPtrQuery(c, "has_dormitory"),
		HasOpenDay:   boolPtrQuery(c, "has_open_day"),
	}

	page, err := h.queries.ListUniversities(c.Request.Context(), filter, c.Query("cursor"), limitQuery(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Get university
// @Tags admissions
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} queries.UniversityView
// @Failure 404 {object} httperr.Response
// @Router /admissions/universities/{id} [get]
func (h *AdmissionsHandler) GetUniversity(c *gin.Context) {
	view, err := h.queries.GetUniversity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List programs
// @Tags admissions
// @Produce json
// @Param university_id query string false "Filter by university"
// @Param level query string false "Filter by degree level"
// @Param format query string false "Filter by study format"
// @Param has_budget query bool false "Filter by budget places"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} queries.Page[queries.ProgramView]
// @Router /admissions/programs [get]
func (h *AdmissionsHandler) ListPrograms(c *gin.Context) {
	filter := shared.ProgramFilter{
		UniversityID: c.Query("university_id"),
		Level:        c.Query("level"),
		Format:       c.Query("format"),
		HasBudget:    boolPtrQuery(c, "has_budget"),
	}

	page, err := h.queries.ListPrograms(c.Request.Context(), filter, c.Query("cursor"), limitQuery(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary List open day events
// @Tags admissions
// @Produce json
// @Param university_id query string true "University ID"
// @Param type query string false "Filter by event type"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} queries.Page[queries.OpenDayEventView]
// @Router /admissions/open-days [get]
func (h *AdmissionsHandler) ListOpenDays(c *gin.Context) {
	filter := shared.OpenDayFilter{
		UniversityID: c.Query("university_id"),
		Type:         c.Query("type"),
	}

	page, err := h.queries.ListOpenDays(c.Request.Context(), filter, c.Query("cursor"), limitQuery(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Register for an open day
// @Tags admissions
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.OpenDayRegistrationRequest true "Registration request"
// @Success 200 {object} resdto.OpenDayRegistrationResponse "Replayed registration"
// @Success 201 {object} resdto.OpenDayRegistrationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admissions/open-days/registrations [post]
func (h *AdmissionsHandler) RegisterOpenDay(c *gin.Context) {
	var req reqdto.OpenDayRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	result, err := h.openDays.Register(
		c.Request.Context(),
		middleware.GetRawInitData(c),
		req.ToInput(),
		c.GetHeader("Idempotency-Key"),
		requestMeta(c),
	)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromOpenDayRegistration(result.Registration))
}

// @Summary Create an admissions inquiry
// @Tags admissions
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.InquiryRequest true "Inquiry request"
// @Success 200 {object} resdto.InquiryResponse "Replayed inquiry"
// @Success 201 {object} resdto.InquiryResponse
// @Failure 404 {object} httperr.Response
// @Router /admissions/inquiries [post]
func (h *AdmissionsHandler) CreateInquiry(c *gin.Context) {
	var req reqdto.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	result, err := h.inquiries.Create(
		c.Request.Context(),
		middleware.GetRawInitData(c),
		req.ToInput(),
		c.GetHeader("Idempotency-Key"),
		requestMeta(c),
	)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromInquiry(result.Inquiry))
}
