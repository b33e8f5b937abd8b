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

type EventsHandler struct {
	queries queries.EventQueries
	events  commands.EventCommands
	auth    commands.AuthCommands
}

func NewEventsHandler(q queries.EventQueries, events commands.EventCommands, auth commands.AuthCommands) *EventsHandler {
	return &EventsHandler{
		queries: q,
		events:  events,
		auth:    auth,
	}
}

// @Summary List campus events
// @Tags events
// @Produce json
// @Param q query string false "Full text filter on title and description"
// @Param category query string false "Filter by category"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} queries.Page[queries.CampusEventView]
// @Router /events [get]
func (h *EventsHandler) List(c *gin.Context) {
	filter := shared.CampusEventFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}

	page, err := h.queries.List(c.Request.Context(), filter, c.Query("cursor"), limitQuery(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Get campus event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} queries.CampusEventView
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [get]
func (h *EventsHandler) GetByID(c *gin.Context) {
	view, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Register for a campus event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reqdto.EventRegistrationRequest true "Registration form"
// @Success 201 {object} resdto.EventRegistrationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /events/{id}/registrations [post]
func (h *EventsHandler) Register(c *gin.Context) {
	var req reqdto.EventRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	result, err := h.events.Register(
		c.Request.Context(),
		middleware.GetRawInitData(c),
		c.Param("id"),
		req.FormPayload,
		requestMeta(c),
	)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventRegistration(result.Registration))
}

// @Summary List my event registrations
// @Tags events
// @Produce json
// @Success 200 {array} queries.EventRegistrationView
// @Router /events/registrations/my [get]
func (h *EventsHandler) ListMyRegistrations(c *gin.Context) {
	p, err := h.auth.Resolve(c.Request.Context(), middleware.GetRawInitData(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	views, err := h.queries.ListMyRegistrations(c.Request.Context(), p.ID())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": views})
}
