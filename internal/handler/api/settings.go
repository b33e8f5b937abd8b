package api

import (
	"net/http"

	"unihub/internal/handler/httperr"
	"unihub/internal/handler/middleware"
	"unihub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings commands.SettingsCommands
}

func NewSettingsHandler(settings commands.SettingsCommands) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
	}
}

// @Summary Get user settings
// @Tags users
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /users/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context(), middleware.GetRawInitData(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// @Summary Replace user settings
// @Tags users
// @Accept json
// @Produce json
// @Param request body map[string]any true "Settings object"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /users/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings map[string]any
	if err := c.ShouldBindJSON(&settings); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	p, err := h.settings.Update(c.Request.Context(), middleware.GetRawInitData(c), settings)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": p.Settings()})
}
