package api

import (
	"net/http"

	reqdto "unihub/internal/handler/dto/request"
	resdto "unihub/internal/handler/dto/response"
	"unihub/internal/handler/httperr"
	"unihub/internal/handler/middleware"
	"unihub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth commands.AuthCommands
}

func NewAuthHandler(auth commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

func requestMeta(c *gin.Context) commands.RequestMeta {
	return commands.RequestMeta{
		RequestID: middleware.GetRequestID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// @Summary Resolve current profile
// @Description Resolve (and lazily create) the profile bound to the signed payload identity
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, err := h.auth.Resolve(c.Request.Context(), middleware.GetRawInitData(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfile(p))
}

// @Summary University account login
// @Description Elevate the caller's role by authenticating against the university directory
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format")
		return
	}

	p, err := h.auth.Login(c.Request.Context(), middleware.GetRawInitData(c), req.Login, req.Password, requestMeta(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfile(p))
}

// @Summary Logout
// @Description Drop the elevated role and revert the profile to applicant
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.ProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	p, err := h.auth.Logout(c.Request.Context(), middleware.GetRawInitData(c), requestMeta(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfile(p))
}
