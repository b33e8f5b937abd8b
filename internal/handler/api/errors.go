package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"unihub/internal/handler/httperr"
	"unihub/internal/pkg/errs"
)

// respondDomainError maps usecase errors to HTTP status codes and the
// stable detail codes clients branch on.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrIdentityUnknown):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "user_id_required")
	case errors.Is(err, errs.ErrProfileNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "profile_not_found")
	case errors.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "invalid_credentials")
	case errors.Is(err, errs.ErrAuthUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "auth_service_unavailable")
	case errors.Is(err, errs.ErrUniversityNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "university_not_found")
	case errors.Is(err, errs.ErrProgramNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "program_not_found")
	case errors.Is(err, errs.ErrProgramNotAllowed):
		httperr.AbortWithError(c, http.StatusConflict, err, "program_not_allowed")
	case errors.Is(err, errs.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "event_not_found")
	case errors.Is(err, errs.ErrRegistrationClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "registration_closed")
	case errors.Is(err, errs.ErrCapacityExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, "capacity_exhausted")
	case errors.Is(err, errs.ErrAlreadyRegistered):
		httperr.AbortWithError(c, http.StatusConflict, err, "already_registered")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
	}
}
