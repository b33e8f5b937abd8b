package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body rendered to clients. The detail string is a
// stable machine-readable code for domain errors ("event_not_found") or a
// short human sentence for transport-level failures.
type Response struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, detail string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
