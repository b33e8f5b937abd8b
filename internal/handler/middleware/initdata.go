package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"unihub/internal/handler/httperr"
	"unihub/internal/pkg/config"
	"unihub/internal/pkg/errs"
	"unihub/internal/pkg/initdata"
)

// SignedPayloadHeader carries the raw signed payload on every client call.
const SignedPayloadHeader = "X-Signed-Payload"

const (
	ctxRawInitDataKey    = "raw_init_data"
	ctxExternalUserIDKey = "external_user_id"
)

var errInvalidSignature = errs.New("signed payload verification failed")

type SignedPayloadGate struct {
	secret       string
	bypassPrefix []string
}

// NewSignedPayloadGate verifies init data on every request except admin
// and health paths, which are authenticated by other means.
func NewSignedPayloadGate(cfg config.AuthConfig) *SignedPayloadGate {
	return &SignedPayloadGate{
		secret:       cfg.BotToken,
		bypassPrefix: []string{"/admin", "/health", "/swagger"},
	}
}

func (g *SignedPayloadGate) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.bypassed(c.Request.URL.Path) {
			c.Next()
			return
		}

		raw := c.GetHeader(SignedPayloadHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing signed payload header"), "init data is required")
			return
		}

		if !initdata.Verify(raw, g.secret) {
			slog.Warn("rejected request with invalid signed payload",
				"path", c.Request.URL.Path, "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusForbidden,
				errInvalidSignature, "invalid init data signature")
			return
		}

		c.Set(ctxRawInitDataKey, raw)
		if id := initdata.UserID(raw); id != "" {
			c.Set(ctxExternalUserIDKey, id)
		}
		c.Next()
	}
}

func (g *SignedPayloadGate) bypassed(path string) bool {
	for _, prefix := range g.bypassPrefix {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// GetRawInitData returns the verified signed payload stored by the gate.
func GetRawInitData(c *gin.Context) string {
	if raw, exists := c.Get(ctxRawInitDataKey); exists {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return ""
}

// GetExternalUserID returns the best-effort user id extracted from the
// verified payload. Empty when the payload carries no user object.
func GetExternalUserID(c *gin.Context) string {
	if id, exists := c.Get(ctxExternalUserIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
