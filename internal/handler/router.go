package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"unihub/internal/handler/api"
	"unihub/internal/handler/middleware"
	"unihub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	settingsHandler *api.SettingsHandler,
	admissionsHandler *api.AdmissionsHandler,
	eventsHandler *api.EventsHandler,
	gate *middleware.SignedPayloadGate,
) {
	setupMiddleware(engine, cfg, gate)
	setupRoutes(engine, authHandler, settingsHandler, admissionsHandler, eventsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, gate *middleware.SignedPayloadGate) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(gate.Require())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	settingsHandler *api.SettingsHandler,
	admissionsHandler *api.AdmissionsHandler,
	eventsHandler *api.EventsHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api/v1")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/settings", Handler: settingsHandler.Get},
				{Method: http.MethodPut, Path: "/settings", Handler: settingsHandler.Update},
			})
		}

		admissions := apiGroup.Group("/admissions")
		{
			addRoutes(admissions, []route{
				{Method: http.MethodGet, Path: "/universities", Handler: admissionsHandler.ListUniversities},
				{Method: http.MethodGet, Path: "/universities/:id", Handler: admissionsHandler.GetUniversity},
				{Method: http.MethodGet, Path: "/programs", Handler: admissionsHandler.ListPrograms},
				{Method: http.MethodGet, Path: "/open-days", Handler: admissionsHandler.ListOpenDays},
				{Method: http.MethodPost, Path: "/open-days/registrations", Handler: admissionsHandler.RegisterOpenDay},
				{Method: http.MethodPost, Path: "/inquiries", Handler: admissionsHandler.CreateInquiry},
			})
		}

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: eventsHandler.List},
				{Method: http.MethodGet, Path: "/registrations/my", Handler: eventsHandler.ListMyRegistrations},
				{Method: http.MethodGet, Path: "/:id", Handler: eventsHandler.GetByID},
				{Method: http.MethodPost, Path: "/:id/registrations", Handler: eventsHandler.Register},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
