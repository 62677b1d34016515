package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	Item        *api.ItemHandler
	Booking     *api.BookingHandler
	ItemRequest *api.ItemRequestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		limited := []gin.HandlerFunc{limiter.Middleware()}
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/auth/login", Handler: h.Auth.Login, Mw: limited},
			{Method: http.MethodPost, Path: "/auth/logout", Handler: h.Auth.Logout},
			{Method: http.MethodPost, Path: "/users", Handler: h.User.Register, Mw: limited},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth(), limiter.Middleware())

		users := authed.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.User.Update},
			})
		}

		items := authed.Group("/items")
		{
			addRoutes(items, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Item.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Item.ListOwned},
				{Method: http.MethodGet, Path: "/search", Handler: h.Item.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Item.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Item.Update},
				{Method: http.MethodPost, Path: "/:id/comment", Handler: h.Item.Comment},
			})
		}

		bookings := authed.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListForRenter},
				{Method: http.MethodGet, Path: "/owner", Handler: h.Booking.ListForOwner},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Decide},
			})
		}

		requests := authed.Group("/requests")
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.ItemRequest.Create},
				{Method: http.MethodGet, Path: "", Handler: h.ItemRequest.ListOwn},
				{Method: http.MethodGet, Path: "/all", Handler: h.ItemRequest.ListOthers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.ItemRequest.Get},
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
