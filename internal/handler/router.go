package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"grandehotel-core/internal/domain/user"
	"grandehotel-core/internal/handler/api"
	"grandehotel-core/internal/handler/middleware"
	"grandehotel-core/internal/pkg/config"
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
	draftHandler *api.DraftHandler,
	bookingHandler *api.BookingHandler,
	hotelHandler *api.HotelHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, draftHandler, bookingHandler, hotelHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	draftHandler *api.DraftHandler,
	bookingHandler *api.BookingHandler,
	hotelHandler *api.HotelHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		drafts := apiGroup.Group("/drafts")
		drafts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(drafts, []route{
				{Method: http.MethodGet, Path: "", Handler: draftHandler.Get},
				{Method: http.MethodPut, Path: "/stay", Handler: draftHandler.SetStay},
				{Method: http.MethodPost, Path: "/rooms", Handler: draftHandler.AddRoom},
				{Method: http.MethodDelete, Path: "/rooms/:roomTypeId", Handler: draftHandler.RemoveRoom},
				{Method: http.MethodPost, Path: "/finalize", Handler: draftHandler.Finalize},
			})
		}

		my := apiGroup.Group("/my")
		my.Use(authMiddleware.RequireAuth())
		{
			addRoutes(my, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListMine},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		bookings.Use(authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodGet, Path: "/:id/actions", Handler: bookingHandler.Actions},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.ChangeStatus},
			})
		}

		hotels := apiGroup.Group("/hotels")
		hotels.Use(authMiddleware.RequireAuth())
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: hotelHandler.Calendar},
				{Method: http.MethodGet, Path: "/:id/room-types", Handler: hotelHandler.RoomTypes},
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
