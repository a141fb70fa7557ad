package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jetski-rentals/internal/handler/api"
	"jetski-rentals/internal/handler/middleware"
	"jetski-rentals/internal/pkg/config"
	"jetski-rentals/internal/pkg/jwt"
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
	ridesHandler *api.RidesHandler,
	bookingHandler *api.BookingHandler,
	weatherHandler *api.WeatherHandler,
	contactHandler *api.ContactHandler,
	quizHandler *api.QuizHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, ridesHandler, bookingHandler, weatherHandler, contactHandler, quizHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	ridesHandler *api.RidesHandler,
	bookingHandler *api.BookingHandler,
	weatherHandler *api.WeatherHandler,
	contactHandler *api.ContactHandler,
	quizHandler *api.QuizHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rides", Handler: ridesHandler.ListRides},
			{Method: http.MethodPost, Path: "/quotes", Handler: ridesHandler.Quote},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CreateBooking},
			{Method: http.MethodGet, Path: "/weather", Handler: weatherHandler.GetAdvice},
			{Method: http.MethodPost, Path: "/contact", Handler: contactHandler.SendMessage},
			{Method: http.MethodPost, Path: "/quiz", Handler: quizHandler.SubmitQuiz},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodGet, Path: "/calendar", Handler: adminHandler.GetCalendar},
				{Method: http.MethodGet, Path: "/analytics", Handler: adminHandler.GetAnalytics},
				{Method: http.MethodGet, Path: "/quiz", Handler: adminHandler.ListQuizSubmissions},
				{
					Method:  http.MethodPatch,
					Path:    "/bookings/:id/status",
					Handler: adminHandler.UpdateBookingStatus,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin)},
				},
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
