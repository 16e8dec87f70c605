package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayspots/internal/handler/api"
	"stayspots/internal/handler/middleware"
	"stayspots/internal/pkg/config"
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
	spotHandler *api.SpotHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, spotHandler, bookingHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	spotHandler *api.SpotHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
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
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		spots := apiGroup.Group("/spots")
		{
			addRoutes(spots, []route{
				{Method: http.MethodGet, Path: "", Handler: spotHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: spotHandler.Get},
				{Method: http.MethodGet, Path: "/:id/images", Handler: spotHandler.ListImages},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListBySpot},
			})

			// Occupancy is public but guest identity is owner-only, so the
			// booking calendar takes OptionalAuth instead of RequireAuth.
			spotsOptional := spots.Group("")
			spotsOptional.Use(authMiddleware.OptionalAuth())
			addRoutes(spotsOptional, []route{
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: bookingHandler.ListForSpot},
			})

			spotsRequired := spots.Group("")
			spotsRequired.Use(authMiddleware.RequireAuth())
			addRoutes(spotsRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: spotHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: spotHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: spotHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/images", Handler: spotHandler.AddImage},
				{Method: http.MethodPost, Path: "/:id/bookings", Handler: bookingHandler.Create},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: reviewHandler.Create},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListOwn},
				{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.Reschedule},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: reviewHandler.Get},
			})

			reviewsRequired := reviews.Group("")
			reviewsRequired.Use(authMiddleware.RequireAuth())
			addRoutes(reviewsRequired, []route{
				{Method: http.MethodGet, Path: "/current", Handler: reviewHandler.ListOwn},
				{Method: http.MethodPut, Path: "/:id", Handler: reviewHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/images", Handler: reviewHandler.AddImage},
			})
		}

		images := apiGroup.Group("")
		images.Use(authMiddleware.RequireAuth())
		{
			addRoutes(images, []route{
				{Method: http.MethodDelete, Path: "/spot-images/:imageId", Handler: spotHandler.DeleteImage},
				{Method: http.MethodDelete, Path: "/review-images/:imageId", Handler: reviewHandler.DeleteImage},
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
