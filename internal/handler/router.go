package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"arenaos/internal/domain/user"
	"arenaos/internal/handler/api"
	"arenaos/internal/handler/middleware"
	"arenaos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	CheckIn *api.CheckInHandler
	Ledger  *api.LedgerHandler
	Venue   *api.VenueHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		// The venue's catalog is public; the demo landing page renders
		// it before anyone logs in.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/resources", Handler: h.Venue.ListResources},
			{Method: http.MethodGet, Path: "/resources/:id", Handler: h.Venue.GetResource},
			{Method: http.MethodGet, Path: "/policy", Handler: h.Venue.GetPolicy},
			{Method: http.MethodGet, Path: "/tenant", Handler: h.Venue.GetTenant},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)

			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/resources/:id/availability", Handler: h.Booking.GetAvailability},

				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListUserBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: h.Booking.ConfirmPayment},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.CancelBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/checkin", Handler: h.CheckIn.CheckIn},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: h.Booking.CompleteBooking, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/bookings/:id/transactions", Handler: h.Ledger.ListBookingTransactions},

				{Method: http.MethodGet, Path: "/transactions", Handler: h.Ledger.ListUserTransactions},
				{Method: http.MethodPost, Path: "/transactions/:id/verify", Handler: h.Ledger.VerifyTransaction, Mw: []gin.HandlerFunc{staffOnly}},
			})

			admin := authed.Group("/admin")
			admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/resources", Handler: h.Admin.AddResource},
				{Method: http.MethodPost, Path: "/rate-cards", Handler: h.Admin.AddRateCard},
				{Method: http.MethodPut, Path: "/policy", Handler: h.Admin.UpdatePolicy},
				{Method: http.MethodPut, Path: "/branding", Handler: h.Admin.UpdateBranding},
				{Method: http.MethodPut, Path: "/integration", Handler: h.Admin.UpdateIntegration},
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
