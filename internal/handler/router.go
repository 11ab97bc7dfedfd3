package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub/internal/domain/user"
	"donorhub/internal/handler/api"
	"donorhub/internal/handler/middleware"
	"donorhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Registration *api.RegistrationHandler
	Donation     *api.DonationHandler
	Inventory    *api.InventoryHandler
	Eligibility  *api.EligibilityHandler
	Notification *api.NotificationHandler
	Reference    *api.ReferenceHandler
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

	staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		registrations := apiGroup.Group("/registrations")
		registrations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(registrations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Registration.Create, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Registration.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Registration.Approve, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Registration.Reject, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Registration.Cancel, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Registration.CheckIn, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Registration.Complete, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		donations := apiGroup.Group("/donations")
		donations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(donations, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Donation.Get},
				{Method: http.MethodPost, Path: "/:id/use", Handler: h.Donation.MarkUsed, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		inventory := apiGroup.Group("/inventory")
		inventory.Use(authMiddleware.RequireAuth())
		{
			addRoutes(inventory, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Inventory.ListAll},
			})
		}

		eligibility := apiGroup.Group("/eligibility")
		eligibility.Use(authMiddleware.RequireAuth())
		{
			addRoutes(eligibility, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Eligibility.Submit, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/pending", Handler: h.Eligibility.ListPending},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Eligibility.Get},
				{Method: http.MethodPost, Path: "/:id/decide", Handler: h.Eligibility.Decide, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
			})
		}

		donors := apiGroup.Group("/donors")
		donors.Use(authMiddleware.RequireAuth())
		{
			addRoutes(donors, []route{
				{Method: http.MethodGet, Path: "/:id/notifications", Handler: h.Notification.ListByDonor},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(authMiddleware.RequireAuth())
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reference.ListEvents},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reference.GetEvent},
				{Method: http.MethodGet, Path: "/:id/registrations", Handler: h.Registration.ListByEvent},
			})
		}

		hospitals := apiGroup.Group("/hospitals")
		hospitals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(hospitals, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reference.ListHospitals},
				{Method: http.MethodGet, Path: "/:id/inventory", Handler: h.Inventory.ListByHospital},
				{Method: http.MethodPut, Path: "/:id/inventory", Handler: h.Inventory.Restock, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}
	}
}

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
