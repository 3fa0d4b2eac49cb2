package handler

import (
	"log/slog"
	"net/http"

	"github.com/Fox-16s/reservat-io/internal/handler/api"
	reqdto "github.com/Fox-16s/reservat-io/internal/handler/dto/request"
	"github.com/Fox-16s/reservat-io/internal/handler/middleware"
	"github.com/Fox-16s/reservat-io/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Property    *api.PropertyHandler
	Report      *api.ReportHandler
	Banking     *api.BankingHandler
	AuthMW      *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	if err := reqdto.RegisterValidators(); err != nil {
		slog.Error("failed to register request validators", "error", err)
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(h.AuthMW.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(h.AuthMW.RequireAuth())

		addRoutes(protected.Group("/properties"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Property.List},
			{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Property.Calendar},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Property.Availability},
		})

		addRoutes(protected.Group("/reservations"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.Reservation.Refresh},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Edit},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
			{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Reservation.Payments},
			{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Reservation.AddPayment},
			{Method: http.MethodPut, Path: "/:id/payment-notes", Handler: h.Reservation.UpdatePaymentNotes},
		})

		addRoutes(protected.Group("/reports"), []route{
			{Method: http.MethodGet, Path: "/monthly", Handler: h.Report.Monthly},
			{Method: http.MethodGet, Path: "/monthly/export", Handler: h.Report.Export},
		})

		addRoutes(protected.Group("/banking"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Banking.Aliases},
		})
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
