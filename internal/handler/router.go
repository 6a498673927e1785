package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reservas/internal/handler/api"
	"reservas/internal/handler/middleware"
	"reservas/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservations *api.ReservationHandler
	Inventory    *api.InventoryHandler
	Events       *api.EventsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, reservationHandler *api.ReservationHandler, inventoryHandler *api.InventoryHandler, eventsHandler *api.EventsHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, Handlers{
		Reservations: reservationHandler,
		Inventory:    inventoryHandler,
		Events:       eventsHandler,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/reservas", Handler: h.Reservations.ListReservations},
			{Method: http.MethodDelete, Path: "/reservas/:id", Handler: h.Reservations.DeleteReservation},
			{Method: http.MethodPost, Path: "/reservar", Handler: h.Reservations.Reserve},
			{Method: http.MethodGet, Path: "/inventario", Handler: h.Inventory.ListInventory},
			{Method: http.MethodGet, Path: "/eventos", Handler: h.Events.Stream, Mw: []gin.HandlerFunc{middleware.EventStreamHeaders()}},
		})
	}

	// Everything outside /api is the static front-end
	if cfg.Server.StaticDir != "" {
		engine.NoRoute(gin.WrapH(http.FileServer(gin.Dir(cfg.Server.StaticDir, false))))
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
		"status": "ok",
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
