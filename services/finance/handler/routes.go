package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fintrackr/fintrackr/internal/pkg/middleware"
	"github.com/fintrackr/fintrackr/internal/pkg/models"
	httphandler "github.com/fintrackr/fintrackr/services/finance/handler/http"
)

// Handler coordinates the HTTP handlers for the finance service
type Handler struct {
	authHandler        *httphandler.AuthHandler
	transactionHandler *httphandler.TransactionHandler
	dashboardHandler   *httphandler.DashboardHandler
	exportHandler      *httphandler.ExportHandler
	cfg                *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *httphandler.AuthHandler,
	transactionHandler *httphandler.TransactionHandler,
	dashboardHandler *httphandler.DashboardHandler,
	exportHandler *httphandler.ExportHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:        authHandler,
		transactionHandler: transactionHandler,
		dashboardHandler:   dashboardHandler,
		exportHandler:      exportHandler,
		cfg:                cfg,
	}
}

// RegisterRoutes registers all routes. Everything except registration
// and login sits behind the JWT middleware.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// Protected routes
	jwtMiddleware := middleware.JWTAuthMiddleware(h.cfg.JWT)

	authGroup.GET("/me", h.authHandler.Me, jwtMiddleware)

	txGroup := e.Group("/api/transactions", jwtMiddleware)
	txGroup.GET("", h.transactionHandler.List)
	txGroup.POST("", h.transactionHandler.Create)
	txGroup.GET("/filter", h.transactionHandler.Filter)
	txGroup.GET("/:id", h.transactionHandler.Get)
	txGroup.PUT("/:id", h.transactionHandler.Update)
	txGroup.DELETE("/:id", h.transactionHandler.Delete)

	dashboardGroup := e.Group("/dashboard", jwtMiddleware)
	dashboardGroup.GET("/monthly", h.dashboardHandler.Monthly)
	dashboardGroup.GET("/categories", h.dashboardHandler.Categories)

	exportGroup := e.Group("/export", jwtMiddleware)
	exportGroup.GET("/transactions", h.exportHandler.Transactions)
}
