package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/studio-booking/internal/handler"
	"github.com/iliyamo/studio-booking/internal/metrics"
	"github.com/iliyamo/studio-booking/internal/middleware"
)

// RegisterRoutes registers the unauthenticated operational endpoints:
// the health check, the Prometheus scrape target and the department list.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/api/departments", handler.Departments)
}

// RegisterAuth registers login, logout and the session status probe.  All
// three are public; SessionAuth must already be installed on e.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)
	g.GET("/status", a.Status)
}

// RegisterEquipment registers the inventory routes.  Reads are public and
// go through the response cache; writes require an admin session.
func RegisterEquipment(e *echo.Echo, h *handler.EquipmentHandler, cache *middleware.ResponseCache) {
	g := e.Group("/api/equipment")
	g.GET("", h.List, cache.Middleware())
	g.GET("/:id", h.Get)

	admin := middleware.RequireAdmin()
	g.POST("", h.Create, admin)
	g.PUT("/:id", h.Update, admin)
	g.DELETE("/:id", h.Delete, admin)
}

// RegisterBookings registers booking routes.  Submission and reference
// lookup are public; everything else requires an admin session.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler) {
	g := e.Group("/api/bookings")
	g.POST("", h.Create)
	g.GET("/reference/:reference", h.GetByReference)

	admin := middleware.RequireAdmin()
	g.GET("", h.List, admin)
	// static segment wins over /:id in Echo's router
	g.GET("/export", h.Export, admin)
	g.GET("/:id", h.Get, admin)
	g.PUT("/:id/status", h.UpdateStatus, admin)
}
