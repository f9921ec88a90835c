package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/studio-booking/internal/model"
    "github.com/iliyamo/studio-booking/internal/repository"
    "github.com/iliyamo/studio-booking/internal/service"
    "github.com/iliyamo/studio-booking/internal/validation"
)

// BookingHandler serves booking submission and review.
type BookingHandler struct {
    Svc *service.BookingService
    Log *logrus.Logger
}

func NewBookingHandler(s *service.BookingService, log *logrus.Logger) *BookingHandler {
    return &BookingHandler{Svc: s, Log: log}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
    var req validation.BookingRequest
    if err := c.Bind(&req); err != nil {
        return message(c, http.StatusBadRequest, "Invalid booking data")
    }
    req.Normalize()
    if err := c.Validate(&req); err != nil {
        return message(c, http.StatusBadRequest, "Invalid booking data")
    }
    ctx, cancel := dbContext(c)
    defer cancel()
    b, err := h.Svc.Create(ctx, req.Booking())
    if err != nil {
        return internalError(c, h.Log, err, "Error creating booking")
    }
    return c.JSON(http.StatusCreated, b)
}

// List handles GET /api/bookings?status=&search=&date=.
func (h *BookingHandler) List(c echo.Context) error {
    ctx, cancel := dbContext(c)
    defer cancel()
    items, err := h.Svc.List(ctx, c.QueryParam("status"), c.QueryParam("search"), c.QueryParam("date"))
    if err != nil {
        return internalError(c, h.Log, err, "Error fetching bookings")
    }
    return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return message(c, http.StatusBadRequest, "Invalid booking ID")
    }
    ctx, cancel := dbContext(c)
    defer cancel()
    b, err := h.Svc.Get(ctx, id)
    if errors.Is(err, repository.ErrNotFound) {
        return message(c, http.StatusNotFound, "Booking not found")
    }
    if err != nil {
        return internalError(c, h.Log, err, "Error fetching booking")
    }
    return c.JSON(http.StatusOK, b)
}

// GetByReference handles GET /api/bookings/reference/:reference so a
// requester can check on their own booking.
func (h *BookingHandler) GetByReference(c echo.Context) error {
    ctx, cancel := dbContext(c)
    defer cancel()
    b, err := h.Svc.GetByReference(ctx, c.Param("reference"))
    if errors.Is(err, repository.ErrNotFound) {
        return message(c, http.StatusNotFound, "Booking not found")
    }
    if err != nil {
        return internalError(c, h.Log, err, "Error fetching booking")
    }
    return c.JSON(http.StatusOK, b)
}

// UpdateStatus handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return message(c, http.StatusBadRequest, "Invalid booking ID")
    }
    var req validation.StatusRequest
    if err := c.Bind(&req); err != nil {
        return message(c, http.StatusBadRequest, "Invalid booking status data")
    }
    if err := c.Validate(&req); err != nil {
        return message(c, http.StatusBadRequest, "Invalid booking status data")
    }
    ctx, cancel := dbContext(c)
    defer cancel()
    b, err := h.Svc.UpdateStatus(ctx, id, model.BookingStatus(req.Status))
    switch {
    case errors.Is(err, repository.ErrNotFound):
        return message(c, http.StatusNotFound, "Booking not found")
    case errors.Is(err, repository.ErrInvalidTransition):
        return message(c, http.StatusConflict, "Booking has already been decided")
    case errors.Is(err, service.ErrInvalidStatus):
        return message(c, http.StatusBadRequest, "Invalid booking status data")
    case err != nil:
        return internalError(c, h.Log, err, "Error updating booking status")
    }
    return c.JSON(http.StatusOK, b)
}
