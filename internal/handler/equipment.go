package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/studio-booking/internal/repository"
    "github.com/iliyamo/studio-booking/internal/service"
    "github.com/iliyamo/studio-booking/internal/validation"
)

// EquipmentHandler serves the inventory endpoints.
type EquipmentHandler struct {
    Svc *service.EquipmentService
    Log *logrus.Logger
}

func NewEquipmentHandler(s *service.EquipmentService, log *logrus.Logger) *EquipmentHandler {
    return &EquipmentHandler{Svc: s, Log: log}
}

// List handles GET /api/equipment.
func (h *EquipmentHandler) List(c echo.Context) error {
    ctx, cancel := dbContext(c)
    defer cancel()
    items, err := h.Svc.List(ctx)
    if err != nil {
        return internalError(c, h.Log, err, "Error fetching equipment")
    }
    return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/equipment/:id.
func (h *EquipmentHandler) Get(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return message(c, http.StatusBadRequest, "Invalid equipment ID")
    }
    ctx, cancel := dbContext(c)
    defer cancel()
    e, err := h.Svc.Get(ctx, id)
    if errors.Is(err, repository.ErrNotFound) {
        return message(c, http.StatusNotFound, "Equipment not found")
    }
    if err != nil {
        return internalError(c, h.Log, err, "Error fetching equipment")
    }
    return c.JSON(http.StatusOK, e)
}

// Create handles POST /api/equipment.
func (h *EquipmentHandler) Create(c echo.Context) error {
    var req validation.EquipmentRequest
    if err := c.Bind(&req); err != nil {
        return message(c, http.StatusBadRequest, "Invalid equipment data")
    }
    if err := c.Validate(&req); err != nil {
        return message(c, http.StatusBadRequest, "Invalid equipment data")
    }
    ctx, cancel := dbContext(c)
    defer cancel()
    e, err := h.Svc.Create(ctx, req.Equipment())
    if err != nil {
        return internalError(c, h.Log, err, "Error creating equipment")
    }
    return c.JSON(http.StatusCreated, e)
}

// Update handles PUT /api/equipment/:id.  Only the fields present in the
// body change.
func (h *EquipmentHandler) Update(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return message(c, http.StatusBadRequest, "Invalid equipment ID")
    }
    var req validation.EquipmentPatchRequest
    if err := c.Bind(&req); err != nil {
        return message(c, http.StatusBadRequest, "Invalid equipment data")
    }
    if err := c.Validate(&req); err != nil {
        return message(c, http.StatusBadRequest, "Invalid equipment data")
    }
    ctx, cancel := dbContext(c)
    defer cancel()
    e, err := h.Svc.Update(ctx, id, req.Patch())
    if errors.Is(err, repository.ErrNotFound) {
        return message(c, http.StatusNotFound, "Equipment not found")
    }
    if err != nil {
        return internalError(c, h.Log, err, "Error updating equipment")
    }
    return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /api/equipment/:id.
func (h *EquipmentHandler) Delete(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return message(c, http.StatusBadRequest, "Invalid equipment ID")
    }
    ctx, cancel := dbContext(c)
    defer cancel()
    err := h.Svc.Delete(ctx, id)
    if errors.Is(err, repository.ErrNotFound) {
        return message(c, http.StatusNotFound, "Equipment not found")
    }
    if err != nil {
        return internalError(c, h.Log, err, "Error deleting equipment")
    }
    return message(c, http.StatusOK, "Equipment deleted successfully")
}
