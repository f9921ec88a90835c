package handler // declare the package name; contains HTTP handlers

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/model"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems.  It returns a plain text "ok" with status 200.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// Departments lists the department names accepted on a booking.
func Departments(c echo.Context) error {
    return c.JSON(http.StatusOK, model.Departments)
}
