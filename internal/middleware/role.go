package middleware // middleware provides shared request processing for handlers

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// RequireAdmin guards admin routes.  It must run after SessionAuth.  A
// request without a session is answered with 401; a session that lacks the
// admin flag gets 403.
func RequireAdmin() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            s := CurrentSession(c)
            if s == nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized: Admin access required"})
            }
            if !s.IsAdmin {
                return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied: Admin privileges required"})
            }
            return next(c)
        }
    }
}
