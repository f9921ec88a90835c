package middleware

// identity.go holds the helpers that read the session loaded by
// SessionAuth out of the Echo context.

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/session"
)

const sessionKey = "session"

// CurrentSession returns the session attached to c, or nil for an
// anonymous request.
func CurrentSession(c echo.Context) *session.Session {
    s, _ := c.Get(sessionKey).(*session.Session)
    return s
}

// IsAdmin reports whether the request carries an admin session.
func IsAdmin(c echo.Context) bool {
    s := CurrentSession(c)
    return s != nil && s.IsAdmin
}

// userID identifies the caller in logs: the session user id, or "guest".
func userID(c echo.Context) interface{} {
    if s := CurrentSession(c); s != nil {
        return s.UserID
    }
    return "guest"
}
