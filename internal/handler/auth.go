package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/studio-booking/internal/middleware"
    "github.com/iliyamo/studio-booking/internal/service"
    "github.com/iliyamo/studio-booking/internal/session"
    "github.com/iliyamo/studio-booking/internal/validation"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Auth     *service.AuthService
	Sessions session.Store
	Cookie   middleware.CookieConfig
	Log      *logrus.Logger
}

func NewAuthHandler(a *service.AuthService, s session.Store, cc middleware.CookieConfig, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: a, Sessions: s, Cookie: cc, Log: log}
}

type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Login checks admin credentials and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req validation.LoginRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Username and password are required")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return message(c, http.StatusBadRequest, "Username and password are required")
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	u, err := h.Auth.Authenticate(ctx, req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return message(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrNotAdmin):
		return message(c, http.StatusForbidden, "Access denied: Admin privileges required")
	case err != nil:
		return internalError(c, h.Log, err, "Server error during login")
	}

	// Drop any session the browser already holds before issuing a new one.
	if old := middleware.CurrentSession(c); old != nil {
		if err := h.Sessions.Destroy(ctx, old.ID); err != nil {
			h.Log.WithError(err).Warn("destroy previous session failed")
		}
	}
	s, err := h.Sessions.Create(ctx, u.ID, u.IsAdmin)
	if err != nil {
		return internalError(c, h.Log, err, "Server error during login")
	}
	if err := middleware.SetSessionCookie(c, h.Cookie, s); err != nil {
		return internalError(c, h.Log, err, "Server error during login")
	}
	h.Log.WithField("user", u.Username).Info("admin logged in")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user":    userPart{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin},
	})
}

// Logout destroys the current session, if any, and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if s := middleware.CurrentSession(c); s != nil {
		ctx, cancel := dbContext(c)
		defer cancel()
		if err := h.Sessions.Destroy(ctx, s.ID); err != nil {
			return internalError(c, h.Log, err, "Error logging out")
		}
	}
	middleware.ClearSessionCookie(c, h.Cookie)
	return message(c, http.StatusOK, "Logged out successfully")
}

// Status reports whether the caller holds an admin session.
func (h *AuthHandler) Status(c echo.Context) error {
	admin := middleware.IsAdmin(c)
	return c.JSON(http.StatusOK, echo.Map{"isAuthenticated": admin, "isAdmin": admin})
}
