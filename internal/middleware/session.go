package middleware

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/studio-booking/internal/session"
    "github.com/iliyamo/studio-booking/internal/utils"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
    Name   string
    Secret string
    Secure bool
}

// SessionAuth reads the signed session cookie and attaches the matching
// server-side session to the context.  It never rejects a request: a
// missing, forged or expired cookie just leaves the request anonymous.
// Route guards such as RequireAdmin decide what anonymous callers may do.
func SessionAuth(store session.Store, cc CookieConfig, log *logrus.Logger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ck, err := c.Cookie(cc.Name)
            if err != nil || ck.Value == "" {
                return next(c)
            }
            sid, err := utils.ParseSessionToken(cc.Secret, ck.Value)
            if err != nil {
                return next(c)
            }
            s, err := store.Get(c.Request().Context(), sid)
            if err != nil {
                if !errors.Is(err, session.ErrNotFound) {
                    log.WithError(err).Warn("session lookup failed")
                }
                return next(c)
            }
            c.Set(sessionKey, s)
            return next(c)
        }
    }
}

// SetSessionCookie writes the cookie carrying s.
func SetSessionCookie(c echo.Context, cc CookieConfig, s *session.Session) error {
    raw, err := utils.SignSessionToken(cc.Secret, s.ID, s.ExpiresAt)
    if err != nil {
        return err
    }
    c.SetCookie(&http.Cookie{
        Name:     cc.Name,
        Value:    raw,
        Path:     "/",
        Expires:  s.ExpiresAt,
        MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
        HttpOnly: true,
        Secure:   cc.Secure,
        SameSite: http.SameSiteLaxMode,
    })
    return nil
}

// ClearSessionCookie expires the session cookie in the browser.
func ClearSessionCookie(c echo.Context, cc CookieConfig) {
    c.SetCookie(&http.Cookie{
        Name:     cc.Name,
        Value:    "",
        Path:     "/",
        Expires:  time.Unix(0, 0),
        MaxAge:   -1,
        HttpOnly: true,
        Secure:   cc.Secure,
        SameSite: http.SameSiteLaxMode,
    })
}
