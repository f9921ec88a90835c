package middleware

import (
    "time"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request with method, path, status and
// latency.  5xx responses log at error level.
func RequestLogger(log *logrus.Logger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                c.Error(err)
            }
            status := c.Response().Status
            entry := log.WithFields(logrus.Fields{
                "method":  c.Request().Method,
                "path":    c.Request().URL.Path,
                "status":  status,
                "latency": time.Since(start).String(),
                "user":    userID(c),
            })
            switch {
            case status >= 500:
                if err != nil {
                    entry = entry.WithError(err)
                }
                entry.Error("request failed")
            default:
                entry.Info("request")
            }
            return nil
        }
    }
}
