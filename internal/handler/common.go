package handler // handler defines http handlers

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"
)

// dbTimeout bounds every storage call made while serving a request.
const dbTimeout = 5 * time.Second

func dbContext(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// parseID reads the numeric :id path parameter.  Zero is rejected.
func parseID(c echo.Context) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, false
    }
    return id, true
}

func message(c echo.Context, code int, msg string) error {
    return c.JSON(code, echo.Map{"message": msg})
}

// internalError logs err with the request route and answers 500 with msg.
func internalError(c echo.Context, log *logrus.Logger, err error, msg string) error {
    log.WithError(err).WithFields(logrus.Fields{
        "method": c.Request().Method,
        "route":  c.Path(),
    }).Error(msg)
    return message(c, http.StatusInternalServerError, msg)
}
