package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/studio-booking/internal/handler"
	"github.com/iliyamo/studio-booking/internal/middleware"
	"github.com/iliyamo/studio-booking/internal/notify"
	"github.com/iliyamo/studio-booking/internal/repository"
	"github.com/iliyamo/studio-booking/internal/service"
	"github.com/iliyamo/studio-booking/internal/session"
	"github.com/iliyamo/studio-booking/internal/validation"
)

// Deps are the collaborators New wires into the API.
type Deps struct {
	Stores       repository.Stores
	Sessions     session.Store
	Cookie       middleware.CookieConfig
	Notifier     notify.Notifier
	Cache        *middleware.ResponseCache // nil disables caching
	Log          *logrus.Logger
	AllowOrigins []string // CORS origins; empty serves same-origin clients only
}

// New builds the Echo instance serving the whole API.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()

	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			d.Log.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"path":   c.Request().URL.Path,
				"stack":  string(stack),
			}).Error("panic recovered")
			return err
		},
	}))
	// The admin session rides on a cookie, so origins are listed explicitly;
	// a wildcard cannot carry credentials.
	if len(d.AllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     d.AllowOrigins,
			AllowCredentials: true,
		}))
	}
	e.Use(middleware.SessionAuth(d.Sessions, d.Cookie, d.Log))

	equipment := service.NewEquipmentService(d.Stores.Equipment, d.Cache, d.Log)
	bookings := service.NewBookingService(d.Stores.Bookings, d.Notifier, d.Log)
	auth := service.NewAuthService(d.Stores.Users)

	RegisterRoutes(e)
	RegisterAuth(e, handler.NewAuthHandler(auth, d.Sessions, d.Cookie, d.Log))
	RegisterEquipment(e, handler.NewEquipmentHandler(equipment, d.Log), d.Cache)
	RegisterBookings(e, handler.NewBookingHandler(bookings, d.Log))
	return e
}
