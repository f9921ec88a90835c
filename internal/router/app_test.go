package router

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/studio-booking/internal/config"
	"github.com/iliyamo/studio-booking/internal/logger"
	"github.com/iliyamo/studio-booking/internal/middleware"
	"github.com/iliyamo/studio-booking/internal/session"
)

const frontend = "http://localhost:5173"

func getWithOrigin(a *testApp, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(echo.HeaderOrigin, origin)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func TestCachedEquipmentKeepsSingleCORSHeaders(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	a := newTestAppWith(t, func(d *Deps) {
		d.AllowOrigins = []string{frontend}
		d.Cache = middleware.NewResponseCache(config.CacheConfig{
			Enabled:      true,
			Methods:      map[string]bool{http.MethodGet: true},
			TTL:          time.Minute,
			Prefix:       "cache",
			MaxBodyBytes: 1 << 20,
		}, rdb)
	})

	miss := getWithOrigin(a, "/api/equipment", frontend)
	require.Equal(t, http.StatusOK, miss.Code)
	assert.Equal(t, "MISS", miss.Header().Get("X-Cache"))

	hit := getWithOrigin(a, "/api/equipment", frontend)
	require.Equal(t, http.StatusOK, hit.Code)
	assert.Equal(t, "HIT", hit.Header().Get("X-Cache"))
	assert.Equal(t, miss.Body.String(), hit.Body.String())
	assert.Equal(t, []string{frontend}, hit.Header().Values(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, []string{"true"}, hit.Header().Values(echo.HeaderAccessControlAllowCredentials))
	assert.Equal(t, []string{echo.HeaderOrigin}, hit.Header().Values(echo.HeaderVary))
	assert.Equal(t, miss.Header().Get(echo.HeaderContentType), hit.Header().Get(echo.HeaderContentType))
}

func TestCORSOnlyForConfiguredOrigins(t *testing.T) {
	open := newTestApp(t)
	rec := getWithOrigin(open, "/api/departments", "http://evil.example")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	listed := newTestAppWith(t, func(d *Deps) { d.AllowOrigins = []string{frontend} })
	rec = getWithOrigin(listed, "/api/departments", frontend)
	assert.Equal(t, frontend, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	rec = getWithOrigin(listed, "/api/departments", "http://evil.example")
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestPanicIsLoggedAndReturns500(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAppWith(t, func(d *Deps) { d.Log = logger.NewWithOutput(&buf, "info", "text") })
	a.e.GET("/boom", func(echo.Context) error { panic("boom") })

	rec := a.do(http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "request failed")
}

// brokenDestroy is a session store whose Destroy always fails.
type brokenDestroy struct{ session.Store }

func (brokenDestroy) Destroy(context.Context, string) error { return errors.New("redis down") }

func TestReloginLogsFailedSessionDestroy(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAppWith(t, func(d *Deps) {
		d.Sessions = brokenDestroy{Store: session.NewMemoryStore(time.Hour)}
		d.Log = logger.NewWithOutput(&buf, "info", "text")
	})

	cookie := a.login(t)
	assert.NotContains(t, buf.String(), "destroy previous session failed")

	rec := a.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, buf.String(), "destroy previous session failed")
	assert.Contains(t, buf.String(), "redis down")
}
