package metrics

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/prometheus/client_golang/prometheus/testutil"
    "github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
    Register()
    before := testutil.ToFloat64(bookingDecision.WithLabelValues("approved"))
    IncBookingDecision("approved")
    assert.Equal(t, before+1, testutil.ToFloat64(bookingDecision.WithLabelValues("approved")))

    created := testutil.ToFloat64(bookingCreated)
    IncBookingCreated()
    assert.Equal(t, created+1, testutil.ToFloat64(bookingCreated))
}

func TestHandlerExposesMetrics(t *testing.T) {
    IncLogin("success")
    rec := httptest.NewRecorder()
    Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "studio_booking_login_attempts_total")
}
