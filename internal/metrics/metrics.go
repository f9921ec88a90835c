package metrics

import (
    "net/http"
    "sync"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    once sync.Once

    bookingCreated = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "studio_booking",
            Name:      "booking_created_total",
            Help:      "Count of booking requests submitted.",
        },
    )

    bookingDecision = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "studio_booking",
            Name:      "booking_decision_total",
            Help:      "Count of admin decisions over bookings.",
        },
        []string{"status"},
    )

    notificationFailed = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "studio_booking",
            Name:      "notification_failed_total",
            Help:      "Count of booking emails that could not be sent or queued.",
        },
        []string{"kind"},
    )

    loginAttempts = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "studio_booking",
            Name:      "login_attempts_total",
            Help:      "Count of admin login attempts by outcome.",
        },
        []string{"outcome"},
    )
)

// Register registers metrics (idempotent).
func Register() {
    once.Do(func() {
        prometheus.MustRegister(bookingCreated, bookingDecision, notificationFailed, loginAttempts)
    })
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
    Register()
    return promhttp.Handler()
}

func IncBookingCreated() {
    bookingCreated.Inc()
}

func IncBookingDecision(status string) {
    bookingDecision.WithLabelValues(status).Inc()
}

func IncNotificationFailed(kind string) {
    notificationFailed.WithLabelValues(kind).Inc()
}

func IncLogin(outcome string) {
    loginAttempts.WithLabelValues(outcome).Inc()
}
