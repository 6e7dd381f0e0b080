package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Number of successfully registered users",
		},
	)

	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	ResetCodesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_reset_codes_issued_total",
			Help: "Reset codes generated and stored",
		},
	)

	ResetCodeDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_reset_code_deliveries_total",
			Help: "Reset code emails by delivery status",
		},
		[]string{"status"},
	)

	ResetCodeChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_reset_code_checks_total",
			Help: "Reset code verifications by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		Registrations,
		LoginAttempts,
		ResetCodesIssued,
		ResetCodeDeliveries,
		ResetCodeChecks,
	)
}

// RecordRequest records one served HTTP request.
func RecordRequest(method, route, status string, d time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
