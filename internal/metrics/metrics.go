package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trackpro", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "path", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trackpro", Name: "http_request_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	ApplicationsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trackpro", Name: "applications_submitted_total", Help: "Course applications submitted",
	})
	StudentsRegistered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trackpro", Name: "students_registered_total", Help: "Student registrations",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ApplicationsSubmitted, StudentsRegistered)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveRequest(method, path, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(method, path, status).Inc()
	HTTPDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
