package binanceapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestLatencyMetrics = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "binance_api_request_duration_milliseconds",
			Help:    "Binance rest api request duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(25, 2, 10), // 25ms to ~12.8s
		}, []string{"method", "path"},
	)

	requestTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binance_api_request_total",
			Help: "Total number of binance rest api requests",
		}, []string{"method", "path", "status_code"},
	)

	requestErrorMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binance_api_request_errors_total",
			Help: "Total number of binance rest api request errors by error kind",
		}, []string{"method", "path", "kind"},
	)

	requestRetryMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binance_api_request_retries_total",
			Help: "Total number of retried binance rest api requests",
		}, []string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatencyMetrics,
		requestTotalMetrics,
		requestErrorMetrics,
		requestRetryMetrics,
	)
}

func recordRequestMetrics(method, path string, statusCode int, duration time.Duration) {
	requestLatencyMetrics.With(prometheus.Labels{
		"method": method,
		"path":   path,
	}).Observe(float64(duration.Milliseconds()))

	requestTotalMetrics.With(prometheus.Labels{
		"method":      method,
		"path":        path,
		"status_code": strconv.Itoa(statusCode),
	}).Inc()
}

func recordRequestError(method, path string, err error) {
	requestErrorMetrics.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"kind":   errorKind(err),
	}).Inc()
}

func errorKind(err error) string {
	switch {
	case IsAuthError(err):
		return "auth"
	case IsTransportError(err):
		return "transport"
	case IsNotFound(err):
		return "not_found"
	case IsDecodeError(err):
		return "decode"
	}

	return "api"
}
