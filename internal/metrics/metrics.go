// Package metrics defines the client-side Prometheus metrics for the
// CreatorHub platform client. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "creatorhub"

// SessionBootstraps counts bootstrap outcomes.
// Label:
//   - outcome: "no_token", "stale_token", "restored", "rejected", "storage_error"
var SessionBootstraps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_bootstraps_total",
		Help:      "Total number of session bootstrap runs, by outcome.",
	},
	[]string{"outcome"},
)

// AuthAttempts counts register/login exchanges against the API.
// Labels:
//   - operation: "register" or "login"
//   - outcome: "success" or "failure"
var AuthAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of credential exchanges, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// RequestDuration measures platform API round trips issued by the client.
// Labels:
//   - method: HTTP method
//   - outcome: "ok", "api_error" or "transport_error"
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of platform API requests from send to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "outcome"},
)
