// Package metrics defines and registers all custom Prometheus metrics for the
// movie-catalog API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at init
// time via promauto; importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Comment metrics ───────────────────────────────────────────────────────────

// CommentWritesTotal counts comment write operations.
// Labels:
//   - op: "add", "update" or "delete"
//   - result: "ok", "no_match" (ownership filter matched nothing) or "error"
var CommentWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comment_writes_total",
		Help:      "Total number of comment write operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportCacheTotal counts report cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (aggregation executed)
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of commenters-report cache lookups, by result.",
	},
	[]string{"result"},
)

// ReportDuration measures how long the most-active-commenters aggregation
// takes when it actually hits the database (cache hits are not observed).
var ReportDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of the most-active-commenters aggregation.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "bad_password" or "not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
