// Package prometheus provides metrics decorators for shelf services.
package prometheus

import (
	"time"

	"github.com/fwojciec/shelf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ensure MetricsNavigator implements shelf.Navigator.
var _ shelf.Navigator = (*MetricsNavigator)(nil)

// Operation label values.
const (
	OpOpenRoot      = "open_root"
	OpSearch        = "search"
	OpAction        = "action"
	OpOpenDirectory = "open_directory"
)

// MetricsNavigator wraps a Navigator and records rendered views.
type MetricsNavigator struct {
	next shelf.Navigator

	views    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsNavigator creates a MetricsNavigator and registers its
// collectors with reg.
func NewMetricsNavigator(next shelf.Navigator, reg prometheus.Registerer) *MetricsNavigator {
	factory := promauto.With(reg)
	return &MetricsNavigator{
		next: next,
		views: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shelf_views_total",
			Help: "Total rendered views by operation, view kind and error code",
		}, []string{"op", "kind", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shelf_view_duration_seconds",
			Help:    "View rendering duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"op"}),
	}
}

// OpenRoot delegates to the wrapped navigator.
func (n *MetricsNavigator) OpenRoot() *shelf.View {
	defer n.observe(OpOpenRoot, time.Now())
	return n.record(OpOpenRoot, n.next.OpenRoot())
}

// HandleSearch delegates to the wrapped navigator.
func (n *MetricsNavigator) HandleSearch(query string) *shelf.View {
	defer n.observe(OpSearch, time.Now())
	return n.record(OpSearch, n.next.HandleSearch(query))
}

// HandleAction delegates to the wrapped navigator.
func (n *MetricsNavigator) HandleAction(payload string) *shelf.View {
	defer n.observe(OpAction, time.Now())
	return n.record(OpAction, n.next.HandleAction(payload))
}

// OpenDirectory delegates to the wrapped navigator.
func (n *MetricsNavigator) OpenDirectory() *shelf.View {
	defer n.observe(OpOpenDirectory, time.Now())
	return n.record(OpOpenDirectory, n.next.OpenDirectory())
}

func (n *MetricsNavigator) record(op string, v *shelf.View) *shelf.View {
	if v != nil {
		n.views.WithLabelValues(op, string(v.Kind), v.Code).Inc()
	}
	return v
}

func (n *MetricsNavigator) observe(op string, begin time.Time) {
	n.duration.WithLabelValues(op).Observe(time.Since(begin).Seconds())
}
