package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the bot.
type MetricsRegistry struct {
	// Command metrics
	CommandsTotal   prometheus.CounterVec
	CommandDuration prometheus.HistogramVec

	// Import queue metrics
	ImportJobsTotal   prometheus.CounterVec
	ImportedRowsTotal prometheus.Counter
	ImportQueueDepth  prometheus.Gauge

	// Rendering metrics
	RenderDuration prometheus.Histogram

	// Cache metrics
	CacheWritesTotal prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all
// metrics registered on the default registerer.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		CommandsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "experienced_commands_total",
				Help: "Total interactions processed by command name and status",
			},
			[]string{"command", "status"},
		),
		CommandDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "experienced_command_duration_seconds",
				Help:    "Interaction handling latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"command"},
		),
		ImportJobsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "experienced_import_jobs_total",
				Help: "Total import jobs processed by outcome",
			},
			[]string{"outcome"},
		),
		ImportedRowsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "experienced_imported_rows_total",
				Help: "Total level rows upserted by the import worker",
			},
		),
		ImportQueueDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "experienced_import_queue_depth",
				Help: "Number of import jobs waiting in the queue",
			},
		),
		RenderDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "experienced_render_duration_seconds",
				Help:    "Rank card render latency in seconds",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
		CacheWritesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "experienced_cache_writes_total",
				Help: "Total display records written to the user cache",
			},
		),
	}
}
