package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inputgate_events_enqueued_total",
		Help: "Total number of raw records accepted onto the native queue.",
	})

	EventsDroppedDisabled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inputgate_events_dropped_disabled_total",
		Help: "Total number of raw records dropped because their discriminant is ignored.",
	})

	EventsDroppedFull = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inputgate_events_dropped_full_total",
		Help: "Total number of raw records rejected due to a full queue.",
	})

	EventsTranslated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inputgate_events_translated_total",
		Help: "Total number of raw records translated to portable events, labelled by kind.",
	}, []string{"kind"})

	EventsUnknown = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inputgate_events_unknown_total",
		Help: "Total number of raw records with an unrecognized discriminant.",
	})

	EventsPushed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inputgate_events_pushed_total",
		Help: "Total number of synthetic records pushed by callers.",
	})

	EventsFlushed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inputgate_events_flushed_total",
		Help: "Total number of flush calls, labelled by kind.",
	}, []string{"kind"})

	WaitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inputgate_wait_duration_ms",
		Help:    "Time spent blocked in wait calls in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inputgate_queue_depth",
		Help: "Current number of raw records on the native queue.",
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "inputgate_queue_utilization_ratio",
		Help: "Current native queue utilization (0–1).",
	})
)
