// Package metrics defines the Prometheus instrumentation shared across
// the pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsIngested counts events accepted into the queue, by priority.
	EventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forgewatch_events_ingested_total",
		Help: "Events accepted into the queue, by priority.",
	}, []string{"priority"})

	// EventsDropped counts events dropped before the queue, by reason.
	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forgewatch_events_dropped_total",
		Help: "Events dropped before enqueue (sampled, duplicate, backpressure, corrupt).",
	}, []string{"reason"})

	// PollErrors counts upstream poll failures, by kind.
	PollErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forgewatch_poll_errors_total",
		Help: "Upstream poll failures, by kind (rate_limited, server, other).",
	}, []string{"kind"})

	// EventsProcessed counts events that completed detection.
	EventsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forgewatch_events_processed_total",
		Help: "Events that completed the detection fan-out.",
	})

	// AnomaliesDetected counts persisted anomaly reports, by severity.
	AnomaliesDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forgewatch_anomalies_detected_total",
		Help: "Persisted anomaly reports, by severity.",
	}, []string{"severity"})

	// DetectorTimeouts counts detector calls cut off by the per-detector
	// deadline, by detector name.
	DetectorTimeouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forgewatch_detector_timeouts_total",
		Help: "Detector calls that exceeded their deadline, by detector.",
	}, []string{"detector"})

	// QueueDepth tracks the pending event backlog.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forgewatch_queue_depth",
		Help: "Events waiting in the pending queue.",
	})

	// BatchDuration observes wall time per processed batch.
	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "forgewatch_batch_duration_seconds",
		Help:    "Wall time spent processing one claimed batch.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})

	// WebSocketConnections tracks active subscriber connections.
	WebSocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forgewatch_websocket_connections",
		Help: "Active WebSocket subscriber connections on this replica.",
	})
)
