package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type VideoWorkerMetrics struct {
	// ingest
	ChunksConsumed   prometheus.Counter
	MalformedRecords prometheus.Counter
	IngestErrors     prometheus.Counter

	// pipeline
	VideosInFlight           prometheus.Gauge
	VideoPipelineResults     *prometheus.CounterVec
	VideoPipelineDurationSec prometheus.Histogram
	SourceDurationSec        prometheus.Histogram
	RenditionFailures        *prometheus.CounterVec

	// uploads
	ArtifactsUploaded prometheus.Counter
	UploadFailures    prometheus.Counter
	BytesUploaded     prometheus.Counter

	// notifications
	NotificationFailures prometheus.Counter
}

func NewMetrics() *VideoWorkerMetrics {
	m := &VideoWorkerMetrics{
		ChunksConsumed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "video_chunks_consumed_total",
			Help: "The total number of chunk records consumed from the ingest topic",
		}),
		MalformedRecords: promauto.NewCounter(prometheus.CounterOpts{
			Name: "video_chunks_malformed_total",
			Help: "The total number of ingest records dropped for missing or invalid fields",
		}),
		IngestErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "video_ingest_errors_total",
			Help: "The total number of transport errors while consuming the ingest topic",
		}),

		VideosInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "video_pipelines_in_flight",
			Help: "The number of videos currently being transcoded and uploaded",
		}),
		VideoPipelineResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "video_pipeline_results_total",
			Help: "The number of finished per-video pipelines, broken up by success",
		}, []string{"success"}),
		VideoPipelineDurationSec: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "video_pipeline_duration_seconds",
			Help:    "Time taken to process one video end to end",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800},
		}),
		SourceDurationSec: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "video_source_duration_seconds",
			Help:    "Probed duration of reassembled source videos",
			Buckets: []float64{1, 10, 30, 60, 300, 600, 1800, 3600},
		}),
		RenditionFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "video_rendition_failures_total",
			Help: "The number of failed rendition encodes, broken up by family",
		}, []string{"family"}),

		ArtifactsUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "video_artifacts_uploaded_total",
			Help: "The total number of artifacts streamed to the repo service",
		}),
		UploadFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "video_upload_failures_total",
			Help: "The total number of artifact uploads that returned an error",
		}),
		BytesUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "video_bytes_uploaded_total",
			Help: "The total number of artifact bytes streamed to the repo service",
		}),

		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "video_notification_failures_total",
			Help: "The total number of failed broker publishes, which are swallowed",
		}),
	}

	return m
}

var Metrics = NewMetrics()
