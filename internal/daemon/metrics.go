package daemon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadview_jobs_total",
		Help: "Total number of jobs finished, by type and status",
	}, []string{"type", "status"})

	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quadview_job_duration_seconds",
		Help:    "Wall-clock duration of background jobs",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"type"})

	framesWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadview_frames_written_total",
		Help: "Total number of frames written across all operations",
	})

	channelCapturesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadview_channel_captures_total",
		Help: "Total number of channel captures, by status",
	}, []string{"status"})
)
