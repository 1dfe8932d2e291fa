// Package observability holds the prometheus collectors shared by the tracker binaries.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	summariesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "summaries_total",
		Help:      "Number of training summaries produced, labeled by workout type.",
	}, []string{"workout_type"})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "rejected_packages_total",
		Help:      "Number of sensor packages rejected, labeled by reason.",
	}, []string{"reason"})

	caloriesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "calories_burned",
		Help:      "Distribution of calories burned per summarised training.",
		Buckets:   prometheus.ExponentialBuckets(25, 2, 10),
	}, []string{"workout_type"})

	lastSummaryGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ftracker",
		Subsystem: "tracker",
		Name:      "last_summary_timestamp_seconds",
		Help:      "Unix timestamp of the most recent summary.",
	})
)

func init() {
	prometheus.MustRegister(summariesCounter, rejectedCounter, caloriesHistogram, lastSummaryGauge)
}

// RecordSummary counts a produced summary and observes its calories.
func RecordSummary(workoutType string, calories float64, ts time.Time) {
	summariesCounter.WithLabelValues(workoutType).Inc()
	caloriesHistogram.WithLabelValues(workoutType).Observe(calories)
	if !ts.IsZero() {
		lastSummaryGauge.Set(float64(ts.Unix()))
	}
}

// RecordRejected counts a rejected package.
func RecordRejected(reason string) {
	rejectedCounter.WithLabelValues(reason).Inc()
}
