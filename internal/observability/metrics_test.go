package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSummary(t *testing.T) {
	before := testutil.ToFloat64(summariesCounter.WithLabelValues("RUN"))
	beforeSamples := histogramSampleCount(t, "RUN")

	ts := time.Date(2025, time.October, 27, 20, 0, 0, 0, time.UTC)
	RecordSummary("RUN", 699.75, ts)

	require.InDelta(t, before+1, testutil.ToFloat64(summariesCounter.WithLabelValues("RUN")), 0.0001)
	require.Equal(t, beforeSamples+1, histogramSampleCount(t, "RUN"))
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastSummaryGauge))
}

func TestRecordSummaryZeroTimestampKeepsGauge(t *testing.T) {
	ts := time.Date(2025, time.October, 28, 8, 0, 0, 0, time.UTC)
	RecordSummary("SWM", 336, ts)
	RecordSummary("SWM", 336, time.Time{})

	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastSummaryGauge))
}

func TestRecordRejected(t *testing.T) {
	before := testutil.ToFloat64(rejectedCounter.WithLabelValues("unknown_workout_type"))
	RecordRejected("unknown_workout_type")
	require.InDelta(t, before+1, testutil.ToFloat64(rejectedCounter.WithLabelValues("unknown_workout_type")), 0.0001)
}

func histogramSampleCount(t *testing.T, workoutType string) uint64 {
	t.Helper()

	observer, err := caloriesHistogram.GetMetricWithLabelValues(workoutType)
	require.NoError(t, err)
	metric := &dto.Metric{}
	require.NoError(t, observer.(prometheus.Metric).Write(metric))
	hist := metric.GetHistogram()
	require.NotNil(t, hist)
	return hist.GetSampleCount()
}
