package main

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/ftracker/internal/domain"
)

func TestRunPrintsSamplePackages(t *testing.T) {
	var out bytes.Buffer
	failed, err := run(context.Background(), domain.NewService(), packages, &out)
	require.NoError(t, err)
	require.Zero(t, failed)

	require.Equal(t,
		"Training type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Mean speed: 1.000 km/h; Calories burned: 336.000.\n"+
			"Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories burned: 699.750.\n"+
			"Training type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Mean speed: 5.850 km/h; Calories burned: 157.500.\n",
		out.String())
}

func TestRunCountsRejectedPackages(t *testing.T) {
	var out, logs bytes.Buffer
	service := domain.NewService(domain.WithLogger(log.New(&logs, "", 0)))

	failed, err := run(context.Background(), service, []domain.Package{
		{WorkoutType: "BOX", Data: []float64{1, 1, 1}},
		{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
	}, &out)
	require.NoError(t, err)
	require.Equal(t, 1, failed)
	require.Contains(t, out.String(), "Training type: Running;")
	require.NotContains(t, out.String(), "BOX")
	require.Contains(t, logs.String(), "unknown_workout_type")
}
