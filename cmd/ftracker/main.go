// Command ftracker prints training summaries for a fixed set of sensor packages.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"example.com/ftracker/internal/config"
	"example.com/ftracker/internal/domain"
)

var packages = []domain.Package{
	{WorkoutType: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{WorkoutType: "RUN", Data: []float64{15000, 1, 75}},
	{WorkoutType: "WLK", Data: []float64{9000, 1, 75, 180}},
}

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := domain.NewService(domain.WithMaxBatchSize(cfg.MaxBatchSize))
	failed, err := run(ctx, service, packages, os.Stdout)
	if err != nil {
		log.Fatalf("ftracker: %v", err)
	}
	if failed > 0 {
		log.Printf("ftracker: %d of %d packages rejected", failed, len(packages))
		os.Exit(1)
	}
}

// run writes one summary line per accepted package and returns how many were rejected.
func run(ctx context.Context, service *domain.Service, pkgs []domain.Package, out io.Writer) (int, error) {
	results, err := service.ProcessBatch(ctx, pkgs)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		if _, err := fmt.Fprintln(out, res.Report.Message); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
