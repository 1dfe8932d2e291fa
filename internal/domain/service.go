// Package domain turns raw sensor packages into training reports.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"example.com/ftracker/internal/observability"
	"example.com/ftracker/internal/training"
)

// ErrBatchTooLarge is returned when a batch exceeds the configured limit.
var ErrBatchTooLarge = errors.New("batch exceeds maximum size")

// Rejection reasons reported by Reason.
const (
	ReasonUnknownWorkoutType = "unknown_workout_type"
	ReasonInvalidReading     = "invalid_reading"
	ReasonNotImplemented     = "not_implemented"
	ReasonInternal           = "internal"
)

// Package is one raw sensor package: a workout code plus its reading.
type Package struct {
	WorkoutType string
	Data        []float64
}

// Report is the outcome of processing a Package.
type Report struct {
	ID          string
	WorkoutType string
	Summary     training.Summary
	Message     string
	ProcessedAt time.Time
}

// Result pairs a package with its report or the error that rejected it.
type Result struct {
	Package Package
	Report  *Report
	Err     error
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithLogger overrides the logger used to report rejected packages.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMaxBatchSize limits how many packages ProcessBatch accepts. Zero disables the limit.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		s.maxBatch = n
	}
}

// WithClock overrides the time source used to stamp reports.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service computes training reports.
type Service struct {
	logger   *log.Logger
	maxBatch int
	now      func() time.Time
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: log.New(log.Writer(), "[tracker] ", log.LstdFlags|log.Lshortfile),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process reads a package, summarises it and renders the message.
func (s *Service) Process(ctx context.Context, pkg Package) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	record, err := training.ReadPackage(pkg.WorkoutType, pkg.Data)
	if err != nil {
		return nil, s.reject(pkg, err)
	}

	summary, err := record.Summarize()
	if err != nil {
		return nil, s.reject(pkg, err)
	}

	report := &Report{
		ID:          uuid.NewString(),
		WorkoutType: pkg.WorkoutType,
		Summary:     summary,
		Message:     summary.Message(),
		ProcessedAt: s.now().UTC(),
	}
	observability.RecordSummary(pkg.WorkoutType, summary.Calories, report.ProcessedAt)
	return report, nil
}

// ProcessBatch processes packages in order. A rejected package does not stop the
// batch; its error is stored in the matching Result. Cancellation between packages
// returns the results gathered so far together with the context error.
func (s *Service) ProcessBatch(ctx context.Context, pkgs []Package) ([]Result, error) {
	if s.maxBatch > 0 && len(pkgs) > s.maxBatch {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(pkgs), s.maxBatch)
	}

	results := make([]Result, 0, len(pkgs))
	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		report, err := s.Process(ctx, pkg)
		results = append(results, Result{Package: pkg, Report: report, Err: err})
	}
	return results, nil
}

func (s *Service) reject(pkg Package, err error) error {
	reason := Reason(err)
	s.logger.Printf("package rejected (workout_type=%q, reason=%s): %v", pkg.WorkoutType, reason, err)
	observability.RecordRejected(reason)
	return err
}

// Reason classifies a processing error into a stable label.
func Reason(err error) string {
	switch {
	case errors.Is(err, training.ErrUnknownWorkoutType):
		return ReasonUnknownWorkoutType
	case errors.Is(err, training.ErrInvalidReading):
		return ReasonInvalidReading
	case errors.Is(err, training.ErrNotImplemented):
		return ReasonNotImplemented
	default:
		return ReasonInternal
	}
}
