// Package training computes distance, mean speed and spent calories for a recorded
// workout and renders the result as a human-readable summary.
package training

import (
	"errors"
	"fmt"
	"math"
)

const (
	lenStep         = 0.65
	swimmingLenStep = 1.38
	mInKm           = 1000
	minInH          = 60
)

var (
	// ErrNotImplemented is returned when a training kind has no calorie formula.
	ErrNotImplemented = errors.New("calorie formula not implemented")
	// ErrUnknownWorkoutType is returned by ReadPackage for an unrecognised workout code.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrInvalidReading is returned when a reading cannot produce a valid record.
	ErrInvalidReading = errors.New("invalid reading")
	// ErrNonPositiveDuration is returned when the workout duration is not a positive finite number.
	ErrNonPositiveDuration = fmt.Errorf("%w: duration must be > 0", ErrInvalidReading)
	// ErrZeroHeight is returned when a sports walking record has zero or non-finite height.
	ErrZeroHeight = fmt.Errorf("%w: height must be non-zero and finite", ErrInvalidReading)
)

// Kind enumerates the supported training variants.
type Kind int

const (
	// KindTraining is the bare base training. It can report distance and speed but
	// has no calorie formula.
	KindTraining Kind = iota
	KindRunning
	KindSportsWalking
	KindSwimming
)

// String returns the name used in summaries.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Training"
	}
}

// Training holds the inputs shared by every workout kind.
type Training struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kilograms
}

// NewTraining validates the shared inputs.
func NewTraining(action int, duration, weight float64) (Training, error) {
	t := Training{Action: action, Duration: duration, Weight: weight}
	if err := t.validate(); err != nil {
		return Training{}, err
	}
	return t, nil
}

func (t Training) validate() error {
	if !(t.Duration > 0) || math.IsInf(t.Duration, 1) {
		return fmt.Errorf("%w (got %v)", ErrNonPositiveDuration, t.Duration)
	}
	return nil
}

// Record is a validated workout of a single Kind. Fields that do not apply to the
// kind are left zero.
type Record struct {
	Kind Kind
	Training

	Height     float64 // centimetres, sports walking only
	LengthPool float64 // metres, swimming only
	CountPool  int     // laps, swimming only
}

type calculator struct {
	stepLength    float64
	meanSpeed     func(Record) float64
	spentCalories func(Record) float64
}

func (r Record) calculator() calculator {
	switch r.Kind {
	case KindRunning:
		return calculator{stepLength: lenStep, spentCalories: runningSpentCalories}
	case KindSportsWalking:
		return calculator{stepLength: lenStep, spentCalories: walkingSpentCalories}
	case KindSwimming:
		return calculator{
			stepLength:    swimmingLenStep,
			meanSpeed:     swimmingMeanSpeed,
			spentCalories: swimmingSpentCalories,
		}
	default:
		return calculator{stepLength: lenStep}
	}
}

// Distance returns the covered distance in kilometres.
func (r Record) Distance() float64 {
	return float64(r.Action) * r.calculator().stepLength / mInKm
}

// MeanSpeed returns the mean speed in km/h.
func (r Record) MeanSpeed() float64 {
	if c := r.calculator(); c.meanSpeed != nil {
		return c.meanSpeed(r)
	}
	return r.Distance() / r.Duration
}

// validate re-checks the constructor preconditions for records built by hand.
func (r Record) validate() error {
	if err := r.Training.validate(); err != nil {
		return err
	}
	if r.Kind == KindSportsWalking {
		return validateHeight(r.Height)
	}
	return nil
}

// SpentCalories returns the burned kilocalories.
func (r Record) SpentCalories() (float64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	c := r.calculator()
	if c.spentCalories == nil {
		return 0, fmt.Errorf("%w for %s", ErrNotImplemented, r.Kind)
	}
	return c.spentCalories(r), nil
}

// Summarize derives the Summary of the record.
func (r Record) Summarize() (Summary, error) {
	if err := r.validate(); err != nil {
		return Summary{}, err
	}
	summary := Summary{
		TrainingType: r.Kind.String(),
		Duration:     r.Duration,
		Distance:     r.Distance(),
		Speed:        r.MeanSpeed(),
	}
	calories, err := r.SpentCalories()
	if err != nil {
		return Summary{}, err
	}
	summary.Calories = calories
	return summary, nil
}
