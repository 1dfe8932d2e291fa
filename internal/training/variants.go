package training

import (
	"fmt"
	"math"
)

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// NewRunning builds a running record.
func NewRunning(action int, duration, weight float64) (Record, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return Record{}, err
	}
	return Record{Kind: KindRunning, Training: t}, nil
}

// NewSportsWalking builds a sports walking record. Height is in centimetres.
func NewSportsWalking(action int, duration, weight, height float64) (Record, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return Record{}, err
	}
	if err := validateHeight(height); err != nil {
		return Record{}, err
	}
	return Record{Kind: KindSportsWalking, Training: t, Height: height}, nil
}

// NewSwimming builds a swimming record from the pool length in metres and the
// number of laps swum.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (Record, error) {
	t, err := NewTraining(action, duration, weight)
	if err != nil {
		return Record{}, err
	}
	return Record{Kind: KindSwimming, Training: t, LengthPool: lengthPool, CountPool: countPool}, nil
}

func validateHeight(height float64) error {
	if height == 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return fmt.Errorf("%w (got %v)", ErrZeroHeight, height)
	}
	return nil
}

func runningSpentCalories(r Record) float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * HoursToMinutes(r.Duration)
}

// The squared speed is floor-divided by height, truncating to whole units.
func walkingSpentCalories(r Record) float64 {
	speed := r.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*r.Weight +
		floorDiv(speed*speed, r.Height)*walkingSpeedHeightMultiplier*r.Weight) *
		HoursToMinutes(r.Duration)
}

func swimmingMeanSpeed(r Record) float64 {
	return r.LengthPool * float64(r.CountPool) / mInKm / r.Duration
}

func swimmingSpentCalories(r Record) float64 {
	return (r.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * r.Weight
}
