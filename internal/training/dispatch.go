package training

import (
	"fmt"
	"math"
	"sort"
)

// Workout codes emitted by the sensor packages.
const (
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
	CodeSwimming      = "SWM"
)

type packageReader struct {
	kind  Kind
	arity int
	build func(reading []float64) (Record, error)
}

var readers = map[string]packageReader{
	CodeRunning:       {kind: KindRunning, arity: 3, build: readRunning},
	CodeSportsWalking: {kind: KindSportsWalking, arity: 4, build: readSportsWalking},
	CodeSwimming:      {kind: KindSwimming, arity: 5, build: readSwimming},
}

// WorkoutType describes a supported workout code.
type WorkoutType struct {
	Code  string
	Kind  Kind
	Arity int
}

// WorkoutTypes lists the supported workout codes ordered by code.
func WorkoutTypes() []WorkoutType {
	out := make([]WorkoutType, 0, len(readers))
	for code, r := range readers {
		out = append(out, WorkoutType{Code: code, Kind: r.kind, Arity: r.arity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ReadPackage turns a raw sensor reading into a Record of the kind selected by code.
// The reading must carry exactly as many values as the kind expects:
// RUN (action, duration, weight), WLK (+ height), SWM (+ length_pool, count_pool).
func ReadPackage(code string, reading []float64) (Record, error) {
	r, ok := readers[code]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	if len(reading) != r.arity {
		return Record{}, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidReading, code, r.arity, len(reading))
	}
	return r.build(reading)
}

func readRunning(reading []float64) (Record, error) {
	action, err := wholeNumber("action", reading[0])
	if err != nil {
		return Record{}, err
	}
	return NewRunning(action, reading[1], reading[2])
}

func readSportsWalking(reading []float64) (Record, error) {
	action, err := wholeNumber("action", reading[0])
	if err != nil {
		return Record{}, err
	}
	return NewSportsWalking(action, reading[1], reading[2], reading[3])
}

func readSwimming(reading []float64) (Record, error) {
	action, err := wholeNumber("action", reading[0])
	if err != nil {
		return Record{}, err
	}
	countPool, err := wholeNumber("count_pool", reading[4])
	if err != nil {
		return Record{}, err
	}
	return NewSwimming(action, reading[1], reading[2], reading[3], countPool)
}

func wholeNumber(field string, v float64) (int, error) {
	if math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number (got %v)", ErrInvalidReading, field, v)
	}
	if v < math.MinInt || v >= math.MaxInt {
		return 0, fmt.Errorf("%w: %s out of range (got %v)", ErrInvalidReading, field, v)
	}
	return int(v), nil
}
