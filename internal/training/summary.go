package training

import "fmt"

const messageFormat = "Training type: %s; " +
	"Duration: %.3f h.; " +
	"Distance: %.3f km; " +
	"Mean speed: %.3f km/h; " +
	"Calories burned: %.3f."

// Summary is the report derived from a single Record.
type Summary struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // kilometres
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary with three decimals on every numeric field.
func (s Summary) Message() string {
	return fmt.Sprintf(messageFormat, s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}

func (s Summary) String() string {
	return s.Message()
}
