package training

import "math"

// HoursToMinutes converts a duration in hours to minutes.
func HoursToMinutes(hours float64) float64 {
	return hours * minInH
}

// floorDiv divides a by b and rounds toward negative infinity. The remainder takes
// the sign of the divisor, so floorDiv(-7, 2) == -4 and floorDiv(7, -2) == -4.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
