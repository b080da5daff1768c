package attendance

import (
	"math"
)

// splitHours divides a worked duration into regular and overtime hours
// against a standard-hours threshold. All outputs are rounded to two
// decimal places.
func splitHours(durationMinutes int, standardHours float64) (regular, overtime, total float64) {
	total = round2(float64(durationMinutes) / 60.0)
	if total <= standardHours {
		return total, 0, total
	}
	overtime = round2(total - standardHours)
	return standardHours, overtime, total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
