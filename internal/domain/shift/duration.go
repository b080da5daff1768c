package shift

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ComputeDuration returns the shift length in hours for a start/end pair in
// "HH:MM" form. An end at or before the start wraps into the next calendar
// day and marks the shift overnight.
func ComputeDuration(startTime, endTime string) (hours float64, overnight bool, err error) {
	startMins, err := parseClockMinutes(startTime)
	if err != nil {
		return 0, false, err
	}
	endMins, err := parseClockMinutes(endTime)
	if err != nil {
		return 0, false, err
	}

	if endMins == startMins {
		return 0, false, ErrZeroLengthShift
	}

	diff := endMins - startMins
	if diff < 0 {
		diff += 24 * 60
		overnight = true
	}

	hours = math.Round(float64(diff)/60.0*100) / 100
	return hours, overnight, nil
}

func parseClockMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return hour*60 + minute, nil
}
