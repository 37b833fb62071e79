// Package pace converts 5 km time strings into per-kilometer paces
// and formats predicted durations for display.
package pace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ReferenceDistanceKm is the fixed distance every input time refers to.
const ReferenceDistanceKm = 5.0

// ErrInvalidFormat is returned when the input is neither a colon-delimited
// duration nor a plain number.
var ErrInvalidFormat = errors.New("invalid 5 km time format")

// Normalize converts a 5 km time into a pace in minutes per kilometer.
//
// Accepted forms:
//   - "mm:ss"      → (minutes + seconds/60) / 5
//   - "hh:mm:ss"   → (hours*60 + minutes + seconds/60) / 5
//   - plain number → total minutes for 5 km, divided by 5
//
// Magnitudes are not bounds-checked; "90:00" is a valid (very slow) run.
func Normalize(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrInvalidFormat
	}

	if strings.Contains(input, ":") {
		totalMinutes, err := parseColonDuration(input)
		if err != nil {
			return 0, err
		}
		return totalMinutes / ReferenceDistanceKm, nil
	}

	totalMinutes, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return totalMinutes / ReferenceDistanceKm, nil
}

// parseColonDuration parses "mm:ss" or "hh:mm:ss" into total minutes.
func parseColonDuration(input string) (float64, error) {
	parts := strings.Split(input, ":")

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 2:
		return float64(nums[0]) + float64(nums[1])/60, nil
	case 3:
		return float64(nums[0])*60 + float64(nums[1]) + float64(nums[2])/60, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}
}

// FormatSeconds renders a duration in seconds as "{h}h {m}min {s}sek",
// omitting the hour component when it is zero.
func FormatSeconds(totalSeconds float64) string {
	hours := int(totalSeconds) / 3600
	minutes := (int(totalSeconds) % 3600) / 60
	secs := int(totalSeconds) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dmin %dsek", hours, minutes, secs)
	}
	return fmt.Sprintf("%dmin %dsek", minutes, secs)
}
