package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"elevaid/src/config"
	"elevaid/src/types"
)

// FormatFloor labels the ground floor "G" and every other floor by number.
func FormatFloor(floor int) string {
	if floor == config.GroundFloor {
		return "G"
	}
	return strconv.Itoa(floor)
}

func FormatQueue(q types.Queue) string {
	labels := make([]string, len(q))
	for i, floor := range q {
		labels[i] = FormatFloor(floor)
	}
	return strings.Join(labels, " → ")
}

// FormatDuration prints seconds with one decimal, switching to minutes from 60s.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	seconds := d.Seconds()
	if seconds >= 60 {
		minutes := int(seconds / 60)
		return fmt.Sprintf("%s%dm %.1fs", sign, minutes, seconds-float64(minutes*60))
	}
	return fmt.Sprintf("%s%.1fs", sign, seconds)
}

// ParseFloors parses a comma separated floor list such as "5,10,G".
func ParseFloors(s string) ([]int, error) {
	var floors []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if strings.EqualFold(field, "G") {
			floors = append(floors, config.GroundFloor)
			continue
		}
		floor, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: floor %q", types.ErrInvalidInput, field)
		}
		if err := types.ValidateFloor(floor); err != nil {
			return nil, err
		}
		floors = append(floors, floor)
	}
	return floors, nil
}

// Millis converts a duration to whole milliseconds for the JSON API.
func Millis(d time.Duration) int64 {
	return d.Milliseconds()
}

// FromMillis converts a possibly fractional millisecond count, rounding to
// the nearest nanosecond. Values that do not fit a time.Duration are invalid.
func FromMillis(ms float64) (time.Duration, error) {
	limit := float64(math.MaxInt64 / int64(time.Millisecond))
	if math.IsNaN(ms) || ms > limit || ms < -limit {
		return 0, fmt.Errorf("%w: %v ms out of range", types.ErrInvalidInput, ms)
	}
	return time.Duration(math.Round(ms * float64(time.Millisecond))), nil
}
