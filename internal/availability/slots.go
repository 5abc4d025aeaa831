package availability

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned by Fetch when no usable date was given
var ErrInvalidDate = errors.New("invalid date")

const (
	modulus    int64 = 1<<35 - 31
	multiplier int64 = 185852

	firstHour = 17
	lastHour  = 23
)

// seededRandom returns a deterministic stream of values in [0,1)
func seededRandom(seed int64) func() float64 {
	s := seed % modulus
	return func() float64 {
		s = s * multiplier % modulus
		return float64(s) / float64(modulus)
	}
}

// GenerateSlots returns the bookable times for the given date.
// The result depends only on the day of the month, so the 3rd of every
// month always offers the same slots.
func GenerateSlots(date time.Time) []string {
	random := seededRandom(int64(date.Day()))

	var slots []string
	for hour := firstHour; hour <= lastHour; hour++ {
		if random() < 0.5 {
			slots = append(slots, fmt.Sprintf("%d:00", hour))
		}
		if random() < 0.5 {
			slots = append(slots, fmt.Sprintf("%d:30", hour))
		}
	}
	return slots
}

// Fetch is the availability lookup used by the reservation form
func Fetch(date time.Time) ([]string, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	return GenerateSlots(date), nil
}
