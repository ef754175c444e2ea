package services

import (
	"fmt"
	"time"
)

// TimeFetcher is the availability collaborator: a black box returning zero
// or more slot labels for a date.
type TimeFetcher interface {
	TimesFor(date time.Time) []string
}

// Availability generates synthetic evening slots, deterministic per date so
// re-selecting the same day always offers the same times.
type Availability struct{}

func NewAvailability() *Availability {
	return &Availability{}
}

func (Availability) TimesFor(date time.Time) []string {
	next := seededRandom(int64(date.Day()))
	var times []string
	for hour := 17; hour <= 23; hour++ {
		if next() < 0.5 {
			times = append(times, fmt.Sprintf("%d:00", hour))
		}
		if next() < 0.5 {
			times = append(times, fmt.Sprintf("%d:30", hour))
		}
	}
	return times
}

// Small multiplicative congruential generator; the constants keep the slot
// pattern stable for a given day of month.
func seededRandom(seed int64) func() float64 {
	const m = int64(1)<<35 - 31
	const a = int64(185852)
	s := seed % m
	return func() float64 {
		s = s * a % m
		return float64(s) / float64(m)
	}
}
