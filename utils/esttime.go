package utils

import (
	"time"
)

// EstimatedCollection is thirty minutes out, rounded up to the next
// quarter hour so pickup slots land on tidy times.
func EstimatedCollection(now time.Time) time.Time {
	t := now.Add(30 * time.Minute)
	if rem := t.Minute() % 15; rem > 0 {
		t = t.Add(time.Duration(15-rem) * time.Minute)
	}
	return t.Truncate(time.Minute)
}

// EstimatedDelivery is a flat forty minutes out.
func EstimatedDelivery(now time.Time) time.Time {
	return now.Add(40 * time.Minute).Truncate(time.Minute)
}
