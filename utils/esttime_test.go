package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimatedCollectionRoundsUpToQuarterHour(t *testing.T) {
	base := time.Date(2026, time.September, 1, 18, 7, 42, 0, time.UTC)
	// 18:07 + 30m = 18:37, rounded up to 18:45.
	assert.Equal(t, time.Date(2026, time.September, 1, 18, 45, 0, 0, time.UTC), EstimatedCollection(base))

	onBoundary := time.Date(2026, time.September, 1, 18, 15, 0, 0, time.UTC)
	// 18:15 + 30m lands on 18:45 exactly; no extra rounding.
	assert.Equal(t, time.Date(2026, time.September, 1, 18, 45, 0, 0, time.UTC), EstimatedCollection(onBoundary))
}

func TestEstimatedDelivery(t *testing.T) {
	base := time.Date(2026, time.September, 1, 18, 7, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.September, 1, 18, 47, 0, 0, time.UTC), EstimatedDelivery(base))
}

func TestNewOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{2}\d{5}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, NewOrderNumber())
	}
}
