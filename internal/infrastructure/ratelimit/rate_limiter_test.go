package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowSpendsBurstThenRefills(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok)
	}

	ok, wait := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.InDelta(t, float64(20*time.Second), float64(wait), float64(time.Millisecond))

	other, _ := rl.Allow("10.0.0.2")
	assert.True(t, other)

	now = now.Add(21 * time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestSweepForgetsIdleKeys(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(2 * time.Minute)
	rl.Allow("b")
	now = now.Add(2 * time.Minute)

	rl.sweep()
	assert.Equal(t, 1, rl.size())
}
