package middleware

import (
	"testing"
	"time"

	"wordsaver/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter[int64](1, 2)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow(1))
	assert.True(t, limiter.Allow(1))
	assert.False(t, limiter.Allow(1), "burst exhausted")

	// Buckets are per user
	assert.True(t, limiter.Allow(2))

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow(1), "one token refilled")
}

func TestRateLimiter_DropsIdleLimiters(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter[int64](1, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow(1)
	now = now.Add(idleLimiterTTL + time.Second)
	limiter.Allow(2)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.limiters, int64(1))
	assert.Contains(t, limiter.limiters, int64(2))
}

func TestRateLimiter_SweepsPeriodically(t *testing.T) {
	start := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	now := start
	limiter := NewRateLimiter[int64](1, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow(1)
	now = start.Add(time.Minute)
	limiter.Allow(2)
	assert.Equal(t, start, limiter.lastSweep, "no sweep between intervals")

	now = start.Add(idleLimiterTTL + time.Minute)
	limiter.Allow(3)

	assert.Equal(t, now, limiter.lastSweep)
	assert.NotContains(t, limiter.limiters, int64(1))
	assert.Contains(t, limiter.limiters, int64(2), "idle for exactly the TTL")
	assert.Contains(t, limiter.limiters, int64(3))
}

func TestRateLimiter_StringKeys(t *testing.T) {
	limiter := NewRateLimiter[string](1, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestBotRateLimit(t *testing.T) {
	limiter := NewRateLimiter[int64](1, 1)
	calls := 0
	handler := BotRateLimit(limiter, testutil.NewTestLogger())(func(c tele.Context) error {
		calls++
		return nil
	})

	c := newTestContext(t, 5, "hello")
	assert.NoError(t, handler(c))
	assert.NoError(t, handler(c))

	assert.Equal(t, 1, calls)
}
