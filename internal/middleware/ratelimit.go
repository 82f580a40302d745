package middleware

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

// idleLimiterTTL is how long an unused limiter is kept. Idle limiters are
// swept at most once per idleLimiterTTL.
const idleLimiterTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key
type RateLimiter[K comparable] struct {
	mu       sync.Mutex
	limiters  map[K]*limiterEntry
	rps       rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second with burst
func NewRateLimiter[K comparable](rps, burst int) *RateLimiter[K] {
	return &RateLimiter[K]{
		limiters: make(map[K]*limiterEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether key may make another request now
func (l *RateLimiter[K]) Allow(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	if now.Sub(l.lastSweep) >= idleLimiterTTL {
		l.sweep(now)
	}

	return entry.limiter.AllowN(now, 1)
}

// sweep drops idle limiters; the caller holds l.mu
func (l *RateLimiter[K]) sweep(now time.Time) {
	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) > idleLimiterTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

// BotRateLimit drops updates from users over their limit
func BotRateLimit(l *RateLimiter[int64], logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return next(c)
			}
			if !l.Allow(c.Sender().ID) {
				logger.Warn("Rate limit exceeded", zap.Int64("user_id", c.Sender().ID))
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: "Too many requests, slow down"})
				}
				return nil
			}
			return next(c)
		}
	}
}
