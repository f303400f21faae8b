package ai

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/ptypek/listic/internal/logger"
)

// DefaultRateLimit is the default number of extraction calls per minute.
const DefaultRateLimit = 30

// RateLimiter spaces out AI API calls across all requests of the process.
type RateLimiter struct {
	limiter   *rate.Limiter
	perMinute int
}

// NewRateLimiter allows perMinute calls per minute with a burst of a tenth of that.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	burst := perMinute / 10
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst),
		perMinute: perMinute,
	}
}

// Wait blocks until a call is allowed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	start := time.Now()
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	if waited := time.Since(start); waited > time.Second {
		logger.Debug("ai call throttled", "module", "ai", "action", "wait", "resource", "ai", "result", "ok", "waited_ms", waited.Milliseconds())
	}
	return nil
}

// PerMinute returns the configured limit.
func (r *RateLimiter) PerMinute() int {
	return r.perMinute
}
