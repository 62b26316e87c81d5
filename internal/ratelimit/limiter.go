package ratelimit

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/henrymaxel/platform-mvp-sub000/internal/metrics"
)

// ErrCannotReserve is returned when the limiter can never grant a token (burst of zero)
var ErrCannotReserve = errors.New("rate: cannot reserve token")

// Limiter defines the interface for a client side rate limiter
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Wait blocks until one request is allowed, or ctx is done
	Wait(ctx context.Context) error
}

// limiter wraps a token-bucket limiter for one outbound provider
type limiter struct {
	limiter  *rate.Limiter
	provider string
}

// NewLimiter creates a limiter allowing rps requests per second with a burst capacity
// of burst tokens. A non-positive rps disables limiting.
func NewLimiter(provider string, rps float64, burst int) Limiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &limiter{
		limiter:  rate.NewLimiter(limit, burst),
		provider: provider,
	}
}

// Wait uses Reserve so exactly one token is consumed per call
func (l *limiter) Wait(ctx context.Context) error {
	r := l.limiter.Reserve()
	if !r.OK() {
		return ErrCannotReserve
	}
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}

	metrics.GatewayRateLimitWaits.WithLabelValues(l.provider).Inc()
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

// Request waits for the limiter and then runs fn
func Request[T any](ctx context.Context, l Limiter, fn func(ctx context.Context) (T, error)) (T, error) {
	if err := l.Wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return fn(ctx)
}
