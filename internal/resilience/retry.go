// Package resilience re-runs whole operations that failed for a transient
// reason.
package resilience

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/redlytics/config"
	"github.com/spacesedan/redlytics/internal/failure"
)

type Policy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// Sleep waits for d or until ctx is done. Nil means a real timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:     config.DEFAULT_MAX_RETRIES,
		InitialBackoff: config.DEFAULT_INITIAL_BACKOFF,
		MaxBackoff:     config.DEFAULT_MAX_BACKOFF,
	}
}

func PolicyFromConfig(cfg config.Config) Policy {
	return Policy{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
	}
}

// Backoff returns the delay before retry number attempt (1-based): the initial
// backoff doubled per attempt, capped at MaxBackoff.
func (p Policy) Backoff(attempt int) time.Duration {
	d := p.InitialBackoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxBackoff > 0 && d >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry runs op, then retries it up to MaxRetries times while it keeps failing
// with a retryable failure kind. The last error is returned unchanged.
func Retry[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var zero T
	for attempt := 0; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !failure.IsRetryable(err) || attempt >= p.MaxRetries {
			return zero, err
		}

		delay := p.Backoff(attempt + 1)
		slog.Warn("[Retry] Transient failure - Backing off...",
			slog.Int("attempt", attempt+1),
			slog.String("kind", failure.KindOf(err).String()),
			slog.Duration("backoff", delay),
			slog.String("error", err.Error()))

		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
}
