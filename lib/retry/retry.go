package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/artie-labs/sampler/lib/jitter"
)

type RetryConfig struct {
	jitterBaseMs   int
	jitterMaxMs    int
	maxAttempts    int
	isRetryableErr func(err error) bool
}

type NewRetryConfigArgs struct {
	JitterBaseMs   int
	JitterMaxMs    int
	MaxAttempts    int
	IsRetryableErr func(err error) bool
}

func NewRetryConfig(args NewRetryConfigArgs) RetryConfig {
	isRetryableErr := args.IsRetryableErr
	if isRetryableErr == nil {
		isRetryableErr = func(_ error) bool { return true }
	}

	return RetryConfig{
		jitterBaseMs:   max(args.JitterBaseMs, 0),
		jitterMaxMs:    max(args.JitterMaxMs, 0),
		maxAttempts:    max(args.MaxAttempts, 1),
		isRetryableErr: isRetryableErr,
	}
}

// sleepIfNecessary waits before every attempt but the first, returning early with the context's error if it's cancelled.
func (r RetryConfig) sleepIfNecessary(ctx context.Context, attempt int, err error) error {
	if attempt == 0 {
		return nil
	}

	sleepDuration := jitter.Jitter(r.jitterBaseMs, r.jitterMaxMs, attempt)
	slog.Info("An error occurred, retrying...",
		slog.Duration("sleep", sleepDuration),
		slog.Int("attemptsLeft", r.maxAttempts-attempt),
		slog.Any("err", err),
	)

	if sleepDuration <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(sleepDuration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r RetryConfig) WithRetries(ctx context.Context, f func(attempt int, err error) error) error {
	_, err := WithRetries(ctx, r, func(attempt int, err error) (struct{}, error) {
		return struct{}{}, f(attempt, err)
	})
	return err
}

func WithRetries[T any](ctx context.Context, retryCfg RetryConfig, f func(attempt int, err error) (T, error)) (T, error) {
	var result T
	var err error
	for attempt := 0; attempt < retryCfg.maxAttempts; attempt++ {
		if sleepErr := retryCfg.sleepIfNecessary(ctx, attempt, err); sleepErr != nil {
			return result, sleepErr
		}

		result, err = f(attempt, err)
		if err == nil {
			return result, nil
		} else if !retryCfg.isRetryableErr(err) {
			break
		}
	}
	return result, err
}
