package retry

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryConfig_WithRetries(t *testing.T) {
	ctx := context.Background()
	{
		// 0 max attempts - still runs
		retryCfg := NewRetryConfig(NewRetryConfigArgs{})
		calls := 0
		err := retryCfg.WithRetries(ctx, func(attempt int, _ error) error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	}
	{
		// 1 max attempts - fails
		calls := 0
		retryCfg := NewRetryConfig(NewRetryConfigArgs{MaxAttempts: 1})
		err := retryCfg.WithRetries(ctx, func(attempt int, _ error) error {
			calls++
			return fmt.Errorf("oops I failed again")
		})
		assert.ErrorContains(t, err, "oops I failed again")
		assert.Equal(t, 1, calls)
	}
	{
		// 2 max attempts - first fails and second succeeds, the previous error is passed along
		calls := 0
		retryCfg := NewRetryConfig(NewRetryConfigArgs{MaxAttempts: 2, JitterBaseMs: 1, JitterMaxMs: 5})
		err := retryCfg.WithRetries(ctx, func(attempt int, prevErr error) error {
			calls++
			if attempt == 0 {
				assert.NoError(t, prevErr)
				return fmt.Errorf("oops I failed again")
			}
			assert.ErrorContains(t, prevErr, "oops I failed again")
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	}
	{
		// 3 max attempts - first fails with a retryable error, second fails with a non-retryable error
		calls := 0
		retryCfg := NewRetryConfig(NewRetryConfigArgs{
			MaxAttempts:    3,
			IsRetryableErr: func(err error) bool { return strings.Contains(err.Error(), "retry") },
		})
		err := retryCfg.WithRetries(ctx, func(attempt int, _ error) error {
			calls++
			if attempt == 0 {
				return fmt.Errorf("retry this one")
			} else if attempt == 1 {
				return fmt.Errorf("oops I failed again")
			}
			assert.Fail(t, "Should not happen")
			return nil
		})
		assert.ErrorContains(t, err, "oops I failed again")
		assert.Equal(t, 2, calls)
	}
}

func TestWithRetries(t *testing.T) {
	ctx := context.Background()
	{
		// 1 max attempts - succeeds
		calls := 0
		retryCfg := NewRetryConfig(NewRetryConfigArgs{MaxAttempts: 1})
		value, err := WithRetries(ctx, retryCfg, func(attempt int, _ error) (string, error) {
			calls++
			return "s3://bucket/sample.json", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "s3://bucket/sample.json", value)
		assert.Equal(t, 1, calls)
	}
	{
		// All attempts fail
		calls := 0
		retryCfg := NewRetryConfig(NewRetryConfigArgs{MaxAttempts: 3})
		_, err := WithRetries(ctx, retryCfg, func(attempt int, _ error) (string, error) {
			calls++
			return "", fmt.Errorf("attempt %d failed", attempt)
		})
		assert.ErrorContains(t, err, "attempt 2 failed")
		assert.Equal(t, 3, calls)
	}
	{
		// Cancelled context stops before the second attempt
		cancelledCtx, cancel := context.WithCancel(ctx)
		calls := 0
		retryCfg := NewRetryConfig(NewRetryConfigArgs{MaxAttempts: 3, JitterBaseMs: 1_000, JitterMaxMs: 10_000})
		_, err := WithRetries(cancelledCtx, retryCfg, func(attempt int, _ error) (string, error) {
			calls++
			cancel()
			return "", fmt.Errorf("retry this one")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	}
}
