// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// RetryPolicy describes how remote calls are repeated on failure.
type RetryPolicy struct {
	MaxAttempts int           // Must be > 0
	BaseDelay   time.Duration // Doubles after every failed attempt
}

// Policy extracts the retry policy from the configuration.
func (c *Config) Policy() RetryPolicy {
	return RetryPolicy{MaxAttempts: c.MaxRetries, BaseDelay: c.RetryDelay}
}

// delay returns the wait before the given (1-based) retry.
func (p RetryPolicy) delay(attempt int) time.Duration {
	return p.BaseDelay << (attempt - 1)
}

// Retry runs op under the policy and returns its first successful value.
// Context errors end the loop at once; otherwise the last error is returned.
func Retry[T any](ctx context.Context, p RetryPolicy, logger *slog.Logger, op func(context.Context) (T, error)) (T, error) {
	var zero T
	if p.MaxAttempts <= 0 {
		return zero, ErrInvalidMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		v, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				logger.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return v, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return zero, err
		}
		lastErr = err

		if attempt == p.MaxAttempts {
			break
		}
		logger.Debug("operation failed, will retry", "attempt", attempt, "maxAttempts", p.MaxAttempts, "err", err)

		timer := time.NewTimer(p.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}
