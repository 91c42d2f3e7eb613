package util

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// PollFunc is the function executed by Poll. A nil error means done, a non-nil error
// means try again unless it was wrapped with Permanent.
type PollFunc func(ctx context.Context) error

// PollOptions configures the behavior of the Poll function.
type PollOptions struct {
	// Tries is the maximum number of attempts. 0 retries until Timeout is reached.
	Tries int
	// Delay between attempts. 0 selects binary exponential backoff starting at 2 seconds.
	Delay time.Duration
	// Timeout bounds the total time spent polling. 0 means no limit.
	Timeout time.Duration
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not retryable. Poll returns the wrapped error immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

const maxPollDelay = 30 * time.Second

// Poll executes fn until it returns no error, returns a Permanent error, or the
// configured number of tries, timeout or context cancellation is reached.
func Poll(ctx context.Context, fn PollFunc, opts PollOptions) error {
	var lastErr error

	if opts.Tries == 0 && opts.Timeout == 0 {
		opts.Tries = 1
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	for i := 0; opts.Tries == 0 || i < opts.Tries; i++ {
		if err := ctx.Err(); err != nil {
			return joinLast(err, lastErr)
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		lastErr = err

		if opts.Tries > 0 && i == opts.Tries-1 {
			break
		}

		wait := opts.Delay
		if wait <= 0 {
			wait = time.Duration(math.Pow(2, float64(i))) * 2 * time.Second
			if wait > maxPollDelay {
				wait = maxPollDelay
			}
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return joinLast(ctx.Err(), lastErr)
		}
	}

	if lastErr != nil {
		if opts.Tries > 0 {
			return fmt.Errorf("after %d attempts, last error: %w", opts.Tries, lastErr)
		}
		return fmt.Errorf("last error: %w", lastErr)
	}
	return fmt.Errorf("polling failed without returning an error")
}

func joinLast(ctxErr, lastErr error) error {
	if lastErr == nil {
		return ctxErr
	}
	return fmt.Errorf("%w (last error: %w)", ctxErr, lastErr)
}
