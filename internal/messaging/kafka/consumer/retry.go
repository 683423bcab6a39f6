package consumer

import (
	"context"
	"time"
)

var (
	handlerAttempts = 4
	handlerBackoff  = 500 * time.Millisecond
)

// retry calls fn until it succeeds, the attempts run out or ctx ends,
// doubling the wait between attempts. It returns the last error.
func retry(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := handlerBackoff
	var err error
	for attempt := 1; attempt <= handlerAttempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt == handlerAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
