package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that bounds each Generate call with a
// client-side deadline. The backend's latency is unbounded in principle
// and calls are not cancellable server-side, so this is the only wait
// limit the app has. There is deliberately no retry decorator: every
// operation performs exactly one external call per user action.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline.
// A non-positive timeout disables the bound.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	resp, err := t.inner.Generate(ctx, req)
	if err != nil {
		// A deadline expiry surfaces like any other transport failure.
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &ErrProviderUnavailable{Err: ctx.Err()}
		}
		return nil, err
	}
	return resp, nil
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
