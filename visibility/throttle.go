package visibility

import (
	"context"
	"time"
)

// Throttle paces successive platform calls. The platform rate-limits bulk
// mutations, so the reconciler waits between calls rather than bursting.
type Throttle interface {
	Wait(ctx context.Context)
}

// FixedDelay waits a constant duration between calls.
type FixedDelay struct {
	Delay time.Duration
}

func (f FixedDelay) Wait(ctx context.Context) {
	t := time.NewTimer(f.Delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// NoDelay disables pacing. Tests use it to avoid sleeping real time.
type NoDelay struct{}

func (NoDelay) Wait(context.Context) {}

// DefaultThrottle is the production pacing between platform mutations.
func DefaultThrottle() Throttle {
	return FixedDelay{Delay: 100 * time.Millisecond}
}
