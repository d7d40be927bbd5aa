package simulation

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTickRate is how many times per second a Runner steps its session
const DefaultTickRate = 30

// Runner drives a session's Update at a fixed tick rate, the way a frame
// loop would, until the game ends or the context is cancelled
type Runner struct {
	session *Session
	limiter *rate.Limiter
}

// NewRunner creates a runner ticking ticksPerSecond times a second. A
// non-positive rate uses DefaultTickRate.
func NewRunner(session *Session, ticksPerSecond float64) *Runner {
	if ticksPerSecond <= 0 {
		ticksPerSecond = DefaultTickRate
	}
	return &Runner{
		session: session,
		limiter: rate.NewLimiter(rate.Limit(ticksPerSecond), 1),
	}
}

// Interval is the time between ticks
func (r *Runner) Interval() time.Duration {
	return time.Duration(float64(time.Second) / float64(r.limiter.Limit()))
}

// Run ticks until the game is over. It returns nil when the game ends,
// the context's error when cancelled, or the first save failure.
func (r *Runner) Run(ctx context.Context) error {
	for !r.session.Done() {
		if err := r.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
		if err := r.session.Update(ctx); err != nil {
			return err
		}
	}
	return nil
}
