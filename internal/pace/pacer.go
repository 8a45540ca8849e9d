// Package pace provides divine timing for staged console output. The seven
// stages of creation are not printed all at once.
package pace

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer spaces out successive stages of output
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a pacer allowing stagesPerSecond stages with the given
// burst. A non-positive rate returns a disabled pacer.
func NewPacer(stagesPerSecond float64, burst int) *Pacer {
	if stagesPerSecond <= 0 {
		return Disabled()
	}
	if burst <= 0 {
		burst = 1
	}
	return &Pacer{
		limiter: rate.NewLimiter(rate.Limit(stagesPerSecond), burst),
	}
}

// Disabled returns a pacer that never waits, for tests and --no-delay runs
func Disabled() *Pacer {
	return &Pacer{}
}

// Wait blocks until the next stage may proceed, or the context ends
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
