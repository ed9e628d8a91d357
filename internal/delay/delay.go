// Package delay paces rounds: how long the music plays and how the
// coordinator sleeps between phases.
package delay

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/palemoky/musical-chairs/internal/apperrors"
)

// Random draws a uniform duration in [Min, Max].
type Random struct {
	Min time.Duration
	Max time.Duration
}

// NewRandom validates the range.
func NewRandom(minDelay, maxDelay time.Duration) (*Random, error) {
	if minDelay < 0 || maxDelay < minDelay {
		return nil, apperrors.ErrInvalidDelayRange
	}
	return &Random{Min: minDelay, Max: maxDelay}, nil
}

func (r *Random) Next() time.Duration {
	span := r.Max - r.Min
	if span <= 0 {
		return r.Min
	}
	return r.Min + rand.N(span+1)
}

// Fixed always returns the same duration. Fixed(0) is the zero-delay stub.
type Fixed time.Duration

func (f Fixed) Next() time.Duration {
	return time.Duration(f)
}

// Sleep waits d on clock. It returns ctx.Err() if ctx ends first.
func Sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
