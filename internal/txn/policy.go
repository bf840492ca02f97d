package txn

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy controls how the executor reacts to serialization conflicts.
type Policy struct {
	// MaxAttempts caps the number of times the unit of work runs.
	// Zero retries forever.
	MaxAttempts int

	// InitialBackoff is the delay before the first retry. Zero retries
	// immediately every time.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64

	// RestartTransaction restarts the whole transaction on conflict instead
	// of rolling back to the save point. Stores whose serializable snapshot
	// survives a save point rollback (PostgreSQL) need this.
	RestartTransaction bool
}

// DefaultPolicy returns a bounded policy with short exponential backoff.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    50,
		InitialBackoff: 2 * time.Millisecond,
		MaxBackoff:     250 * time.Millisecond,
		Multiplier:     2,
	}
}

// newBackOff builds a fresh, per-call backoff. backoff.ExponentialBackOff is
// not safe for concurrent use.
func (p Policy) newBackOff() backoff.BackOff {
	if p.InitialBackoff <= 0 {
		return &backoff.ZeroBackOff{}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialBackoff
	b.MaxInterval = p.MaxBackoff
	if b.MaxInterval < b.InitialInterval {
		b.MaxInterval = b.InitialInterval
	}
	if p.Multiplier > 1 {
		b.Multiplier = p.Multiplier
	}
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
