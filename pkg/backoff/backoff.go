package backoff

import "time"

// Backoff produces exponentially growing delays capped at a maximum. It is
// used to pace retries of transient failures (for example a docker daemon
// that is still coming up during early boot) without hammering the host.
type Backoff struct {
	base    time.Duration
	max     time.Duration
	attempt int
}

// New creates a backoff starting at base and never exceeding max.
func New(base, max time.Duration) *Backoff {
	if base <= 0 {
		base = time.Second
	}
	if max < base {
		max = base
	}
	return &Backoff{base: base, max: max}
}

// Next returns the delay for the current attempt and advances the sequence.
// Once the cap is reached every subsequent call keeps returning the cap.
func (b *Backoff) Next() time.Duration {
	delay := b.base
	for i := 0; i < b.attempt; i++ {
		delay *= 2
		if delay >= b.max {
			return b.max
		}
	}
	b.attempt++
	return delay
}

// Attempt returns how many delays have been handed out since the last Reset.
func (b *Backoff) Attempt() int {
	return b.attempt
}

// Reset restarts the sequence so the next call to Next returns the base
// delay again. Call it after a successful operation.
func (b *Backoff) Reset() {
	b.attempt = 0
}
