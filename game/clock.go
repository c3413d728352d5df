package game

import "time"

// MovementClock gates the snake's advancement. It fires at most once per
// Tick call no matter how much time elapsed: leftover time is kept as a
// remainder, but whole extra periods are not banked into extra fires.
type MovementClock struct {
	period  time.Duration
	elapsed time.Duration
}

func NewMovementClock(period time.Duration) MovementClock {
	return MovementClock{period: period}
}

// Tick accumulates elapsed time and reports whether the clock fired.
func (c *MovementClock) Tick(dt time.Duration) bool {
	c.elapsed += dt
	if c.elapsed < c.period {
		return false
	}
	c.elapsed %= c.period
	return true
}

// Period returns the configured firing interval.
func (c *MovementClock) Period() time.Duration {
	return c.period
}
