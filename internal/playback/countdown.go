package playback

import "time"

// countdown tracks one phase's remaining time from a clock rather than by
// counting ticks, so late or dropped ticks do not skew it.
type countdown struct {
	total   time.Duration
	elapsed time.Duration // accumulated up to since
	since   time.Time
	running bool
	fired   bool
}

func newCountdown(seconds int, now time.Time) countdown {
	return countdown{
		total:   time.Duration(seconds) * time.Second,
		since:   now,
		running: true,
	}
}

func (c *countdown) elapsedAt(now time.Time) time.Duration {
	d := c.elapsed
	if c.running {
		d += now.Sub(c.since)
	}
	return d
}

// remaining returns whole seconds left, rounded up, so a 30s phase shows 30
// for its whole first second.
func (c *countdown) remaining(now time.Time) int {
	left := c.total - c.elapsedAt(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

func (c *countdown) pause(now time.Time) {
	if !c.running {
		return
	}
	c.elapsed += now.Sub(c.since)
	c.running = false
}

func (c *countdown) resume(now time.Time) {
	if c.running {
		return
	}
	c.since = now
	c.running = true
}

// reset rewinds to the full duration and stops the countdown.
func (c *countdown) reset(now time.Time) {
	c.elapsed = 0
	c.since = now
	c.running = false
	c.fired = false
}
