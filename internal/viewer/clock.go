package viewer

import "time"

// clock turns wall-clock frame times into animation time. Animation time
// only advances while animation is on, so pausing and resuming continues
// from the same pose.
type clock struct {
	start   time.Time
	prev    time.Time
	elapsed time.Duration
}

// tick records a frame at now and returns the animation time and the wall
// time since the previous frame.
func (c *clock) tick(now time.Time, animating bool) (elapsed, delta time.Duration) {
	if c.start.IsZero() {
		c.start = now
		c.prev = now
	}
	delta = now.Sub(c.prev)
	c.prev = now
	if animating {
		c.elapsed += delta
	}
	return c.elapsed, delta
}

// uptime returns the wall time since the first tick.
func (c *clock) uptime() time.Duration {
	return c.prev.Sub(c.start)
}
