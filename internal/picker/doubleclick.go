package picker

import "time"

// ClickTracker turns single button presses into double-clicks for input
// backends that only report presses.
type ClickTracker struct {
	Window time.Duration // max gap between the two presses
	Slop   int           // max movement in pixels between the two presses

	armed bool
	last  time.Time
	lastX int
	lastY int
}

// Press records a press at (x, y) and reports whether it completes a
// double-click. A third quick press starts a new pair.
func (c *ClickTracker) Press(x, y int, now time.Time) bool {
	if c.armed &&
		now.Sub(c.last) <= c.Window &&
		abs(x-c.lastX) <= c.Slop &&
		abs(y-c.lastY) <= c.Slop {
		c.armed = false
		return true
	}
	c.armed = true
	c.last, c.lastX, c.lastY = now, x, y
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
