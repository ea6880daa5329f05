package input

import (
	"time"

	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// ClickTracker counts consecutive clicks to detect double clicks. The host
// passes the frame time in, so the tracker never reads the clock itself.
type ClickTracker struct {
	speed   time.Duration
	maxDist int

	last  time.Time
	pos   geom.Point
	count int
}

// NewClickTracker creates a tracker using the State's double-click speed
// and drag threshold.
func NewClickTracker(opts Options) *ClickTracker {
	return &ClickTracker{
		speed:   opts.DoubleClickSpeed,
		maxDist: opts.MinDragLength,
	}
}

// Click records a click at pos and time now and returns how many clicks in
// a row it completes (1 for a single click, 2 for a double click, ...).
func (c *ClickTracker) Click(now time.Time, pos geom.Point) int {
	if c.count > 0 &&
		now.Sub(c.last) <= c.speed &&
		pos.DistanceSquared(c.pos) <= c.maxDist*c.maxDist {
		c.count++
	} else {
		c.count = 1
	}
	c.last = now
	c.pos = pos
	return c.count
}

// Reset forgets the click history.
func (c *ClickTracker) Reset() {
	c.count = 0
}
