package window

// cursorTracker turns absolute cursor samples into an accumulated offset that
// is drained by the frame loop once per frame.
type cursorTracker struct {
	lastX, lastY float64
	dx, dy       float64
	primed       bool
}

// sample records a cursor position. The first sample only primes the tracker
// so the initial jump from the window origin is not reported.
func (c *cursorTracker) sample(x, y float64) {
	if !c.primed {
		c.lastX, c.lastY = x, y
		c.primed = true
		return
	}
	c.dx += x - c.lastX
	// Screen y grows downwards; report up as positive.
	c.dy += c.lastY - y
	c.lastX, c.lastY = x, y
}

// take returns the offset accumulated since the previous call and clears it.
func (c *cursorTracker) take() (float64, float64) {
	dx, dy := c.dx, c.dy
	c.dx, c.dy = 0, 0
	return dx, dy
}
