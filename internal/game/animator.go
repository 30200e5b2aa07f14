package game

// startLoop schedules the next frame unless one is already pending
func (c *Controller) startLoop() {
	if c.scheduled {
		return
	}
	c.frame = c.frames.RequestFrame(c.tick)
	c.scheduled = true
}

// stopLoop invalidates the pending frame so it can never fire
func (c *Controller) stopLoop() {
	if !c.scheduled {
		return
	}
	c.frames.CancelFrame(c.frame)
	c.scheduled = false
}

// Looping reports whether a frame is scheduled
func (c *Controller) Looping() bool {
	return c.scheduled
}

// tick is one run of the animation driver.
// Paused frames still reschedule; an open menu stops the loop until
// ResolveExitConfirm restarts it.
func (c *Controller) tick() {
	c.scheduled = false

	s := c.session
	if s == nil || !s.Active {
		return
	}

	if !s.Paused && !s.MenuOpen {
		c.advance()
	}

	if !s.MenuOpen && s.Active {
		c.startLoop()
	}
}

// advance moves the live bubble down by one frame's worth of speed
func (c *Controller) advance() {
	s := c.session
	b := s.Bubble
	if b == nil {
		return
	}

	b.Y += s.Difficulty.Speed
	c.surface.MoveBubble(*b)

	if b.Y > c.surface.Viewport().FailLine() {
		c.fail()
	}
}
