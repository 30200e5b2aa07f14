package game

import (
	"wordfall/internal/domain"

	"go.uber.org/zap"
)

// trySpawn puts the next word on screen. It is a no-op unless a session is
// running unpaused with no bubble live, so at most one bubble ever exists.
func (c *Controller) trySpawn() {
	s := c.session
	if s == nil || !s.Active || s.Paused || s.MenuOpen || s.Bubble != nil {
		return
	}

	if len(s.Remaining) == 0 {
		c.endSession(true, TitleBankExhausted)
		return
	}

	pair := s.TakeWord(c.rng.Intn(len(s.Remaining)))

	minX, maxX := c.surface.Viewport().SpawnRange()
	x := minX
	if maxX > minX {
		x += float64(int(c.rng.Float64() * (maxX - minX)))
	}

	s.Bubble = &domain.Bubble{
		Pair:   pair,
		Answer: pair.Answer(),
		X:      x,
		Y:      domain.SpawnY,
	}
	c.surface.ShowBubble(*s.Bubble)

	c.logger.Debug("Bubble spawned",
		zap.String("native", pair.Native),
		zap.Int("remaining", len(s.Remaining)),
	)
}

// removeBubble destroys the live bubble
func (c *Controller) removeBubble() {
	if c.session == nil || c.session.Bubble == nil {
		return
	}
	c.session.Bubble = nil
	c.surface.RemoveBubble()
}
