package game

import (
	"wordfall/internal/domain"

	"go.uber.org/zap"
)

// HandleInput is called whenever the answer field changes
func (c *Controller) HandleInput(text string) {
	s := c.session
	if s == nil || !s.Active || s.Paused || s.MenuOpen || s.Bubble == nil {
		return
	}

	if domain.NormalizeAnswer(text) != s.Bubble.Answer {
		return
	}

	answer := s.Bubble.Answer
	c.removeBubble()
	s.Award()
	c.sounds.Hit()
	c.surface.SetScore(s.Score)
	c.surface.ClearInput()

	c.logger.Debug("Word matched",
		zap.String("answer", answer),
		zap.Int("score", s.Score),
	)

	if s.Won() {
		c.endSession(true, TitleTargetReached)
		return
	}
	c.trySpawn()
}

// Skip gives up on the live bubble and reveals its answer
func (c *Controller) Skip() {
	s := c.session
	if s == nil || !s.Active || s.Paused || s.MenuOpen {
		return
	}
	c.fail()
}

// fail freezes the live bubble and reveals its answer. Score is unaffected.
func (c *Controller) fail() {
	s := c.session
	if s == nil || s.Bubble == nil || s.Paused {
		return
	}

	s.Paused = true
	s.Missed++
	s.Bubble.Revealed = true

	c.sounds.Miss()
	c.surface.RevealBubble(*s.Bubble)
	c.surface.ShowPanel(PanelContinue)

	c.logger.Debug("Word missed",
		zap.String("answer", s.Bubble.Answer),
		zap.Float64("y", s.Bubble.Y),
	)
}

// Resume clears the revealed bubble and moves on to the next word
func (c *Controller) Resume() {
	s := c.session
	if s == nil || !s.Active || !s.Paused || s.MenuOpen {
		return
	}

	c.removeBubble()
	s.Paused = false
	c.surface.HidePanel(PanelContinue)
	c.surface.ClearInput()
	c.surface.FocusInput()

	c.startLoop()
	c.trySpawn()
}
