package game

import "go.uber.org/zap"

// Key is a recognised action key
type Key int

const (
	KeyEnter Key = iota
	KeyEscape
	KeyBackspace
)

// HandleKey dispatches an action key pressed while playing.
// input is the current content of the answer field.
// It reports whether the key was consumed.
func (c *Controller) HandleKey(key Key, input string) bool {
	s := c.session
	if s == nil || !s.Active || s.MenuOpen {
		return false
	}

	switch key {
	case KeyEnter:
		if s.Paused {
			c.Resume()
			return true
		}
	case KeyEscape:
		if !s.Paused {
			c.Skip()
			return true
		}
	case KeyBackspace:
		if input == "" {
			c.OpenExitConfirm()
			return true
		}
	}
	return false
}

// OpenExitConfirm freezes the game and asks whether to quit to the menu
func (c *Controller) OpenExitConfirm() {
	s := c.session
	if s == nil || !s.Active || s.MenuOpen {
		return
	}

	s.MenuOpen = true
	c.stopLoop()
	c.surface.ShowPanel(PanelExitConfirm)
	c.logger.Debug("Exit confirmation opened")
}

// ResolveExitConfirm closes the exit confirmation.
// Confirming returns to the menu; cancelling continues where the game froze.
func (c *Controller) ResolveExitConfirm(confirmExit bool) {
	s := c.session
	if s == nil || !s.MenuOpen {
		return
	}

	c.surface.HidePanel(PanelExitConfirm)
	s.MenuOpen = false

	if confirmExit {
		c.logger.Info("Session abandoned", zap.Int("score", s.Score))
		c.TeardownToMenu()
		return
	}

	if !s.Paused {
		c.startLoop()
	}
	c.surface.FocusInput()
}
