package handler

import (
	"wordfall/internal/domain"
	"wordfall/internal/game"
)

// HUD takes the top row and the answer field the bottom row
const reservedRows = 2

func (t *Terminal) Viewport() domain.Viewport {
	w, h := t.screen.Size()
	rows := h - reservedRows
	if rows < 0 {
		rows = 0
	}
	return domain.Viewport{
		Width:  float64(w * cellWidth),
		Height: float64(rows * cellHeight),
	}
}

func (t *Terminal) ShowBubble(b domain.Bubble)   { t.bubble = &b }
func (t *Terminal) MoveBubble(b domain.Bubble)   { t.bubble = &b }
func (t *Terminal) RevealBubble(b domain.Bubble) { t.bubble = &b }
func (t *Terminal) RemoveBubble()                { t.bubble = nil }

func (t *Terminal) SetScore(score int)   { t.score = score }
func (t *Terminal) SetTarget(target int) { t.target = target }
func (t *Terminal) SetMode(name string)  { t.mode = name }

func (t *Terminal) ShowPanel(p game.Panel)   { t.panels[p] = true }
func (t *Terminal) HidePanel(p game.Panel)   { t.panels[p] = false }
func (t *Terminal) ShowResult(r game.Result) { t.result = r }

func (t *Terminal) ClearInput() { t.input = t.input[:0] }

// FocusInput is a no-op: the answer field always has keyboard focus
func (t *Terminal) FocusInput() {}
