package handler

import (
	"wordfall/internal/domain"
	"wordfall/internal/game"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// handleEvent returns false when the program should exit
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// handleKey routes a key to whichever panel has focus
func (t *Terminal) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyCtrlC {
		return false
	}

	switch {
	case t.panels[game.PanelExitConfirm]:
		t.handleExitConfirmKey(key, r)
	case t.panels[game.PanelMenu]:
		return t.handleMenuKey(key, r)
	case t.panels[game.PanelGameOver]:
		switch key {
		case tcell.KeyEnter:
			t.ctrl.TeardownToMenu()
		case tcell.KeyEscape:
			return false
		}
	default:
		t.handlePlayKey(key, r)
	}
	return true
}

func (t *Terminal) handleMenuKey(key tcell.Key, r rune) bool {
	difficulties := domain.Difficulties()

	switch key {
	case tcell.KeyEscape:
		return false
	case tcell.KeyTab:
		if len(t.banks) > 0 {
			t.bankIdx = (t.bankIdx + 1) % len(t.banks)
		}
	case tcell.KeyLeft:
		if t.difficulty > 0 {
			t.difficulty--
		}
	case tcell.KeyRight:
		if t.difficulty < len(difficulties)-1 {
			t.difficulty++
		}
	case tcell.KeyEnter:
		t.start(difficulties[t.difficulty].Key)
	case tcell.KeyRune:
		if i := int(r - '1'); i >= 0 && i < len(difficulties) {
			t.difficulty = i
			t.start(difficulties[i].Key)
		}
	}
	return true
}

func (t *Terminal) handleExitConfirmKey(key tcell.Key, r rune) {
	switch {
	case key == tcell.KeyEnter, key == tcell.KeyRune && (r == 'y' || r == 'Y'):
		t.ctrl.ResolveExitConfirm(true)
	case key == tcell.KeyEscape, key == tcell.KeyRune && (r == 'n' || r == 'N'):
		t.ctrl.ResolveExitConfirm(false)
	}
}

func (t *Terminal) handlePlayKey(key tcell.Key, r rune) {
	text := string(t.input)

	switch key {
	case tcell.KeyEnter:
		t.ctrl.HandleKey(game.KeyEnter, text)
	case tcell.KeyEscape:
		t.ctrl.HandleKey(game.KeyEscape, text)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.ctrl.HandleKey(game.KeyBackspace, text) || len(t.input) == 0 {
			return
		}
		t.input = t.input[:len(t.input)-1]
		t.ctrl.HandleInput(string(t.input))
	case tcell.KeyRune:
		t.input = append(t.input, r)
		t.ctrl.HandleInput(string(t.input))
	}
}

func (t *Terminal) start(difficulty string) {
	if len(t.banks) == 0 {
		t.logger.Warn("No word banks available")
		return
	}
	bank := t.banks[t.bankIdx]
	if err := t.ctrl.StartSession(difficulty, bank.Key); err != nil {
		t.logger.Error("Failed to start session", zap.Error(err))
	}
}
