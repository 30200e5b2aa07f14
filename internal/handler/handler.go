package handler

import (
	"context"
	"time"

	"wordfall/internal/domain"
	"wordfall/internal/game"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Logical pixels per terminal cell
const (
	cellWidth  = 8
	cellHeight = 16
)

// Terminal is the tcell frontend. It implements game.Surface and turns
// keyboard events into controller calls. Everything runs on the Run goroutine.
type Terminal struct {
	screen tcell.Screen
	frames *game.FrameQueue
	ctrl   *game.Controller
	logger *zap.Logger
	fps    int

	// Menu selections
	banks      []domain.WordBank
	bankIdx    int
	difficulty int

	// Rendered state
	bubble *domain.Bubble
	panels map[game.Panel]bool
	score  int
	target int
	mode   string
	result game.Result
	input  []rune
}

// Settings holds the terminal's initial menu selection and frame rate
type Settings struct {
	FPS        int
	Difficulty string
	WordBank   string
}

// NewTerminal creates a frontend drawing to screen. The screen must be initialised.
func NewTerminal(
	screen tcell.Screen,
	frames *game.FrameQueue,
	banks []domain.WordBank,
	settings Settings,
	logger *zap.Logger,
) *Terminal {
	t := &Terminal{
		screen: screen,
		frames: frames,
		logger: logger,
		fps:    settings.FPS,
		banks:  banks,
		panels: map[game.Panel]bool{game.PanelMenu: true},
	}
	if t.fps <= 0 {
		t.fps = 60
	}
	for i, b := range banks {
		if b.Key == settings.WordBank {
			t.bankIdx = i
		}
	}
	for i, d := range domain.Difficulties() {
		if d.Key == settings.Difficulty {
			t.difficulty = i
		}
	}
	return t
}

// Attach connects the controller driven by this terminal
func (t *Terminal) Attach(ctrl *game.Controller) {
	t.ctrl = ctrl
}

// Run processes input and frames until the player quits or ctx is cancelled
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.draw()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Terminal loop stopped", zap.Error(ctx.Err()))
			return nil

		case ev := <-events:
			if !t.handleEvent(ev) {
				t.logger.Info("Player quit")
				return nil
			}
			t.draw()

		case <-ticker.C:
			t.frames.Step()
			t.draw()
		}
	}
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}
