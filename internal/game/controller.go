package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"wordfall/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownWordBank   = errors.New("unknown word bank")
	ErrEmptyWordBank     = errors.New("word bank is empty")
)

// Titles shown on the game-over panel
const (
	TitleTargetReached = "Stage cleared!"
	TitleBankExhausted = "Every word conquered!"
	TitleGameOver      = "Challenge over"
)

// Options configures a Controller
type Options struct {
	Surface     Surface
	Frames      FrameScheduler
	Banks       []domain.WordBank
	TargetScore int
	Sounds      Sounds
	Rand        *rand.Rand
	Logger      *zap.Logger
}

// Controller owns the session and drives every state transition of the game.
// All methods must be called from the goroutine that steps Frames.
type Controller struct {
	surface Surface
	frames  FrameScheduler
	banks   map[string]domain.WordBank
	target  int
	sounds  Sounds
	rng     *rand.Rand
	logger  *zap.Logger

	session *domain.Session

	frame     FrameID
	scheduled bool
}

// NewController creates a controller showing the main menu
func NewController(opts Options) *Controller {
	c := &Controller{
		surface: opts.Surface,
		frames:  opts.Frames,
		banks:   make(map[string]domain.WordBank, len(opts.Banks)),
		target:  opts.TargetScore,
		sounds:  opts.Sounds,
		rng:     opts.Rand,
		logger:  opts.Logger,
	}
	for _, b := range opts.Banks {
		c.banks[b.Key] = b
	}
	if c.target <= 0 {
		c.target = domain.DefaultTargetScore
	}
	if c.sounds == nil {
		c.sounds = silent{}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// StartSession begins a new game with the chosen difficulty and word bank.
// Any previous session is discarded first.
func (c *Controller) StartSession(difficultyKey, bankKey string) error {
	difficulty, ok := domain.DifficultyByKey(difficultyKey)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficultyKey)
	}
	bank, ok := c.banks[bankKey]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWordBank, bankKey)
	}
	if bank.Len() == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyWordBank, bankKey)
	}

	c.discard()
	c.session = domain.NewSession(difficulty, bank, c.target)

	c.surface.HidePanel(PanelMenu)
	c.surface.HidePanel(PanelGameOver)
	c.surface.SetMode(difficulty.Name)
	c.surface.SetScore(0)
	c.surface.SetTarget(c.target)
	c.surface.ClearInput()
	c.surface.FocusInput()

	c.logger.Info("Session started",
		zap.String("difficulty", difficulty.Key),
		zap.String("bank", bank.Key),
		zap.Int("words", bank.Len()),
		zap.Int("target", c.target),
	)

	c.startLoop()
	c.trySpawn()
	return nil
}

// endSession stops the game and shows the result
func (c *Controller) endSession(won bool, title string) {
	s := c.session
	if s == nil || !s.Active {
		return
	}
	s.Active = false
	c.stopLoop()

	if title == "" {
		title = TitleGameOver
		if won {
			title = TitleTargetReached
		}
	}

	c.logger.Info("Session ended",
		zap.Bool("won", won),
		zap.String("title", title),
		zap.Int("score", s.Score),
		zap.Int("matched", s.Matched),
		zap.Int("missed", s.Missed),
	)

	c.surface.HidePanel(PanelMenu)
	c.surface.ShowResult(Result{
		Won:     won,
		Title:   title,
		Score:   s.Score,
		Matched: s.Matched,
		Missed:  s.Missed,
	})
	c.surface.ShowPanel(PanelGameOver)
}

// TeardownToMenu discards the session and shows the main menu. Idempotent.
func (c *Controller) TeardownToMenu() {
	c.discard()
	c.surface.HidePanel(PanelGameOver)
	c.surface.HidePanel(PanelExitConfirm)
	c.surface.ShowPanel(PanelMenu)
}

// discard cancels the loop, removes the bubble and drops the session
func (c *Controller) discard() {
	c.stopLoop()
	if c.session != nil && c.session.Bubble != nil {
		c.surface.RemoveBubble()
	}
	c.session = nil
	c.surface.HidePanel(PanelContinue)
}

// Active reports whether a session is being played
func (c *Controller) Active() bool {
	return c.session != nil && c.session.Active
}

// Paused reports whether the current bubble is revealed and awaiting continue
func (c *Controller) Paused() bool {
	return c.session != nil && c.session.Paused
}

// MenuOpen reports whether the exit confirmation is open
func (c *Controller) MenuOpen() bool {
	return c.session != nil && c.session.MenuOpen
}

// Score returns the current or final score
func (c *Controller) Score() int {
	if c.session == nil {
		return 0
	}
	return c.session.Score
}

// Remaining returns how many words have not been spawned yet
func (c *Controller) Remaining() int {
	if c.session == nil {
		return 0
	}
	return len(c.session.Remaining)
}

// Bubble returns a copy of the live bubble
func (c *Controller) Bubble() (domain.Bubble, bool) {
	if c.session == nil || c.session.Bubble == nil {
		return domain.Bubble{}, false
	}
	return *c.session.Bubble, true
}

// Target returns the score that wins a session
func (c *Controller) Target() int {
	return c.target
}
