package game

import "wordfall/internal/domain"

// Panel is an overlay the surface can show or hide
type Panel int

const (
	PanelMenu Panel = iota
	PanelGameOver
	PanelExitConfirm
	PanelContinue // "press Enter to continue" hint under a revealed bubble
)

func (p Panel) String() string {
	switch p {
	case PanelMenu:
		return "menu"
	case PanelGameOver:
		return "game-over"
	case PanelExitConfirm:
		return "exit-confirm"
	case PanelContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// Result is what the game-over panel displays
type Result struct {
	Won     bool
	Title   string
	Score   int
	Matched int
	Missed  int
}

// Surface renders the game and owns the answer field
type Surface interface {
	Viewport() domain.Viewport

	ShowBubble(b domain.Bubble)
	MoveBubble(b domain.Bubble)
	RevealBubble(b domain.Bubble)
	RemoveBubble()

	SetScore(score int)
	SetTarget(target int)
	SetMode(name string)

	ShowPanel(p Panel)
	HidePanel(p Panel)
	ShowResult(r Result)

	ClearInput()
	FocusInput()
}

// Sounds receives audible cues
type Sounds interface {
	Hit()
	Miss()
}

type silent struct{}

func (silent) Hit()  {}
func (silent) Miss() {}
