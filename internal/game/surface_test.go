package game

import "wordfall/internal/domain"

// recordingSurface is a headless Surface that remembers what it was told
type recordingSurface struct {
	viewport domain.Viewport

	bubble  *domain.Bubble
	shown   []domain.Bubble
	moves   int
	reveals int
	removes int

	score  int
	target int
	mode   string

	panels map[Panel]bool
	result Result

	input   string
	clears  int
	focuses int
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{
		viewport: domain.Viewport{Width: 800, Height: 600},
		panels:   map[Panel]bool{PanelMenu: true},
	}
}

func (s *recordingSurface) Viewport() domain.Viewport { return s.viewport }

func (s *recordingSurface) ShowBubble(b domain.Bubble) {
	s.bubble = &b
	s.shown = append(s.shown, b)
}

func (s *recordingSurface) MoveBubble(b domain.Bubble) {
	s.bubble = &b
	s.moves++
}

func (s *recordingSurface) RevealBubble(b domain.Bubble) {
	s.bubble = &b
	s.reveals++
}

func (s *recordingSurface) RemoveBubble() {
	s.bubble = nil
	s.removes++
}

func (s *recordingSurface) SetScore(score int)  { s.score = score }
func (s *recordingSurface) SetTarget(target int) { s.target = target }
func (s *recordingSurface) SetMode(name string)  { s.mode = name }

func (s *recordingSurface) ShowPanel(p Panel)   { s.panels[p] = true }
func (s *recordingSurface) HidePanel(p Panel)   { s.panels[p] = false }
func (s *recordingSurface) ShowResult(r Result) { s.result = r }

func (s *recordingSurface) ClearInput() {
	s.input = ""
	s.clears++
}

func (s *recordingSurface) FocusInput() { s.focuses++ }

// countingSounds records cues
type countingSounds struct {
	hits   int
	misses int
}

func (c *countingSounds) Hit()  { c.hits++ }
func (c *countingSounds) Miss() { c.misses++ }
