package domain

// DefaultTargetScore is the score that wins a session
const DefaultTargetScore = 20000

// Session is the live state of one game from start to teardown
type Session struct {
	Score       int
	TargetScore int
	Difficulty  Difficulty
	BankKey     string
	Remaining   []WordPair
	Active      bool
	Paused      bool
	MenuOpen    bool
	Bubble      *Bubble

	Matched int
	Missed  int
}

// NewSession creates an active session over a private copy of words
func NewSession(difficulty Difficulty, bank WordBank, targetScore int) *Session {
	remaining := make([]WordPair, len(bank.Words))
	copy(remaining, bank.Words)

	return &Session{
		TargetScore: targetScore,
		Difficulty:  difficulty,
		BankKey:     bank.Key,
		Remaining:   remaining,
		Active:      true,
	}
}

// TakeWord removes and returns the pair at index i.
// Order of the remaining pairs is not preserved.
func (s *Session) TakeWord(i int) WordPair {
	last := len(s.Remaining) - 1
	pair := s.Remaining[i]
	s.Remaining[i] = s.Remaining[last]
	s.Remaining[last] = WordPair{}
	s.Remaining = s.Remaining[:last]
	return pair
}

// Award adds points for one matched word
func (s *Session) Award() {
	s.Score += s.Difficulty.Points
	s.Matched++
}

// Won reports whether the target score has been reached
func (s *Session) Won() bool {
	return s.Score >= s.TargetScore
}
