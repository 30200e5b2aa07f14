package domain

// Difficulty is a named preset of fall speed and points per correct answer
type Difficulty struct {
	Key    string
	Name   string
	Speed  float64 // logical pixels per frame
	Points int
}

// Difficulty keys
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

var difficulties = []Difficulty{
	{Key: DifficultyEasy, Name: "Easy", Speed: 0.6, Points: 50},
	{Key: DifficultyNormal, Name: "Normal", Speed: 1.5, Points: 100},
	{Key: DifficultyHard, Name: "Hard", Speed: 3.0, Points: 200},
}

// Difficulties returns the presets ordered from easiest to hardest
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// DifficultyByKey looks up a preset
func DifficultyByKey(key string) (Difficulty, bool) {
	for _, d := range difficulties {
		if d.Key == key {
			return d, true
		}
	}
	return Difficulty{}, false
}
