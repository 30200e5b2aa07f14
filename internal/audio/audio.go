// Package audio plays short tones for game events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(44100)

	hitFreq      = 880
	hitDuration  = 50 * time.Millisecond
	missFreq     = 220
	missDuration = 150 * time.Millisecond
)

// Player plays hit and miss cues through the system speaker
type Player struct {
	ready  bool
	logger *zap.Logger
}

// NewPlayer initialises the speaker. Failure is non-fatal: the player stays silent.
func NewPlayer(logger *zap.Logger) *Player {
	p := &Player{logger: logger}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("Audio initialization failed, continuing without sound", zap.Error(err))
		return p
	}
	p.ready = true
	return p
}

// Ready reports whether sound can be played
func (p *Player) Ready() bool {
	return p.ready
}

// Hit plays the correct-answer cue
func (p *Player) Hit() {
	p.play(hitFreq, hitDuration)
}

// Miss plays the missed-word cue
func (p *Player) Miss() {
	p.play(missFreq, missDuration)
}

// Close releases the speaker
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

func (p *Player) play(freq float64, d time.Duration) {
	if !p.ready {
		return
	}
	s, err := tone(sampleRate, freq, d)
	if err != nil {
		p.logger.Debug("Failed to build tone", zap.Float64("freq", freq), zap.Error(err))
		return
	}
	speaker.Play(s)
}

// tone returns a sine wave of the given frequency lasting d
func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(d), sine), nil
}
