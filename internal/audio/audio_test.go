package audio

import (
	"testing"
	"time"

	"wordfall/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSamples(t *testing.T, freq float64, d time.Duration) int {
	t.Helper()

	s, err := tone(sampleRate, freq, d)
	require.NoError(t, err)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestTone_Length(t *testing.T) {
	assert.Equal(t, sampleRate.N(hitDuration), countSamples(t, hitFreq, hitDuration))
	assert.Equal(t, sampleRate.N(missDuration), countSamples(t, missFreq, missDuration))
}

func TestTone_InvalidFrequency(t *testing.T) {
	_, err := tone(sampleRate, float64(sampleRate), hitDuration)
	assert.Error(t, err)
}

func TestPlayer_SilentWhenNotReady(t *testing.T) {
	p := &Player{logger: testutil.NewTestLogger()}

	assert.False(t, p.Ready())
	assert.NotPanics(t, func() {
		p.Hit()
		p.Miss()
		p.Close()
	})
}
