// Package sound plays the phase-completion chime. The chime is a
// short generated two-tone sequence, so the binary ships no audio
// assets. Playback is asynchronous and best-effort; errors never
// reach the caller.
package sound

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate beep.SampleRate = 44100

// Player owns the speaker. The zero value is silent; NewPlayer returns
// an audible one when an audio device is available.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. If the audio device cannot be
// opened the returned player is silent rather than an error; sound is
// strictly best-effort.
func NewPlayer() *Player {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio disabled: failed to initialize speaker: %v", err)
		return &Player{}
	}
	return &Player{enabled: true}
}

// NewSilentPlayer returns a player that ignores Chime calls. Used for
// --no-sound and in tests.
func NewSilentPlayer() *Player { return &Player{} }

// Chime plays a short ascending two-tone chime and returns
// immediately.
func (p *Player) Chime() {
	if p == nil || !p.enabled {
		return
	}
	speaker.Play(beep.Seq(
		tone(660, 150*time.Millisecond),
		tone(880, 250*time.Millisecond),
	))
}

// tone returns a fixed-length sine streamer, or silence of the same
// length if the generator rejects the frequency.
func tone(freq int, d time.Duration) beep.Streamer {
	s, err := generators.SinTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), s)
}
