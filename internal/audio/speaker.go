package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speakerRate is the output rate used for the beep speaker.
const speakerRate = beep.SampleRate(48000)

// SpeakerPlayer plays chimes through the beep speaker.
//
// The speaker is initialized on the first Unlock. Each chime is followed by a
// callback that runs when the speaker has drained it, so the live count tracks
// real playback and never exceeds the limit.
type SpeakerPlayer struct {
	chime  Chime
	limit  int32
	volume func() float64

	once   sync.Once
	play   func(beep.Streamer)
	active atomic.Int32
}

// NewSpeakerPlayer returns a player capped at limit simultaneous chimes.
// volume is read on every chime; nil means full volume.
func NewSpeakerPlayer(chime Chime, limit int, volume func() float64) *SpeakerPlayer {
	if volume == nil {
		volume = func() float64 { return 1 }
	}
	return &SpeakerPlayer{chime: chime, limit: int32(limit), volume: volume}
}

// Unlock initializes the speaker once. Failures leave the player silent.
func (p *SpeakerPlayer) Unlock() {
	p.once.Do(func() {
		if p.play != nil {
			return
		}
		if err := speaker.Init(speakerRate, speakerRate.N(50*time.Millisecond)); err != nil {
			log.Printf("[SpeakerPlayer] Warning: speaker unavailable: %v", err)
			return
		}
		p.play = func(s beep.Streamer) { speaker.Play(s) }
		log.Printf("[SpeakerPlayer] Speaker ready (%d Hz)", speakerRate)
	})
}

// PlayScore starts a chime unless the player is locked, muted or at its limit.
func (p *SpeakerPlayer) PlayScore() bool {
	if p.play == nil {
		return false
	}
	vol := p.volume()
	if vol <= 0 {
		return false
	}

	for {
		n := p.active.Load()
		if n >= p.limit {
			return false
		}
		if p.active.CompareAndSwap(n, n+1) {
			break
		}
	}

	done := beep.Callback(func() { p.active.Add(-1) })
	p.play(beep.Seq(p.chime.Streamer(speakerRate, vol), done))
	return true
}

// Active reports how many chimes are still playing.
func (p *SpeakerPlayer) Active() int {
	return int(p.active.Load())
}

// Close stops all playback.
func (p *SpeakerPlayer) Close() {
	if p.play != nil {
		speaker.Clear()
	}
}
