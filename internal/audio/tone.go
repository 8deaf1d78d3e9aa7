package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Chime describes a short rising square-wave tone.
// Frequency sweeps exponentially from StartHz to EndHz and amplitude decays
// exponentially from StartGain to EndGain over Duration.
type Chime struct {
	Duration  time.Duration
	StartHz   float64
	EndHz     float64
	StartGain float64
	EndGain   float64
}

// sweepSquare is a square oscillator with an exponential frequency sweep.
type sweepSquare struct {
	startHz, endHz float64
	phase          float64
	position       int
	total          int
	rate           beep.SampleRate
}

// NewSweepSquare returns a finite square-wave streamer sweeping startHz → endHz.
func NewSweepSquare(startHz, endHz float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweepSquare{
		startHz: startHz,
		endHz:   endHz,
		total:   rate.N(duration),
		rate:    rate,
	}
}

func (o *sweepSquare) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		val := 1.0
		if o.phase >= 0.5 {
			val = -1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.startHz * math.Pow(o.endHz/o.startHz, progress)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweepSquare) Err() error { return nil }

// expDecay scales a stream by a gain that ramps exponentially from start to end.
type expDecay struct {
	streamer   beep.Streamer
	start, end float64
	position   int
	total      int
}

// NewExpDecay wraps s with an exponential amplitude ramp over duration.
// Gains must be positive.
func NewExpDecay(s beep.Streamer, startGain, endGain float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &expDecay{
		streamer: s,
		start:    startGain,
		end:      endGain,
		total:    rate.N(duration),
	}
}

func (e *expDecay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		progress := 1.0
		if e.total > 0 {
			progress = math.Min(float64(e.position)/float64(e.total), 1)
		}
		gain := e.start * math.Pow(e.end/e.start, progress)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *expDecay) Err() error { return e.streamer.Err() }

// withVolume applies a linear volume. math.Log2(0) is -Inf, so 0 is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Streamer builds the chime pipeline at the given sample rate and volume.
func (c Chime) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweepSquare(c.StartHz, c.EndHz, c.Duration, rate)
	shaped := NewExpDecay(osc, c.StartGain, c.EndGain, c.Duration, rate)
	return withVolume(shaped, volume)
}

// Render synthesizes the chime into interleaved stereo float32 little-endian PCM,
// the layout expected by ebiten's NewPlayerF32FromBytes.
func (c Chime) Render(rate beep.SampleRate, volume float64) []byte {
	return RenderF32(c.Streamer(rate, volume), rate.N(c.Duration))
}

// RenderF32 drains at most maxFrames frames from s into float32 LE stereo PCM.
func RenderF32(s beep.Streamer, maxFrames int) []byte {
	out := make([]byte, 0, maxFrames*8)
	buf := make([][2]float64, 512)
	remaining := maxFrames

	for remaining > 0 {
		chunk := buf
		if remaining < len(chunk) {
			chunk = chunk[:remaining]
		}
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(chunk[i][0])))
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(chunk[i][1])))
		}
		remaining -= n
		if !ok || n == 0 {
			break
		}
	}
	return out
}
