package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Tone is an endless sine voice gliding from one frequency to another over
// its first second, shaped by an exponential decay.
type Tone struct {
	sr        beep.SampleRate
	from, to  float64 // Hz
	decay     float64 // Envelope rate, 1/s
	amp       float64
	Harmonics int // Extra odd harmonics for a harsher sound

	pos   int
	phase float64
}

// NewTone creates a tone generator.
func NewTone(sr beep.SampleRate, from, to, decay, amp float64) *Tone {
	return &Tone{sr: sr, from: from, to: to, decay: decay, amp: amp}
}

// Stream fills samples. It never runs out; wrap it in beep.Take.
func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(g.sr)
	for i := range samples {
		t := float64(g.pos) / rate
		glide := math.Min(t, 1)
		freq := g.from + (g.to-g.from)*glide

		g.phase += 2 * math.Pi * freq / rate
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		v := math.Sin(g.phase)
		for h := 1; h <= g.Harmonics; h++ {
			k := float64(2*h + 1)
			v += math.Sin(k*g.phase) / k
		}

		// Short attack avoids a click at the start.
		attack := math.Min(t/0.005, 1)
		sample := g.amp * attack * math.Exp(-g.decay*t) * v

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *Tone) Err() error {
	return nil
}
