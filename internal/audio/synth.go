// Package audio synthesizes the game's sound effects and background loop
// as raw PCM so the browser build needs no decoded asset files.
//
// Sounds are composed as beep streamers and rendered once into 16-bit
// little-endian stereo bytes that Ebitengine's audio players accept.
package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	// bytesPerFrame 16-bit stereo
	bytesPerFrame = 4
	// maxAmplitude leaves headroom to avoid clipping when sounds overlap
	maxAmplitude = 0.8 * math.MaxInt16
	// renderChunk frames pulled from a streamer per Stream call
	renderChunk = 512
)

// encodeSample converts one sample in [-1, 1] to int16, clamping overflow.
func encodeSample(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(s * maxAmplitude)
}

// Render drains a finite streamer into 16-bit LE stereo PCM.
// An infinite streamer never returns; wrap it with beep.Take first.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, renderChunk)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			l := encodeSample(frame[0])
			r := encodeSample(frame[1])
			out = append(out, byte(l), byte(l>>8), byte(r), byte(r>>8))
		}
		if !ok {
			return out
		}
	}
}

func frames(sampleRate int, seconds float64) int {
	return int(math.Round(float64(sampleRate) * seconds))
}

// sweep is a square wave whose pitch falls linearly over n frames,
// fading out as it goes.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	n, pos   int
	phase    float64
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.n {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.n)
		g.phase += (g.from + (g.to-g.from)*t) / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		v := 1.0
		if g.phase >= 0.5 {
			v = -1
		}
		v *= 1 - t
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// rumble is low-passed noise under an exponential decay.
type rumble struct {
	rng    *rand.Rand
	alpha  float64
	prev   float64
	n, pos int
}

func (g *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.n {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.n)
		g.prev += g.alpha * (g.rng.Float64()*2 - 1 - g.prev)
		v := g.prev * 2.5 * math.Exp(-4*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *rumble) Err() error { return nil }

// pluck is a decaying sine with one octave overtone, used for each
// note of the background loop. It never ends on its own.
type pluck struct {
	sr   beep.SampleRate
	freq float64
	span int
	pos  int
}

func (g *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-3 * float64(g.pos) / float64(g.span))
		v := env * (math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*2*t))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *pluck) Err() error { return nil }

// gain scales a streamer linearly; 0 silences it.
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Laser returns a short descending square-wave sweep used for autofire.
func Laser(sampleRate int) []byte {
	n := frames(sampleRate, 0.12)
	return Render(gain(&sweep{sr: beep.SampleRate(sampleRate), from: 1400, to: 400, n: n}, 0.35))
}

// Explosion returns decaying low-passed noise. Larger duration and lower
// cutoff give a heavier blast; seed keeps the output deterministic.
func Explosion(sampleRate int, seconds, cutoff float64, seed uint64) []byte {
	g := &rumble{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		// one-pole low-pass
		alpha: cutoff / (cutoff + float64(sampleRate)/(2*math.Pi)),
		n:     frames(sampleRate, seconds),
	}
	return Render(g)
}

// musicNotes is a minor arpeggio in Hz, one note per beat.
var musicNotes = []float64{
	110.00, 130.81, 164.81, 196.00,
	98.00, 130.81, 146.83, 196.00,
	87.31, 110.00, 130.81, 174.61,
	98.00, 123.47, 146.83, 185.00,
}

// MusicLoop returns a seamless background loop built from musicNotes.
func MusicLoop(sampleRate int, bpm float64) []byte {
	if bpm <= 0 {
		bpm = 120
	}
	sr := beep.SampleRate(sampleRate)
	perNote := frames(sampleRate, 60/bpm)

	notes := make([]beep.Streamer, 0, len(musicNotes))
	for _, freq := range musicNotes {
		notes = append(notes, beep.Take(perNote, &pluck{sr: sr, freq: freq, span: perNote}))
	}
	return Render(gain(beep.Seq(notes...), 0.25))
}
