package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator generates a short falling "pew" for gunshots.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a chirp that sweeps from one frequency to another
// over 90ms.
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(time.Millisecond * 90),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress

		// Integrate the phase so the sweep has no clicks
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := 1 - progress
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// fanfareNotes is a rising major arpeggio, in Hz.
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.5}

// FanfareGenerator plays a rising arpeggio when the player escapes.
type FanfareGenerator struct {
	sr      beep.SampleRate
	perNote int
	pos     int
}

// NewFanfareGenerator creates an escape fanfare generator
func NewFanfareGenerator(sr beep.SampleRate) *FanfareGenerator {
	return &FanfareGenerator{
		sr:      sr,
		perNote: sr.N(time.Millisecond * 180),
	}
}

func (g *FanfareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.pos / g.perNote
		if note >= len(fanfareNotes) {
			note = len(fanfareNotes) - 1
		}
		notePos := g.pos % g.perNote
		t := float64(g.pos) / float64(g.sr)

		// Each note decays before the next one starts
		envelope := math.Exp(-float64(notePos) / float64(g.perNote) * 3)
		freq := fanfareNotes[note]
		sample := 0.2 * envelope * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FanfareGenerator) Err() error {
	return nil
}

// DroneGenerator generates the background loop: a low pulsing hum that
// never ends.
type DroneGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int
}

// NewDroneGenerator creates a drone with a 1.2 second pulse.
func NewDroneGenerator(sr beep.SampleRate) *DroneGenerator {
	return &DroneGenerator{
		sr:     sr,
		period: sr.N(time.Millisecond * 1200),
	}
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos%g.period) / float64(g.sr)
		cyclePos := float64(g.pos%g.period) / float64(g.period)

		pulse := 0.5 + 0.5*math.Sin(cyclePos*2*math.Pi)
		base := math.Sin(2*math.Pi*55*t) + 0.5*math.Sin(2*math.Pi*82.5*t)
		sample := 0.06 * pulse * base

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error {
	return nil
}
