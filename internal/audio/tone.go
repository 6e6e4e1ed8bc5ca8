package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine oscillator with a linear attack/release envelope.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	attack   int
	release  int
	rate     beep.SampleRate
}

// newTone returns a streamer that plays freq for d and then drains.
func newTone(rate beep.SampleRate, freq float64, d, attack, release time.Duration) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(d),
		attack:   rate.N(attack),
		release:  rate.N(release),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		val := math.Sin(2*math.Pi*t.phase) * t.envelope()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope ramps up over attack samples and down over the last release samples.
func (t *tone) envelope() float64 {
	vol := 1.0
	if t.attack > 0 && t.position < t.attack {
		vol = float64(t.position) / float64(t.attack)
	}
	if left := t.duration - t.position; t.release > 0 && left < t.release {
		vol = math.Min(vol, float64(left)/float64(t.release))
	}
	return vol
}
