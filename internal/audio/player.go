package audio

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/starfield"
)

// Player turns tone intents into short sine boops on the default speaker.
// All voices share one mixer so overlapping bounces sum instead of queueing.
type Player struct {
	log   logrus.FieldLogger
	rate  beep.SampleRate
	mixer *beep.Mixer
	tap   *visualTap

	mu        sync.Mutex
	ready     bool
	maxVoices int
	volume    float64
}

func NewPlayer(log logrus.FieldLogger) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		log:       log,
		rate:      beep.SampleRate(config.SampleRate),
		mixer:     mixer,
		tap:       newVisualTap(mixer, config.VisualRingSize),
		maxVoices: config.MaxVoices,
		volume:    config.ToneVolume,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	bufferSize := p.rate.N(config.SpeakerBuffer)
	if err := speaker.Init(p.rate, bufferSize); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(p.tap)
	p.ready = true
	p.log.WithFields(logrus.Fields{
		"sample_rate": int(p.rate),
		"buffer":      bufferSize,
	}).Info("audio ready")
	return nil
}

// Ready reports whether Init succeeded.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// PlayTone schedules t. It is dropped silently when audio is not ready or
// too many voices are already sounding.
func (p *Player) PlayTone(t starfield.Tone) {
	if !p.Ready() {
		return
	}
	speaker.Lock()
	p.enqueue(t)
	speaker.Unlock()
}

// enqueue adds a voice to the mixer. The caller holds the speaker lock.
func (p *Player) enqueue(t starfield.Tone) bool {
	if p.mixer.Len() >= p.maxVoices {
		return false
	}
	p.mixer.Add(p.voice(t))
	return true
}

func (p *Player) voice(t starfield.Tone) beep.Streamer {
	d := time.Duration(t.Duration * float64(time.Second))
	src := newTone(p.rate, t.Frequency, d, config.ToneAttack, config.ToneRelease)
	return &effects.Pan{
		Streamer: &effects.Volume{
			Streamer: src,
			Base:     2,
			Volume:   p.volume,
		},
		Pan: t.Pan,
	}
}

// Scope returns the last n mono output samples, oldest first.
func (p *Player) Scope(n int) []float64 {
	return p.tap.snapshot(n)
}

// Close silences every voice.
func (p *Player) Close() {
	if !p.Ready() {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
