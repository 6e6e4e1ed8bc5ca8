package starfield

import "math"

// State is the driver's pointer state.
type State int

const (
	// Idle: no pointer seen yet, particles spawn at random locations.
	Idle State = iota
	// Tracking: the pointer is the spawn point and orbit target.
	Tracking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// Tone pitch range. Heavier stars boop lower.
const (
	ToneBaseHz   = 660.0
	ToneMinHz    = 110.0
	ToneMaxHz    = 1760.0
	toneRefMass  = 3.0
	toneDuration = 0.04
)

// Rect is a request to fill an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
	Color      string
	Alpha      float64 // 1 is opaque
}

// Tone is a request to play a short tone.
type Tone struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Pan       float64 // -1 left .. 1 right
}

// Stats summarises one frame.
type Stats struct {
	Frame      int
	Population int
	Spawned    int
	Removed    int
	Bounces    int
}

// Frame holds everything the shell must do for one frame. It is reused
// across ticks; copy what must outlive the next Tick.
type Frame struct {
	Clear bool
	Rects []Rect
	Tones []Tone
	Stats Stats
}

// Simulation owns all mutable state of the star field.
type Simulation struct {
	canvas    Vec
	rng       *RNG
	params    Params
	particles []*Particle

	spawn      Vec
	spawnKnown bool

	frameCount int
	frame      Frame
}

func NewSimulation(width, height float64, params Params, rng *RNG) *Simulation {
	return &Simulation{
		canvas: Vec{X: width, Y: height},
		rng:    rng,
		params: params.Normalize(),
	}
}

// Params returns the current parameters.
func (s *Simulation) Params() Params {
	return s.params
}

// SetParams replaces the parameters. They take effect on the next Tick.
func (s *Simulation) SetParams(p Params) {
	s.params = p.Normalize()
}

// Particles returns the live collection in draw order. Callers must not
// keep it across ticks.
func (s *Simulation) Particles() []*Particle {
	return s.particles
}

// Canvas returns the current surface extent.
func (s *Simulation) Canvas() Vec {
	return s.canvas
}

// State reports whether a pointer has been observed.
func (s *Simulation) State() State {
	if s.spawnKnown {
		return Tracking
	}
	return Idle
}

// ObservePointer records the latest pointer position.
func (s *Simulation) ObservePointer(x, y float64) {
	s.spawn = Vec{X: x, Y: y}
	s.spawnKnown = true
}

// SpawnPoint returns the last pointer position and whether one is known.
func (s *Simulation) SpawnPoint() (Vec, bool) {
	return s.spawn, s.spawnKnown
}

// Resize changes the canvas extent and pulls overhanging particles back in.
func (s *Simulation) Resize(width, height float64) {
	s.canvas = Vec{X: width, Y: height}
	for _, p := range s.particles {
		contain(p, s.canvas)
	}
}

// Add inserts an externally built particle at the end of the draw order.
func (s *Simulation) Add(p *Particle) {
	s.particles = append(s.particles, p)
}

// Populate spawns particles until the population target is reached.
func (s *Simulation) Populate() {
	for len(s.particles) < s.params.ParticleLimit {
		s.particles = append(s.particles, s.newParticle())
	}
}

func (s *Simulation) newParticle() *Particle {
	return NewParticle(s.rng, s.spawn, s.spawnKnown, s.params.MouseFollow, s.canvas)
}

// Tick advances the simulation one frame and returns the drawing and tone
// intents for it.
func (s *Simulation) Tick() *Frame {
	s.frameCount++
	f := &s.frame
	f.Clear = true
	f.Rects = f.Rects[:0]
	f.Tones = f.Tones[:0]
	f.Stats = Stats{Frame: s.frameCount}

	env := Environment{
		Canvas:      s.canvas,
		Target:      s.spawn,
		TargetKnown: s.spawnKnown,
		Follow:      s.params.MouseFollow,
		SpeedScalar: s.params.SpeedScalar,
		Decay:       s.params.Decay,
	}

	kept := s.particles[:0]
	for _, p := range s.particles {
		if n := Step(p, env, s.rng); n > 0 {
			f.Stats.Bounces += n
			if !s.params.Mute {
				for i := 0; i < n; i++ {
					f.Tones = append(f.Tones, s.boop(p))
				}
			}
		}

		f.Rects = append(f.Rects, Rect{
			X:     p.Point.X,
			Y:     p.Point.Y,
			W:     p.Size.X,
			H:     p.Size.Y,
			Color: p.Color,
			Alpha: 1,
		})
		f.Rects = appendTrail(f.Rects, p)

		if !Age(p, s.rng, s.params.DeathColor) {
			f.Stats.Removed++
			continue
		}
		contain(p, s.canvas)
		Remember(p, s.params.TailLength)
		kept = append(kept, p)
	}
	clear(s.particles[len(kept):])
	s.particles = kept

	s.regulate(f)
	f.Stats.Population = len(s.particles)
	return f
}

// regulate spawns one particle per cadence tick while below target and
// drops the oldest excess when above it.
func (s *Simulation) regulate(f *Frame) {
	limit := s.params.ParticleLimit
	if excess := len(s.particles) - limit; excess > 0 {
		n := copy(s.particles, s.particles[excess:])
		clear(s.particles[n:])
		s.particles = s.particles[:n]
		f.Stats.Removed += excess
		return
	}
	if len(s.particles) < limit && s.frameCount%s.params.SpawnFrequency == 0 {
		s.particles = append(s.particles, s.newParticle())
		f.Stats.Spawned++
	}
}

// boop builds the tone for one reflection of p.
func (s *Simulation) boop(p *Particle) Tone {
	hz := ToneBaseHz
	if p.Mass > 0 {
		hz = ToneBaseHz * toneRefMass / p.Mass
	}
	pan := 0.0
	if s.canvas.X > 0 {
		pan = clamp((p.Point.X+p.Size.X/2)/s.canvas.X*2-1, -1, 1)
	}
	return Tone{
		Frequency: clamp(hz, ToneMinHz, ToneMaxHz),
		Duration:  toneDuration,
		Pan:       pan,
	}
}

// InBounds reports whether p's rectangle lies on a canvas of the given size.
func InBounds(p *Particle, canvas Vec) bool {
	const eps = 1e-9
	return p.Point.X >= -eps && p.Point.Y >= -eps &&
		p.Point.X+p.Size.X <= canvas.X+eps &&
		p.Point.Y+p.Size.Y <= canvas.Y+eps &&
		!math.IsNaN(p.Point.X) && !math.IsNaN(p.Point.Y)
}
