package starfield

// Params are the knobs the shell may change between frames.
type Params struct {
	ParticleLimit  int     // population target
	TailLength     int     // history entries kept per particle
	MouseFollow    bool    // orbit-seek the pointer and spawn at it
	SpeedScalar    float64 // scales the orbit force
	Mute           bool    // suppress tone intents
	SpawnFrequency int     // frames between spawns while below target
	Decay          bool    // drag/decay sub-step
	DeathColor     string  // recolour on entering the death state; empty keeps the colour
}

// DefaultParams returns the values used on start-up.
func DefaultParams() Params {
	return Params{
		ParticleLimit:  300,
		TailLength:     8,
		MouseFollow:    true,
		SpeedScalar:    1.0,
		Mute:           true,
		SpawnFrequency: 2,
	}
}

// Normalize clamps every field into its valid range.
func (p Params) Normalize() Params {
	if p.ParticleLimit < 0 {
		p.ParticleLimit = 0
	}
	if p.TailLength < 0 {
		p.TailLength = 0
	}
	if p.SpeedScalar < 0 {
		p.SpeedScalar = 0
	}
	if p.SpawnFrequency < 1 {
		p.SpawnFrequency = 1
	}
	return p
}
