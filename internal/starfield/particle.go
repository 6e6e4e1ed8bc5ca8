package starfield

import "math"

// Particle tuning. Sizes are in canvas pixels, lifetimes in age ticks.
const (
	// MaximumParticleSize bounds death-state growth and is the edge margin
	// for random spawns.
	MaximumParticleSize = 80.0

	// LargeParticleThreshold splits size-derived mass from the fixed small mass.
	LargeParticleThreshold = 6.0

	SmallParticleChance = 0.97
	ProtostarChance     = 0.05

	// GracePeriod is how many age ticks a particle spends growing after Death.
	GracePeriod = 200

	// GrowthRate is the per-application size multiplier in the death state
	// and in the decay sub-step.
	GrowthRate = 1.003
)

// Vec is a 2D vector used for positions, extents and velocities.
type Vec struct {
	X, Y float64
}

// axis returns a pointer to component 0 (X) or 1 (Y).
func (v *Vec) axis(i int) *float64 {
	if i == 0 {
		return &v.X
	}
	return &v.Y
}

// Particle is a single star.
type Particle struct {
	Color     string
	Direction Vec
	Size      Vec
	Point     Vec

	Mass     float64
	Drag     float64
	MaxSpeed float64

	Age     int
	Death   int
	MaxSize float64

	// History holds past points, oldest first. Only the renderer reads it.
	History []Vec
}

// Dying reports whether the particle has passed its death threshold.
func (p *Particle) Dying() bool {
	return p.Age > p.Death
}

// Expired reports whether the particle should leave the collection.
func (p *Particle) Expired() bool {
	return p.Age > p.Death+GracePeriod
}

// Large reports whether either axis exceeds LargeParticleThreshold.
func (p *Particle) Large() bool {
	return p.Size.X > LargeParticleThreshold || p.Size.Y > LargeParticleThreshold
}

// NewParticle builds a star. When the pointer has been seen and follow mode
// is on it spawns at spawn, otherwise somewhere at least
// MaximumParticleSize away from the canvas edges.
func NewParticle(rng *RNG, spawn Vec, spawnKnown, follow bool, canvas Vec) *Particle {
	p := &Particle{
		Color: rng.Color(),
		Size:  randomSize(rng),
		Direction: Vec{
			X: rng.Uniform(-8.5, 8.5) * rng.Uniform(-0.4, 0.4),
			Y: rng.Uniform(-8.5, 8.5) * rng.Uniform(-0.4, 0.4),
		},
	}

	// Protostars can outgrow a small window.
	p.Size = fitSize(p.Size, canvas)

	if spawnKnown && follow {
		p.Point = Vec{
			X: fit(spawn.X, p.Size.X, canvas.X),
			Y: fit(spawn.Y, p.Size.Y, canvas.Y),
		}
	} else {
		p.Point = Vec{
			X: randomCoord(rng, p.Size.X, canvas.X),
			Y: randomCoord(rng, p.Size.Y, canvas.Y),
		}
	}

	if p.Large() {
		avg := (p.Size.X + p.Size.Y) / 2
		p.Mass = avg * rng.Uniform(0.4, 0.65)
	} else {
		p.Mass = rng.Uniform(2.5, 3.5)
	}
	p.Drag = p.Mass * rng.Uniform(0.00005, 0.0001)
	p.MaxSpeed = rng.Uniform(p.Mass*0.7, p.Mass*0.9)

	p.Death = int(rng.Uniform(12, 150) * 100)
	p.MaxSize = rng.Uniform(0.7*MaximumParticleSize, MaximumParticleSize)
	// Protostars can be born bigger than the drawn cap; growth never shrinks.
	p.MaxSize = math.Max(p.MaxSize, math.Max(p.Size.X, p.Size.Y))

	return p
}

func randomSize(rng *RNG) Vec {
	var s Vec
	if rng.Chance(SmallParticleChance) {
		s = Vec{
			X: rng.Uniform(3, 5) * rng.Uniform(0.7, 1.0),
			Y: rng.Uniform(3, 5) * rng.Uniform(0.7, 1.0),
		}
	} else {
		s = Vec{
			X: rng.Uniform(6, 9) * rng.Uniform(1.1, 2.2),
			Y: rng.Uniform(6, 9) * rng.Uniform(1.1, 2.2),
		}
	}
	if rng.Chance(ProtostarChance) && s.X > 10 && s.Y > 10 {
		k := rng.Uniform(5, 10)
		s.X *= k
		s.Y *= k
	}
	return s
}

// randomCoord keeps the point MaximumParticleSize from both edges when the
// canvas allows it and otherwise just keeps the rectangle on the canvas.
func randomCoord(rng *RNG, size, extent float64) float64 {
	lo := MaximumParticleSize
	hi := extent - MaximumParticleSize - size
	if hi > lo {
		return rng.Uniform(lo, hi)
	}
	return fit(extent/2-size/2, size, extent)
}

// fit clamps a coordinate so [v, v+size] lies within [0, extent].
func fit(v, size, extent float64) float64 {
	if v+size > extent {
		v = extent - size
	}
	if v < 0 {
		v = 0
	}
	return v
}
