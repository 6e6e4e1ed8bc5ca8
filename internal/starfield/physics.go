package starfield

import "math"

const (
	decayChance = 0.2
	decayFactor = 0.995
)

// Environment is what a physics step reads besides the particle itself.
type Environment struct {
	Canvas      Vec
	Target      Vec
	TargetKnown bool
	Follow      bool
	SpeedScalar float64
	Decay       bool
}

// Step advances p by one frame and returns how many axes reflected.
func Step(p *Particle, env Environment, rng *RNG) int {
	if env.Follow && env.TargetKnown {
		steer(p, env.Target, env.SpeedScalar)
	}

	bounces := 0
	for a := 0; a < 2; a++ {
		if move(p, a, *env.Canvas.axis(a)) {
			bounces++
		}
	}

	if env.Decay && rng.Chance(decayChance) {
		decay(p)
		contain(p, env.Canvas)
	}
	return bounces
}

// steer pulls the velocity toward target proportionally to the distance,
// never past MaxSpeed on either axis.
func steer(p *Particle, target Vec, speed float64) {
	for a := 0; a < 2; a++ {
		d := p.Direction.axis(a)
		delta := *target.axis(a) - *p.Point.axis(a)
		*d = clamp(*d+delta*p.Drag*speed, -p.MaxSpeed, p.MaxSpeed)
	}
}

// move applies the velocity on one axis if the rectangle stays inside
// [0, extent]. Otherwise the velocity is reflected and the point is left
// where it is. It reports whether the axis bounced.
//
// An axis with less free room than one step of travel would bounce on
// every frame, so it holds still instead.
func move(p *Particle, a int, extent float64) bool {
	pos := p.Point.axis(a)
	d := p.Direction.axis(a)
	room := extent - *p.Size.axis(a)
	if math.Abs(*d) > room {
		return false
	}
	next := *pos + *d
	if next >= 0 && next <= room {
		*pos = next
		return false
	}
	*d = -*d
	return true
}

// decay slows the particle a little and lets it grow toward MaxSize.
func decay(p *Particle) {
	p.Direction.X *= decayFactor
	p.Direction.Y *= decayFactor
	grow(p)
}

// contain shifts p back onto the canvas after it grew past an edge. A
// rectangle wider than the canvas is cut down to the canvas first.
func contain(p *Particle, canvas Vec) {
	p.Size = fitSize(p.Size, canvas)
	p.Point.X = fit(p.Point.X, p.Size.X, canvas.X)
	p.Point.Y = fit(p.Point.Y, p.Size.Y, canvas.Y)
}

func fitSize(size, canvas Vec) Vec {
	return Vec{
		X: math.Min(size.X, math.Max(canvas.X, 0)),
		Y: math.Min(size.Y, math.Max(canvas.Y, 0)),
	}
}

func grow(p *Particle) {
	p.Size.X = clamp(p.Size.X*GrowthRate, 0, p.MaxSize)
	p.Size.Y = clamp(p.Size.Y*GrowthRate, 0, p.MaxSize)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
