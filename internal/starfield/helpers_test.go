package starfield

// fixedSource replays vals in a loop.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

// always returns an RNG whose every Chance succeeds and every Uniform
// returns its lower bound.
func always() *RNG {
	return NewRNG(&fixedSource{vals: []float64{0}})
}

// never returns an RNG whose every Chance fails.
func never() *RNG {
	return NewRNG(&fixedSource{vals: []float64{0.999999}})
}

func testParticle() *Particle {
	return &Particle{
		Color:    "#4b45da",
		Size:     Vec{X: 4, Y: 4},
		Point:    Vec{X: 100, Y: 100},
		Mass:     3,
		Drag:     3 * 0.0001,
		MaxSpeed: 2.5,
		Death:    100,
		MaxSize:  60,
	}
}
