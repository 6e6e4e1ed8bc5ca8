package starfield

import (
	"math/rand"
)

// Float64Source is the only randomness the simulation needs. *rand.Rand
// satisfies it; tests substitute fixed sequences.
type Float64Source interface {
	Float64() float64
}

// palette holds the star colours. A particle keeps its colour for life unless
// a death colour is configured.
var palette = []string{
	"#4b45da",
	"#ea1d76",
	"#290088",
	"#00c18b",
	"#ff9e16",
	"#00afaa",
	"#26cad3",
}

// Palette returns a copy of the star colours.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// RNG draws every random decision the simulation makes.
type RNG struct {
	src Float64Source
}

func NewRNG(src Float64Source) *RNG {
	return &RNG{src: src}
}

// NewSeededRNG returns an RNG backed by math/rand with a fixed seed.
func NewSeededRNG(seed int64) *RNG {
	return NewRNG(rand.New(rand.NewSource(seed))) // #nosec G404 -- cosmetic only
}

// Uniform returns a value in [min, max). When max <= min it returns min.
func (r *RNG) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	v := min + r.src.Float64()*(max-min)
	// Rounding can land exactly on max for very wide ranges.
	if v >= max {
		return min
	}
	return v
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.src.Float64() < p
}

// Index returns an int in [0, n), or 0 when n <= 0.
func (r *RNG) Index(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Color picks one palette entry uniformly.
func (r *RNG) Color() string {
	c, _ := Element(r, palette)
	return c
}

// Element returns a uniformly selected element of list. The second result
// is false only when list is empty.
func Element[T any](r *RNG, list []T) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}
	return list[r.Index(len(list))], true
}
