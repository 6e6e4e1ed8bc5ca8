package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformStaysInRange(t *testing.T) {
	rng := NewSeededRNG(7)
	for i := 0; i < 10000; i++ {
		v := rng.Uniform(-3, 5)
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, 5.0)
	}
}

func TestUniformIsRoughlyUniform(t *testing.T) {
	rng := NewSeededRNG(42)
	const (
		samples = 100000
		buckets = 10
	)
	var counts [buckets]int
	for i := 0; i < samples; i++ {
		v := rng.Uniform(0, buckets)
		counts[int(v)]++
	}
	want := float64(samples) / buckets
	for i, c := range counts {
		assert.InDelta(t, want, float64(c), want*0.05, "bucket %d", i)
	}
}

func TestUniformDegenerateBounds(t *testing.T) {
	rng := NewSeededRNG(1)
	assert.Equal(t, 2.5, rng.Uniform(2.5, 2.5))
	assert.Equal(t, 4.0, rng.Uniform(4, 1))
}

func TestUniformNeverReturnsMax(t *testing.T) {
	rng := NewRNG(&fixedSource{vals: []float64{0.9999999999999999}})
	v := rng.Uniform(0, 1e300)
	assert.Less(t, v, 1e300)
}

func TestChance(t *testing.T) {
	assert.True(t, always().Chance(0.3))
	assert.False(t, never().Chance(0.3))
	assert.False(t, always().Chance(0))
}

func TestElement(t *testing.T) {
	rng := NewSeededRNG(3)

	_, ok := Element(rng, []int(nil))
	assert.False(t, ok)

	v, ok := Element(rng, []string{"only"})
	require.True(t, ok)
	assert.Equal(t, "only", v)

	seen := map[int]bool{}
	list := []int{1, 2, 3, 4}
	for i := 0; i < 1000; i++ {
		v, ok := Element(rng, list)
		require.True(t, ok)
		seen[v] = true
	}
	assert.Len(t, seen, len(list))
}

func TestColorComesFromPalette(t *testing.T) {
	rng := NewSeededRNG(9)
	p := Palette()
	for i := 0; i < 200; i++ {
		assert.Contains(t, p, rng.Color())
	}
}

func TestPaletteIsACopy(t *testing.T) {
	p := Palette()
	p[0] = "#000000"
	assert.NotEqual(t, "#000000", Palette()[0])
}
