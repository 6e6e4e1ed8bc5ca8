package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeRemovesAfterGracePeriod(t *testing.T) {
	p := testParticle()
	p.Death = 100
	rng := always()

	for p.Age < p.Death+GracePeriod {
		require.True(t, Age(p, rng, ""), "removed early at age %d", p.Age)
	}
	require.Equal(t, 300, p.Age)

	assert.False(t, Age(p, rng, ""))
	assert.Equal(t, 301, p.Age)
}

func TestAgeIsProbabilistic(t *testing.T) {
	p := testParticle()
	for i := 0; i < 50; i++ {
		require.True(t, Age(p, never(), ""))
	}
	assert.Zero(t, p.Age)

	rng := NewSeededRNG(13)
	for i := 0; i < 10000; i++ {
		Age(p, rng, "")
		if p.Dying() {
			break
		}
	}
	assert.Greater(t, p.Age, 0)
}

func TestAgeGrowthOnlyAfterDeath(t *testing.T) {
	p := testParticle()
	p.Death = 10
	rng := always()

	for p.Age < p.Death {
		Age(p, rng, "")
		require.Equal(t, Vec{X: 4, Y: 4}, p.Size)
	}

	prev := p.Size
	for Age(p, rng, "") {
		require.GreaterOrEqual(t, p.Size.X, prev.X)
		require.GreaterOrEqual(t, p.Size.Y, prev.Y)
		require.LessOrEqual(t, p.Size.X, p.MaxSize)
		require.LessOrEqual(t, p.Size.Y, p.MaxSize)
		prev = p.Size
	}
	assert.Greater(t, p.Size.X, 4.0)
}

func TestAgeGrowthClampsAtMaxSize(t *testing.T) {
	p := testParticle()
	p.Death = 0
	p.Age = 1
	p.MaxSize = 4.01
	Age(p, never(), "")
	assert.Equal(t, 4.01, p.Size.X)
	assert.Equal(t, 4.01, p.Size.Y)
}

func TestAgeDeathColor(t *testing.T) {
	p := testParticle()
	p.Age = p.Death + 1
	Age(p, never(), "#000000")
	assert.Equal(t, "#000000", p.Color)

	q := testParticle()
	q.Age = q.Death + 1
	Age(q, never(), "")
	assert.Equal(t, "#4b45da", q.Color)
}
