package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/starfield/internal/starfield"
)

func TestFirstFrameAt(t *testing.T) {
	series := []float64{0, 1, 1, 2, 3, 3}
	assert.Equal(t, 4, firstFrameAt(series, 2))
	assert.Equal(t, 1, firstFrameAt(series, 0))
	assert.Equal(t, -1, firstFrameAt(series, 9))
	assert.Equal(t, -1, firstFrameAt(nil, 1))
}

func TestRunOnceKeepsInvariants(t *testing.T) {
	p := starfield.DefaultParams()
	p.ParticleLimit = 40
	opts := options{
		frames:  600,
		width:   640,
		height:  480,
		pointer: true,
		params:  p,
	}

	rs := runOnce(1, 7, opts)

	require.Len(t, rs.population, 600)
	assert.Equal(t, 40, rs.peak)
	assert.Zero(t, rs.violations)
	assert.Zero(t, rs.overLimit)
	assert.Zero(t, rs.tailErrors)
	assert.Equal(t, rs.final, rs.spawned-rs.removed)
}

func TestRecordCountsOverLimit(t *testing.T) {
	sim := starfield.NewSimulation(100, 100, starfield.Params{}, starfield.NewSeededRNG(1))
	var rs runStats
	rs.record(starfield.Stats{Population: 3, Spawned: 1, Bounces: 2}, sim, starfield.Params{ParticleLimit: 2})

	assert.Equal(t, 1, rs.overLimit)
	assert.Equal(t, 3, rs.peak)
	assert.Equal(t, 1, rs.spawned)
	assert.Equal(t, 2, rs.bounces)
}
