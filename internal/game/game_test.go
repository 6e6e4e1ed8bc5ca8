package game

import (
	"errors"
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/starfield"
)

type fakePlayer struct {
	initErr error
	inits   int
	tones   []starfield.Tone
}

func (f *fakePlayer) Init() error {
	f.inits++
	return f.initErr
}

func (f *fakePlayer) PlayTone(t starfield.Tone) { f.tones = append(f.tones, t) }

func (f *fakePlayer) Scope(n int) []float64 { return make([]float64, n) }

func newTestGame(t *testing.T, player TonePlayer) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 800, 600
	cfg.Params.ParticleLimit = 20

	log := logrus.New()
	log.SetOutput(io.Discard)

	sim := starfield.NewSimulation(800, 600, cfg.Params, starfield.NewSeededRNG(1))
	g := New(cfg, sim, player, log)
	g.errorf = func(string) {}
	g.dialog = func(string) (string, error) {
		t.Fatal("unexpected dialog")
		return "", nil
	}
	return g
}

func TestPerformAdjustsParams(t *testing.T) {
	g := newTestGame(t, nil)
	start := g.sim.Params()

	require.NoError(t, g.perform(actionLimitUp))
	require.NoError(t, g.perform(actionTailDown))
	require.NoError(t, g.perform(actionSpeedUp))
	require.NoError(t, g.perform(actionToggleFollow))
	require.NoError(t, g.perform(actionToggleDecay))

	p := g.sim.Params()
	assert.Equal(t, start.ParticleLimit+config.LimitStep, p.ParticleLimit)
	assert.Equal(t, start.TailLength-config.TailStep, p.TailLength)
	assert.InDelta(t, start.SpeedScalar+config.SpeedStep, p.SpeedScalar, 1e-9)
	assert.Equal(t, !start.MouseFollow, p.MouseFollow)
	assert.Equal(t, !start.Decay, p.Decay)
}

func TestPerformClampsAtZero(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 100; i++ {
		require.NoError(t, g.perform(actionLimitDown))
		require.NoError(t, g.perform(actionSpeedDown))
	}
	assert.Zero(t, g.sim.Params().ParticleLimit)
	assert.Zero(t, g.sim.Params().SpeedScalar)
}

func TestPerformQuit(t *testing.T) {
	g := newTestGame(t, nil)
	assert.ErrorIs(t, g.perform(actionQuit), ebiten.Termination)
}

func TestPerformToggleHUD(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.showHUD)
	require.NoError(t, g.perform(actionToggleHUD))
	assert.False(t, g.showHUD)
}

func TestUnmuteInitialisesAudio(t *testing.T) {
	fp := &fakePlayer{}
	g := newTestGame(t, fp)
	require.True(t, g.sim.Params().Mute)

	require.NoError(t, g.perform(actionToggleMute))
	assert.False(t, g.sim.Params().Mute)
	assert.Equal(t, 1, fp.inits)
}

func TestUnmuteStaysMutedWithoutAudio(t *testing.T) {
	g := newTestGame(t, &fakePlayer{initErr: errors.New("no device")})
	require.NoError(t, g.perform(actionToggleMute))
	assert.True(t, g.sim.Params().Mute)
	assert.Error(t, g.lastErr)

	g = newTestGame(t, nil)
	require.NoError(t, g.perform(actionToggleMute))
	assert.True(t, g.sim.Params().Mute)
}

func TestStepPlaysTonesOnlyWhenUnmuted(t *testing.T) {
	fp := &fakePlayer{}
	g := newTestGame(t, fp)

	p := &starfield.Particle{
		Color: "#ffffff", Size: starfield.Vec{X: 4, Y: 4}, Point: starfield.Vec{X: 796, Y: 10},
		Direction: starfield.Vec{X: 3}, Mass: 3, MaxSpeed: 3, Death: 1000, MaxSize: 10,
	}
	g.sim.Add(p)

	g.step()
	assert.Equal(t, 1, g.frame.Stats.Bounces)
	assert.Empty(t, fp.tones, "muted")

	require.NoError(t, g.applySettings("mute=false"))
	p.Point.X, p.Direction.X = 796, 3
	g.step()
	assert.Len(t, fp.tones, 1)
}

func TestSettingsDialog(t *testing.T) {
	g := newTestGame(t, nil)

	var shown string
	g.dialog = func(current string) (string, error) {
		shown = current
		return "limit=42 tail=2", nil
	}
	require.NoError(t, g.perform(actionSettings))
	assert.Equal(t, config.Describe(starfield.Params{
		ParticleLimit: 20, TailLength: 8, MouseFollow: true, SpeedScalar: 1, Mute: true, SpawnFrequency: 2,
	}), shown)
	assert.Equal(t, 42, g.sim.Params().ParticleLimit)
	assert.Equal(t, 2, g.sim.Params().TailLength)
}

func TestSettingsDialogCancelAndReject(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.sim.Params()

	g.dialog = func(string) (string, error) { return "", zenity.ErrCanceled }
	require.NoError(t, g.perform(actionSettings))
	assert.Equal(t, before, g.sim.Params())
	assert.NoError(t, g.lastErr)

	var popup string
	g.errorf = func(msg string) { popup = msg }
	g.dialog = func(string) (string, error) { return "limit=lots", nil }
	require.NoError(t, g.perform(actionSettings))
	assert.Equal(t, before, g.sim.Params())
	assert.ErrorIs(t, g.lastErr, config.ErrInvalidOverride)
	assert.Contains(t, popup, "limit=lots")
}

func TestTrackPointerWaitsForMovement(t *testing.T) {
	g := newTestGame(t, nil)

	g.trackPointer(0, 0)
	assert.Equal(t, starfield.Idle, g.sim.State())
	g.trackPointer(0, 0)
	assert.Equal(t, starfield.Idle, g.sim.State())

	g.trackPointer(900, 10) // outside the window
	assert.Equal(t, starfield.Idle, g.sim.State())

	g.trackPointer(120, 80)
	assert.Equal(t, starfield.Tracking, g.sim.State())
	sp, _ := g.sim.SpawnPoint()
	assert.Equal(t, starfield.Vec{X: 120, Y: 80}, sp)
}

func TestLayoutResizesSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	w, h := g.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, starfield.Vec{X: 640, Y: 480}, g.sim.Canvas())

	w, h = g.Layout(0, 0)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestHUDLines(t *testing.T) {
	g := newTestGame(t, nil)
	g.step()
	lines := g.hudLines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "/20")
	assert.Contains(t, lines[4], "idle")

	g.lastErr = errors.New("boom")
	assert.Contains(t, g.hudLines()[5], "boom")
}
