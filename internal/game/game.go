package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/starfield"
)

// TonePlayer is the optional audio side-channel.
type TonePlayer interface {
	Init() error
	PlayTone(starfield.Tone)
	Scope(n int) []float64
}

// Game adapts a starfield.Simulation to ebiten: Update advances one frame,
// Draw executes that frame's rectangles.
type Game struct {
	log    logrus.FieldLogger
	sim    *starfield.Simulation
	player TonePlayer
	dialog settingsDialog
	errorf func(msg string)

	frame  *starfield.Frame
	colors *colorCache

	width  int
	height int

	// pointer
	pointerSeen  bool
	cursorPrimed bool
	lastCursor   [2]int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// HUD
	showHUD    bool
	started    time.Time
	colorPhase float64
	lastErr    error
}

// New builds the shell around sim. player may be nil, which keeps the
// game silent regardless of the mute flag.
func New(cfg config.Config, sim *starfield.Simulation, player TonePlayer, log logrus.FieldLogger) *Game {
	return &Game{
		log:     log,
		sim:     sim,
		player:  player,
		dialog:  zenitySettings,
		errorf:  zenityError,
		colors:  newColorCache(),
		width:   cfg.Width,
		height:  cfg.Height,
		prevKey: map[ebiten.Key]bool{},
		showHUD: true,
		started: time.Now(),
	}
}

func (g *Game) Update() error {
	for _, a := range g.pressedActions() {
		if err := g.perform(a); err != nil {
			return err
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// A click is proof the cursor is really over the window.
		g.cursorPrimed = true
		g.lastCursor = [2]int{-1, -1}
	}
	g.trackPointer(ebiten.CursorPosition())

	g.step()
	return nil
}

// step advances the simulation and plays the frame's tones.
func (g *Game) step() {
	g.frame = g.sim.Tick()
	g.colorPhase += config.ColorShiftSpeed

	if g.player == nil || g.sim.Params().Mute {
		return
	}
	for _, t := range g.frame.Tones {
		g.player.PlayTone(t)
	}
}

// enableAudio initialises the player on first unmute. It reports whether
// tones can be played.
func (g *Game) enableAudio() bool {
	if g.player == nil {
		return false
	}
	if err := g.player.Init(); err != nil {
		g.lastErr = err
		g.log.WithError(err).Warn("audio unavailable, staying muted")
		return false
	}
	return true
}

func (g *Game) showError(msg string) {
	if g.errorf != nil {
		g.errorf(msg)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.sim.Resize(float64(outsideWidth), float64(outsideHeight))
		g.log.WithFields(logrus.Fields{"width": outsideWidth, "height": outsideHeight}).Debug("canvas resized")
	}
	return g.width, g.height
}
