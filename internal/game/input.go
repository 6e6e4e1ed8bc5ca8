package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/starfield/internal/config"
)

type action int

const (
	actionNone action = iota
	actionLimitUp
	actionLimitDown
	actionTailUp
	actionTailDown
	actionSpeedUp
	actionSpeedDown
	actionToggleFollow
	actionToggleMute
	actionToggleDecay
	actionToggleHUD
	actionSettings
	actionQuit
)

func (a action) String() string {
	switch a {
	case actionLimitUp:
		return "limit_up"
	case actionLimitDown:
		return "limit_down"
	case actionTailUp:
		return "tail_up"
	case actionTailDown:
		return "tail_down"
	case actionSpeedUp:
		return "speed_up"
	case actionSpeedDown:
		return "speed_down"
	case actionToggleFollow:
		return "toggle_follow"
	case actionToggleMute:
		return "toggle_mute"
	case actionToggleDecay:
		return "toggle_decay"
	case actionToggleHUD:
		return "toggle_hud"
	case actionSettings:
		return "settings"
	case actionQuit:
		return "quit"
	default:
		return "none"
	}
}

// keyBindings maps edge-triggered keys to panel actions.
var keyBindings = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeyArrowUp, actionLimitUp},
	{ebiten.KeyArrowDown, actionLimitDown},
	{ebiten.KeyArrowRight, actionTailUp},
	{ebiten.KeyArrowLeft, actionTailDown},
	{ebiten.KeyEqual, actionSpeedUp},
	{ebiten.KeyNumpadAdd, actionSpeedUp},
	{ebiten.KeyMinus, actionSpeedDown},
	{ebiten.KeyNumpadSubtract, actionSpeedDown},
	{ebiten.KeyF, actionToggleFollow},
	{ebiten.KeyM, actionToggleMute},
	{ebiten.KeyD, actionToggleDecay},
	{ebiten.KeyH, actionToggleHUD},
	{ebiten.KeyS, actionSettings},
	{ebiten.KeyEscape, actionQuit},
	{ebiten.KeyQ, actionQuit},
}

// pressedActions returns the actions whose key went down this frame.
func (g *Game) pressedActions() []action {
	var out []action
	for _, b := range keyBindings {
		pressed := ebiten.IsKeyPressed(b.key)
		if pressed && !g.prevKey[b.key] {
			out = append(out, b.act)
		}
		g.prevKey[b.key] = pressed
	}
	return out
}

// perform applies one panel action. It returns ebiten.Termination for quit.
func (g *Game) perform(a action) error {
	p := g.sim.Params()
	switch a {
	case actionLimitUp:
		p.ParticleLimit += config.LimitStep
	case actionLimitDown:
		p.ParticleLimit -= config.LimitStep
	case actionTailUp:
		p.TailLength += config.TailStep
	case actionTailDown:
		p.TailLength -= config.TailStep
	case actionSpeedUp:
		p.SpeedScalar += config.SpeedStep
	case actionSpeedDown:
		p.SpeedScalar -= config.SpeedStep
	case actionToggleFollow:
		p.MouseFollow = !p.MouseFollow
	case actionToggleMute:
		p.Mute = !p.Mute
		if !p.Mute && !g.enableAudio() {
			p.Mute = true
		}
	case actionToggleDecay:
		p.Decay = !p.Decay
	case actionToggleHUD:
		g.showHUD = !g.showHUD
		return nil
	case actionSettings:
		return g.openSettings()
	case actionQuit:
		return ebiten.Termination
	default:
		return nil
	}
	g.sim.SetParams(p)
	g.log.WithFields(logrus.Fields{
		"action": a.String(),
		"limit":  g.sim.Params().ParticleLimit,
		"tail":   g.sim.Params().TailLength,
		"speed":  g.sim.Params().SpeedScalar,
	}).Debug("params changed")
	return nil
}

// trackPointer feeds the cursor to the simulation once it has actually
// moved inside the window. ebiten reports a position before the cursor
// has ever entered, so the first sample only primes the comparison.
func (g *Game) trackPointer(x, y int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	if !g.pointerSeen {
		cur := [2]int{x, y}
		if !g.cursorPrimed {
			g.lastCursor = cur
			g.cursorPrimed = true
			return
		}
		if cur == g.lastCursor {
			return
		}
		g.pointerSeen = true
		g.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("pointer tracking")
	}
	g.sim.ObservePointer(float64(x), float64(y))
}
