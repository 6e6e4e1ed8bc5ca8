package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/starfield/internal/config"
)

const lineHeight = 14

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		screen.Fill(backgroundColor(g.colorPhase))
		return
	}

	if g.frame.Clear {
		screen.Fill(backgroundColor(g.colorPhase))
	}

	for _, r := range g.frame.Rects {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), g.colors.get(r.Color, r.Alpha), false)
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	clr := hudColor(g.colorPhase)
	x := config.HUDPadding
	y := config.HUDPadding + lineHeight

	for _, line := range g.hudLines() {
		text.Draw(screen, line, basicfont.Face7x13, x, y, clr)
		y += lineHeight
	}

	if g.player != nil && !g.sim.Params().Mute {
		g.drawScope(screen, float32(x), float32(y))
	}
}

// hudLines lists the parameter panel, one entry per line.
func (g *Game) hudLines() []string {
	p := g.sim.Params()
	stats := g.frame.Stats
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	lines := []string{
		fmt.Sprintf("stars %d/%d  [up/down]", stats.Population, p.ParticleLimit),
		fmt.Sprintf("tail %d  [left/right]", p.TailLength),
		fmt.Sprintf("speed %.1f  [+/-]", p.SpeedScalar),
		fmt.Sprintf("follow %s [f]  mute %s [m]  decay %s [d]", onOff(p.MouseFollow), onOff(p.Mute), onOff(p.Decay)),
		fmt.Sprintf("%s  %s  [s] settings  [h] hide  [q] quit", g.sim.State(), formatUptime(time.Since(g.started))),
	}
	if g.lastErr != nil {
		lines = append(lines, "error: "+g.lastErr.Error())
	}
	return lines
}

// drawScope plots the most recent audio output as a small waveform.
func (g *Game) drawScope(screen *ebiten.Image, x, y float32) {
	samples := g.player.Scope(config.ScopeSamples)
	if len(samples) < 2 {
		return
	}
	w := float32(config.ScopeWidth)
	h := float32(config.ScopeHeight)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 60, G: 70, B: 90, A: 180}, false)

	mid := y + h/2
	step := w / float32(len(samples)-1)
	lineColor := hudColor(g.colorPhase)
	for i := 1; i < len(samples); i++ {
		x0 := x + float32(i-1)*step
		x1 := x + float32(i)*step
		y0 := mid - float32(samples[i-1])*h/2
		y1 := mid - float32(samples[i])*h/2
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, lineColor, false)
	}
}
