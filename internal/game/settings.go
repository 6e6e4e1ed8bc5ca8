package game

import (
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/starfield/internal/config"
)

// settingsDialog asks the user for new settings text, given the current one.
type settingsDialog func(current string) (string, error)

func zenitySettings(current string) (string, error) {
	return zenity.Entry(
		"Space separated key=value pairs:\nlimit tail speed follow mute spawn-frequency decay death-color",
		zenity.Title("Starfield settings"),
		zenity.EntryText(current),
	)
}

func zenityError(msg string) {
	_ = zenity.Error(msg, zenity.Title("Starfield"), zenity.ErrorIcon)
}

// openSettings runs the dialog and applies its result. A cancelled dialog
// changes nothing.
func (g *Game) openSettings() error {
	text, err := g.dialog(config.Describe(g.sim.Params()))
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		g.lastErr = errors.Wrap(err, "settings dialog")
		g.log.WithError(err).Warn("settings dialog failed")
		return nil
	}
	return g.applySettings(text)
}

func (g *Game) applySettings(text string) error {
	p, err := config.ApplyOverrides(g.sim.Params(), text)
	if err != nil {
		g.lastErr = err
		g.log.WithError(err).Warn("settings rejected")
		g.showError(err.Error())
		return nil
	}
	if !p.Mute && !g.enableAudio() {
		p.Mute = true
	}
	g.sim.SetParams(p)
	g.lastErr = nil
	g.log.WithFields(logrus.Fields{"settings": config.Describe(p)}).Info("settings applied")
	return nil
}
