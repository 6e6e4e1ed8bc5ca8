package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/starfield/internal/audio"
	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/game"
	"github.com/iburimskiy/starfield/internal/starfield"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := config.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := starfield.NewSimulation(float64(cfg.Width), float64(cfg.Height), cfg.Params, starfield.NewSeededRNG(seed))
	if cfg.Prefill {
		sim.Populate()
	}

	player := audio.NewPlayer(log.WithField("component", "audio"))
	if !cfg.Params.Mute {
		if err := player.Init(); err != nil {
			// Non-fatal, the stars can shine without sound
			log.WithError(err).Warn("audio init failed, starting muted")
			p := sim.Params()
			p.Mute = true
			sim.SetParams(p)
		}
	}
	defer player.Close()

	log.WithField("seed", seed).WithField("settings", config.Describe(sim.Params())).Info("starting")

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Starfield - arrows/+/-: tune, f: follow, m: mute, s: settings, q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, sim, player, log.WithField("component", "game"))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game stopped")
	}
}
