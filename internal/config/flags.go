package config

import (
	"flag"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/starfield/internal/starfield"
)

// Config is everything main needs to start the window.
type Config struct {
	Width    int
	Height   int
	Seed     int64 // 0 picks a time-based seed
	Prefill  bool  // spawn the whole population before the first frame
	LogLevel string
	Params   starfield.Params
}

// Default returns the start-up configuration.
func Default() Config {
	return Config{
		Width:    WindowWidth,
		Height:   WindowHeight,
		LogLevel: "info",
		Params:   starfield.DefaultParams(),
	}
}

// Parse reads command-line flags on top of Default.
func Parse(name string, args []string, out io.Writer) (Config, error) {
	c := Default()
	p := &c.Params

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.BoolVar(&c.Prefill, "prefill", c.Prefill, "spawn the full population before the first frame")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")

	fs.IntVar(&p.ParticleLimit, "limit", p.ParticleLimit, "population target")
	fs.IntVar(&p.TailLength, "tail", p.TailLength, "trail length in frames")
	fs.BoolVar(&p.MouseFollow, "follow", p.MouseFollow, "orbit the pointer and spawn at it")
	fs.Float64Var(&p.SpeedScalar, "speed", p.SpeedScalar, "orbit force multiplier")
	fs.BoolVar(&p.Mute, "mute", p.Mute, "start with bounce tones muted")
	fs.IntVar(&p.SpawnFrequency, "spawn-frequency", p.SpawnFrequency, "frames between spawns while below target")
	fs.BoolVar(&p.Decay, "decay", p.Decay, "slowly decelerate and grow stars")
	fs.StringVar(&p.DeathColor, "death-color", p.DeathColor, "hex colour for dying stars (empty keeps their colour)")

	if err := fs.Parse(args); err != nil {
		return c, errors.Wrap(err, "parse flags")
	}
	if p.DeathColor != "" {
		p.DeathColor = NormalizeHex(p.DeathColor)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate rejects values the simulation would otherwise silently clamp.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return validateParams(c.Params)
}

func validateParams(p starfield.Params) error {
	switch {
	case p.ParticleLimit < 0:
		return errors.Errorf("limit must be >= 0, got %d", p.ParticleLimit)
	case p.TailLength < 0:
		return errors.Errorf("tail must be >= 0, got %d", p.TailLength)
	case p.SpeedScalar < 0:
		return errors.Errorf("speed must be >= 0, got %g", p.SpeedScalar)
	case p.SpawnFrequency < 1:
		return errors.Errorf("spawn-frequency must be >= 1, got %d", p.SpawnFrequency)
	}
	if p.DeathColor != "" {
		if _, err := colorful.Hex(NormalizeHex(p.DeathColor)); err != nil {
			return errors.Wrapf(err, "death-color %q", p.DeathColor)
		}
	}
	return nil
}

// NormalizeHex accepts "fff", "#fff" and "#ffffff" forms and returns a
// lower-case string with a leading '#'.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return strings.ToLower(s)
}
