package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/iburimskiy/starfield/internal/starfield"
)

// ErrInvalidOverride is returned for settings text that cannot be applied.
var ErrInvalidOverride = errors.New("invalid setting")

// ApplyOverrides applies whitespace separated key=value pairs, as typed into
// the settings dialog, on top of p. p is returned unchanged on error.
func ApplyOverrides(p starfield.Params, text string) (starfield.Params, error) {
	out := p
	for _, field := range strings.Fields(text) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			return p, errors.Wrapf(ErrInvalidOverride, "%q: want key=value", field)
		}
		if err := applyOne(&out, strings.ToLower(key), value); err != nil {
			return p, err
		}
	}
	if err := validateParams(out); err != nil {
		return p, errors.Wrap(ErrInvalidOverride, err.Error())
	}
	return out, nil
}

func applyOne(p *starfield.Params, key, value string) error {
	var err error
	switch key {
	case "limit":
		p.ParticleLimit, err = strconv.Atoi(value)
	case "tail":
		p.TailLength, err = strconv.Atoi(value)
	case "spawn-frequency":
		p.SpawnFrequency, err = strconv.Atoi(value)
	case "speed":
		p.SpeedScalar, err = strconv.ParseFloat(value, 64)
	case "follow":
		p.MouseFollow, err = strconv.ParseBool(value)
	case "mute":
		p.Mute, err = strconv.ParseBool(value)
	case "decay":
		p.Decay, err = strconv.ParseBool(value)
	case "death-color":
		if value == "none" {
			p.DeathColor = ""
		} else {
			p.DeathColor = NormalizeHex(value)
		}
	default:
		return errors.Wrapf(ErrInvalidOverride, "unknown key %q", key)
	}
	if err != nil {
		return errors.Wrapf(ErrInvalidOverride, "%s=%s", key, value)
	}
	return nil
}

// Describe formats p in the form ApplyOverrides reads.
func Describe(p starfield.Params) string {
	death := p.DeathColor
	if death == "" {
		death = "none"
	}
	return fmt.Sprintf("limit=%d tail=%d speed=%g follow=%t mute=%t spawn-frequency=%d decay=%t death-color=%s",
		p.ParticleLimit, p.TailLength, p.SpeedScalar, p.MouseFollow, p.Mute, p.SpawnFrequency, p.Decay, death)
}
