package game

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// phaseTint maps a colour phase onto the hue wheel. phase counts whole
// turns and grows without bound; shift is added in turns before wrapping.
func phaseTint(phase, shift, s, v float64) colorful.Color {
	turn := math.Mod(phase+shift, 1)
	return colorful.Hsv(turn*360, s, v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatUptime formats a duration as MM:SS, or H:MM:SS past the first hour.
func formatUptime(d time.Duration) string {
	total := int(d.Seconds())
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
