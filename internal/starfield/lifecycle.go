package starfield

// AgeChance is the per-frame probability that a particle grows one tick older.
const AgeChance = 0.3

// Age ages p and applies death-state growth. It returns false once p has
// outlived Death+GracePeriod and must be dropped.
func Age(p *Particle, rng *RNG, deathColor string) bool {
	if p.Expired() {
		return false
	}
	if rng.Chance(AgeChance) {
		p.Age++
	}
	if p.Expired() {
		return false
	}
	if p.Dying() {
		if deathColor != "" {
			p.Color = deathColor
		}
		grow(p)
	}
	return true
}
