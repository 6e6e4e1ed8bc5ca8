package starfield

// Remember appends the current point to the tail and evicts the oldest
// entries until at most tail remain.
func Remember(p *Particle, tail int) {
	if tail < 0 {
		tail = 0
	}
	p.History = append(p.History, p.Point)
	if excess := len(p.History) - tail; excess > 0 {
		// Shift in place so the backing array does not creep forward forever.
		n := copy(p.History, p.History[excess:])
		clear(p.History[n:])
		p.History = p.History[:n]
	}
}

// appendTrail emits one rectangle per history entry, oldest first, each
// scaled by its recency so the trail tapers toward the oldest point.
func appendTrail(rects []Rect, p *Particle) []Rect {
	n := len(p.History)
	for i, h := range p.History {
		f := float64(i) / float64(n)
		if f == 0 {
			continue
		}
		rects = append(rects, Rect{
			X:     h.X,
			Y:     h.Y,
			W:     p.Size.X * f,
			H:     p.Size.Y * f,
			Color: p.Color,
			Alpha: f,
		})
	}
	return rects
}
