package engine

// Box is an axis-aligned rectangle in field units.
type Box struct {
	X, Y, W, H float64
}

// Shrink insets the box by f of its size on every side, so f = 0.25 keeps
// the middle half. Values are capped just below one half.
func (b Box) Shrink(f float64) Box {
	if f <= 0 {
		return b
	}
	f = min(f, 0.49)
	dx, dy := b.W*f, b.H*f
	return Box{X: b.X + dx, Y: b.Y + dy, W: b.W - 2*dx, H: b.H - 2*dy}
}

// Overlaps reports whether two boxes share interior area. Touching edges do
// not count.
func (b Box) Overlaps(o Box) bool {
	if b.W <= 0 || b.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return b.X < o.X+o.W && o.X < b.X+b.W && b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

// Resolver tests the player against hazards and collectibles.
type Resolver struct {
	HazardShrink  float64
	CollectShrink float64
	// Reward is paid for collectibles that carry no reward of their own.
	Reward int
	// Disabled turns collision off for games driven purely by hooks.
	Disabled bool
}

// Outcome is what one resolution pass found.
type Outcome struct {
	Fatal     *Entity
	Collected []*Entity
	Points    int
}

// Resolve checks hazards first; the first hazard hit ends the pass with no
// collectibles taken. Otherwise every overlapping collectible is marked
// collected and its reward added. A collected entity is never counted again.
func (r Resolver) Resolve(s *Store) Outcome {
	var out Outcome
	p := s.Player()
	if r.Disabled || !p.Alive() {
		return out
	}
	pb := p.Box()

	hazardBox := pb.Shrink(r.HazardShrink)
	for _, e := range s.items {
		if e.Kind != KindHazard || !e.Alive() {
			continue
		}
		if hazardBox.Overlaps(e.Box().Shrink(r.HazardShrink)) {
			out.Fatal = e
			return out
		}
	}

	collectBox := pb.Shrink(r.CollectShrink)
	for _, e := range s.items {
		if e.Kind != KindCollectible || !e.Alive() {
			continue
		}
		if !collectBox.Overlaps(e.Box().Shrink(r.CollectShrink)) {
			continue
		}
		e.Collected = true
		out.Collected = append(out.Collected, e)
		if e.Reward > 0 {
			out.Points += e.Reward
		} else {
			out.Points += r.Reward
		}
	}
	return out
}
