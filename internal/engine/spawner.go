package engine

// Builder makes a fresh hazard or collectible. The spawner fills in the
// position afterwards.
type Builder func(r Random) Entity

// Spawner introduces hazards and collectibles at a distance-based cadence.
// The accumulator lives in the World, so one Spawner value can serve any
// number of sessions.
type Spawner struct {
	// Threshold the accumulator must reach before a spawn.
	Threshold float64
	// Step is added every tick. Zero means "add the current speed", which
	// keeps the gap between items constant as the game speeds up.
	Step float64
	// HazardWeight is the probability that a spawn is a hazard.
	HazardWeight float64
	// Edges are the x coordinates items enter at; one is picked uniformly.
	Edges []float64
	// HazardLanes and CollectLanes are the y offsets items may use. Empty
	// keeps whatever y the builder set.
	HazardLanes  []float64
	CollectLanes []float64

	Hazard      Builder
	Collectible Builder

	// Ready gates spawning; the accumulator keeps growing while it is false.
	Ready func(w *World) bool
}

// Update advances the accumulator and spawns at most one entity.
func (sp *Spawner) Update(w *World) *Entity {
	if w.phase != PhasePlaying {
		return nil
	}
	step := sp.Step
	if step == 0 {
		step = w.speed
	}
	w.spawnAcc += step
	if w.spawnAcc < sp.Threshold {
		return nil
	}
	if sp.Ready != nil && !sp.Ready(w) {
		return nil
	}
	w.spawnAcc = 0

	kind := KindCollectible
	if sp.Hazard != nil && (sp.Collectible == nil || w.rand.WeightedPick([]float64{sp.HazardWeight, 1 - sp.HazardWeight}) == 0) {
		kind = KindHazard
	}

	var e Entity
	lanes := sp.CollectLanes
	if kind == KindHazard {
		e = sp.Hazard(w.rand)
		lanes = sp.HazardLanes
	} else {
		if sp.Collectible == nil {
			return nil
		}
		e = sp.Collectible(w.rand)
	}
	e.Kind = kind

	if len(sp.Edges) > 0 {
		e.Pos.X = sp.Edges[w.rand.Pick(len(sp.Edges))]
	}
	if len(lanes) > 0 {
		e.Lane = w.rand.Pick(len(lanes))
		e.Pos.Y = lanes[e.Lane]
	}
	return w.store.Add(e)
}
