package engine

import (
	"fmt"
	"maps"
)

// MarshalText renders the kind by name in JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, c := range []Kind{KindPlayer, KindHazard, KindCollectible} {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("engine: unknown kind %q", text)
}

// EntityView is the read-only copy of an entity published in snapshots.
type EntityView struct {
	ID      int     `json:"id"`
	Kind    Kind    `json:"kind"`
	Variant string  `json:"variant,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	Scale   float64 `json:"scale"`
	Lane    int     `json:"lane"`
	Reward  int     `json:"reward,omitempty"`
	Mode    string  `json:"mode,omitempty"`
	Timer   int     `json:"timer,omitempty"`
}

func viewOf(e *Entity) EntityView {
	return EntityView{
		ID:      e.ID,
		Kind:    e.Kind,
		Variant: e.Variant,
		X:       e.Pos.X,
		Y:       e.Pos.Y,
		W:       e.W,
		H:       e.H,
		Scale:   e.Scale,
		Lane:    e.Lane,
		Reward:  e.Reward,
		Mode:    e.Mode,
		Timer:   e.Timer,
	}
}

// Snapshot is an immutable picture of a session after a tick. It shares no
// memory with the live world.
type Snapshot struct {
	Tick     uint64         `json:"tick"`
	Phase    Phase          `json:"phase"`
	Reason   string         `json:"reason,omitempty"`
	Score    int            `json:"score"`
	Speed    float64        `json:"speed"`
	Player   *EntityView    `json:"player,omitempty"`
	Entities []EntityView   `json:"entities"`
	Counters map[string]int `json:"counters,omitempty"`
}

// Count returns how many entities of a kind the snapshot holds.
func (s Snapshot) Count(kind Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (w *World) snapshot() Snapshot {
	snap := Snapshot{
		Tick:     w.tick,
		Phase:    w.phase,
		Reason:   w.reason,
		Score:    w.score,
		Speed:    w.speed,
		Entities: make([]EntityView, 0, len(w.store.items)),
		Counters: maps.Clone(w.counters),
	}
	if p := w.store.Player(); p.Active {
		v := viewOf(p)
		snap.Player = &v
	}
	for _, e := range w.store.items {
		if e.Alive() {
			snap.Entities = append(snap.Entities, viewOf(e))
		}
	}
	return snap
}
