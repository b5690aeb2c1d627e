// Package engine is the fixed-tick simulation shared by every mini-game.
//
// A Session owns one World: an entity store, a seeded random source and the
// round's score. Each Tick runs the same pipeline in the same order:
//
//	movement -> spawner -> collision -> score/rules -> snapshot
//
// Games plug into the pipeline with a PlayerMotion, an optional Spawner,
// a collision Resolver, win/loss Rules and per-stage hooks, but they never
// reorder it.
package engine

// Kind classifies an entity for collision purposes.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindHazard
	KindCollectible
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHazard:
		return "hazard"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Vec is a position or velocity in field units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Entity is anything that lives in the play field.
type Entity struct {
	ID      int
	Kind    Kind
	Variant string
	Pos     Vec
	Vel     Vec
	W, H    float64
	Scale   float64
	Lane    int
	Reward  int

	// Mode and Timer carry scripted behaviour (a bird that is "eating" for
	// ten more ticks, a card that is face "up").
	Mode  string
	Timer int

	Active     bool
	Collected  bool
	Eliminated bool
}

// Alive reports whether the entity still takes part in the simulation.
func (e *Entity) Alive() bool {
	return e.Active && !e.Collected && !e.Eliminated
}

// Box returns the entity's unshrunk bounding box.
func (e *Entity) Box() Box {
	return Box{X: e.Pos.X, Y: e.Pos.Y, W: e.W, H: e.H}
}

// Store holds the player and every hazard/collectible of one session.
// IDs come from a counter owned by the store, so two sessions never share
// an ID sequence.
type Store struct {
	player Entity
	items  []*Entity
	nextID int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Reset drops every entity and restarts the ID counter.
func (s *Store) Reset() {
	s.player = Entity{}
	s.items = nil
	s.nextID = 0
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

// SetPlayer installs the player entity and assigns it an ID.
func (s *Store) SetPlayer(e Entity) *Entity {
	e.Kind = KindPlayer
	e.ID = s.id()
	if e.Scale == 0 {
		e.Scale = 1
	}
	s.player = e
	return &s.player
}

// Player returns the player entity. A game without an avatar leaves it
// inactive, which also keeps it out of collision checks.
func (s *Store) Player() *Entity {
	return &s.player
}

// Add inserts a hazard or collectible and returns the stored entity.
func (s *Store) Add(e Entity) *Entity {
	e.ID = s.id()
	e.Active = true
	if e.Scale == 0 {
		e.Scale = 1
	}
	stored := &e
	s.items = append(s.items, stored)
	return stored
}

// Items returns every hazard and collectible, alive or not, in insertion order.
func (s *Store) Items() []*Entity {
	return s.items
}

// Alive returns the live entities of one kind in insertion order.
func (s *Store) Alive(kind Kind) []*Entity {
	var out []*Entity
	for _, e := range s.items {
		if e.Kind == kind && e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities of one kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for _, e := range s.items {
		if e.Kind == kind && e.Alive() {
			n++
		}
	}
	return n
}

// Find returns the live entity with the given ID.
func (s *Store) Find(id int) (*Entity, bool) {
	for _, e := range s.items {
		if e.ID == id && e.Alive() {
			return e, true
		}
	}
	return nil, false
}

// Cleanup removes consumed and off-field entities and returns how many went.
func (s *Store) Cleanup() int {
	kept := s.items[:0]
	for _, e := range s.items {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	removed := len(s.items) - len(kept)
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return removed
}
