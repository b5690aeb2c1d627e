// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/engine"
	"github.com/vovakirdan/kids-arcade/internal/scores"
)

// ErrUnknownGame is returned for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every mini-game implements. The simulation itself
// lives in the game's engine.Session; the platform owns timing, input
// mapping and the round lifecycle.
type Game interface {
	// ID returns a unique identifier (e.g., "runner", "maze"), used for
	// CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line blurb for menus.
	Description() string

	// TickInterval is the fixed simulation step of the game.
	TickInterval() time.Duration

	// Scale rates a final score in stars.
	Scale() scores.StarScale

	// Reset loads configuration and leaves the session idle. Call
	// Session().Start() to begin a round.
	Reset(cfg core.RuntimeConfig)

	// Step applies input and advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current score and phase.
	State() core.GameState

	// Session returns the game's session. It is created once per game, so
	// terminal callbacks and subscribers survive Reset.
	Session() *engine.Session
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Description: g.Description()}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of one game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error wrapping ErrUnknownGame if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
