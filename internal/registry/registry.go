// Package registry provides a global registry for game rule factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
)

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    core.GameID
	Name  string // CLI name, e.g. "tetris"
	Title string
}

// Factory creates fresh rules for one game session.
type Factory func(cfg config.Config) engine.Rules

var (
	factories = make(map[core.GameID]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id core.GameID, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// List returns information about all registered games in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Name:  id.String(),
			Title: id.Title(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates rules for the given game.
// Returns an error if the game ID is not registered.
func Create(id core.GameID, cfg config.Config) (engine.Rules, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Lookup resolves a CLI name to a registered game.
func Lookup(name string) (core.GameID, error) {
	id, err := core.ParseGameID(name)
	if err != nil {
		return 0, fmt.Errorf("registry: %w", err)
	}
	if !Exists(id) {
		return 0, fmt.Errorf("registry: game %q is not registered", name)
	}
	return id, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id core.GameID) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
