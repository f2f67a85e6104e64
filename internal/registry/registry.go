// Package registry provides a global registry of level packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and load levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/star-pusher/internal/games/pusher/core"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

// Factory loads the levels of a pack. It is called on every Create so that
// each caller owns its own level values.
type Factory func() ([]*core.Level, error)

type entry struct {
	title   string
	factory Factory
}

var (
	packs = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a level pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}
	packs[id] = entry{title: title, factory: f}
}

// Unregister removes a pack. It is a no-op for unknown IDs.
func Unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(packs, id)
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, e := range packs {
		result = append(result, PackInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create loads the levels of the pack with the given ID.
// Returns an error if the ID is not registered or the pack fails to load.
func Create(id string) ([]*core.Level, error) {
	mu.RLock()
	e, ok := packs[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	levels, err := e.factory()
	if err != nil {
		return nil, fmt.Errorf("registry: loading pack %q: %w", id, err)
	}
	return levels, nil
}

// Title returns the display title of a pack, or the ID if it is unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := packs[id]; ok {
		return e.title
	}
	return id
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
