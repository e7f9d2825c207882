// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the director
// to instantiate them by ID without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-dodge/internal/scene"
)

// Factory is a function that creates a new instance of a scene.
// The director calls it on every entry so no state survives between visits.
type Factory func() scene.Scene

var (
	factories = make(map[scene.ID]Factory)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id scene.ID, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}
	factories[id] = f
}

// List returns the IDs of all registered scenes, sorted.
func List() []scene.ID {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]scene.ID, 0, len(factories))
	for id := range factories {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id scene.ID) (scene.Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}
	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id scene.ID) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a scene. Used by tests.
func unregister(id scene.ID) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
}
