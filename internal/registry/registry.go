// Package registry provides a global registry for pattern factories.
// The built-in patterns are registered by the application, allowing the
// platform to discover and instantiate patterns without hardcoded wiring.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/pattern"
)

// Factory creates a fresh pattern instance from the loaded configuration.
// Every call must return an independent instance: stochastic patterns own
// their random source, so sharing one across panes or sessions would couple
// their animations.
type Factory func(cfg config.AmbientConfig) pattern.Pattern

// Info contains metadata about a registered pattern.
type Info struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pattern factory to the registry.
// Panics if a pattern with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered patterns, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new pattern by its ID.
// Returns an error if the pattern ID is not registered.
func Create(id string, cfg config.AmbientConfig) (pattern.Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pattern %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
