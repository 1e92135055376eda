package noise

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a seeded noise source.
type Factory func(seed int64) Source

// Info describes a registered noise algorithm.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a noise factory under the given name.
// Typically called from an algorithm package's init() function.
// Panics if the name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("noise: algorithm %q already registered", name))
	}

	entries[name] = entry{factory: f, description: description}
}

// List returns all registered algorithms, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for name, e := range entries {
		result = append(result, Info{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates the named algorithm with the given seed.
// Returns an error if the name is not registered.
func Create(name string, seed int64) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("noise: unknown algorithm %q", name)
	}

	return e.factory(seed), nil
}

// Exists checks if an algorithm with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}

func init() {
	Register("flat", "Constant zero everywhere", func(_ int64) Source {
		return Constant(0)
	})
}
