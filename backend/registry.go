package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/vcanvas"
)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{GS, SK}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// A nil factory marks the backend as known but compiled out.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the names of usable backends, in priority order
// followed by any others sorted by name.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var names, rest []string
	for _, name := range backendPriority {
		if f := backends[name]; f != nil {
			names = append(names, name)
		}
	}
	for name, f := range backends {
		if f != nil && !slices.Contains(backendPriority, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}

// IsRegistered checks if a backend with the given name is registered,
// compiled out or not.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns the factory registered under name. An unknown name is
// NotSupported; a compiled-out backend is MissingFeature.
func Get(name string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	switch {
	case !ok:
		return nil, vcanvas.NewError("backend", vcanvas.NotSupported, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name))
	case factory == nil:
		return nil, vcanvas.NewError("backend", vcanvas.MissingFeature, fmt.Errorf("%w: %q", ErrCompiledOut, name))
	}
	return factory, nil
}

// Default returns the best available backend based on priority.
// Priority order: gs > sk > others by name.
func Default() (string, Factory, error) {
	names := Available()
	if len(names) == 0 {
		return "", nil, vcanvas.NewError("backend", vcanvas.MissingFeature, ErrBackendNotAvailable)
	}
	f, err := Get(names[0])
	if err != nil {
		return "", nil, err
	}
	vcanvas.Logger().Debug("backend: selected default", "name", names[0], "available", names)
	return names[0], f, nil
}
