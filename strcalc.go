package strcalc

import (
	"sync"

	"github.com/dmitrymomot/strcalc/pkg/registry"
)

var (
	defaultRegistry     *registry.Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry.
// It is populated on first use and must not be modified afterwards.
func Default() *registry.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = registry.NewPopulated()
	})
	return defaultRegistry
}

// Calculate sums input with the default string strategy.
func Calculate(input string) (int, error) {
	return Default().MustGet(registry.InputString).Calculate(input)
}
