package registry

import "errors"

var (
	// ErrStrategyNotFound indicates that no strategy is registered for the input type.
	ErrStrategyNotFound = errors.New("registry: strategy not found")

	// ErrNilStrategy indicates an attempt to register a nil strategy.
	ErrNilStrategy = errors.New("registry: strategy cannot be nil")
)
