package registry

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/strcalc/pkg/calculator"
	"github.com/dmitrymomot/strcalc/pkg/delimiter"
)

// InputType selects which strategy a caller receives.
type InputType string

// InputString is the tag for delimited string input.
const InputString InputType = "string"

func (t InputType) String() string {
	return string(t)
}

// Registry holds one strategy per input type.
// Not thread-safe: register everything at startup only.
type Registry struct {
	strategies map[InputType]calculator.Strategy
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{strategies: make(map[InputType]calculator.Strategy)}
}

// NewPopulated returns a registry with the built-in strategies already registered.
func NewPopulated() *Registry {
	r := New()
	r.Populate()
	return r
}

// StringDelimiters returns the delimiter chain used for InputString: comma, then space.
func StringDelimiters() []delimiter.Delimiter {
	return []delimiter.Delimiter{delimiter.Comma(), delimiter.Space()}
}

// Populate registers the built-in strategies.
// Calling it again replaces them with equivalent instances.
func (r *Registry) Populate() {
	r.Register(InputString, calculator.MustNew(StringDelimiters()))
}

// Register sets or replaces the strategy for the given input type. Panics if s is nil.
func (r *Registry) Register(t InputType, s calculator.Strategy) {
	if s == nil {
		panic(fmt.Errorf("%w: input type %q", ErrNilStrategy, t))
	}
	r.strategies[t] = s
}

// Get returns the strategy registered for t.
func (r *Registry) Get(t InputType) (calculator.Strategy, bool) {
	s, ok := r.strategies[t]
	return s, ok
}

// MustGet returns the strategy registered for t and panics if there is none.
func (r *Registry) MustGet(t InputType) calculator.Strategy {
	s, ok := r.Get(t)
	if !ok {
		panic(fmt.Errorf("%w: input type %q", ErrStrategyNotFound, t))
	}
	return s
}

// Types returns the registered input types in sorted order.
func (r *Registry) Types() []InputType {
	types := make([]InputType, 0, len(r.strategies))
	for t := range r.strategies {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
