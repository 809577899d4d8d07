// Package registry maps input types to the calculation strategy that handles them.
//
// A Registry is filled once during start-up and only read afterwards. It does
// no locking of its own: populate it before handing it to any goroutine.
//
//	reg := registry.NewPopulated()
//	strategy := reg.MustGet(registry.InputString)
//	sum, err := strategy.Calculate("1,2 3")
//
// Get on a type that was never registered reports absence. That is a wiring
// mistake in the caller, so MustGet panics instead of returning an error.
package registry
