// Package strcalc sums the numbers of a delimited string.
//
// The work is split across small packages:
//
//   - pkg/delimiter - literal separators and the chain that applies them in order
//   - pkg/calculator - parsing, validation and summation (StringStrategy)
//   - pkg/registry - lookup of a strategy by input type
//
// This package holds the process-wide default registry, populated once on
// first use with the string strategy (comma, then space):
//
//	sum, err := strcalc.Calculate("1 2 3,4,101")
//	switch {
//	case errors.Is(err, calculator.ErrUnsupportedNumber):
//	    // negative number in input
//	case errors.Is(err, calculator.ErrInvalidDelimiter):
//	    // unknown separator or non-numeric token
//	}
//
// Callers that prefer explicit wiring build their own registry with
// registry.NewPopulated and pass it around instead.
package strcalc
