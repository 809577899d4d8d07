// Package calculator sums the integers contained in a delimited string.
//
// A StringStrategy owns an ordered, non-empty chain of delimiters (see package
// delimiter). Calculate tokenizes the input through that chain, parses every
// remaining token as a base-10 integer and adds it to the total, applying two
// rules along the way:
//
//   - a negative number aborts the calculation with ErrUnsupportedNumber
//   - a number above the maximum (100 by default) is silently skipped
//
// A token that does not parse as an integer aborts with ErrInvalidDelimiter;
// this is how input using a separator the strategy was not configured for is
// detected. Both errors stop at the first offending token, no partial sum is
// returned.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/strcalc/pkg/calculator"
//	    "github.com/dmitrymomot/strcalc/pkg/delimiter"
//	)
//
//	strategy, err := calculator.New([]delimiter.Delimiter{
//	    delimiter.Comma(),
//	    delimiter.Space(),
//	})
//	if err != nil {
//	    return err // ErrNoDelimiters
//	}
//
//	sum, err := strategy.Calculate("1 2 3,101")
//	// sum: 6
//
// # Error Handling
//
// All errors can be checked with errors.Is:
//
//	_, err := strategy.Calculate("1,-2")
//	if errors.Is(err, calculator.ErrUnsupportedNumber) {
//	    // negative input
//	}
//
// Calculation errors are returned as *NumberError which additionally carries
// the offending token and its position.
package calculator
