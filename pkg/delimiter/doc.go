// Package delimiter splits raw calculator input into candidate number tokens.
//
// A Delimiter knows exactly one literal separator. Several delimiters are
// composed by applying them in order, each one operating on the fully split
// output of the previous one, rather than by merging their separators into a
// single pattern.
//
// # Usage
//
//	import "github.com/dmitrymomot/strcalc/pkg/delimiter"
//
//	tokens := delimiter.Tokenize("1 2,3", delimiter.Comma(), delimiter.Space())
//	// tokens: []string{"1", "2", "3"}
//
// Custom separators are supported through Literal or the Func adapter:
//
//	semicolon := delimiter.Literal(";")
//	upper := delimiter.Func(func(tokens []string) []string { ... })
//
// Separators are matched literally. There is no escaping, quoting or regular
// expression behaviour. Delimiters never look at the numeric content of a
// token; validation is left to the calculator package.
package delimiter
