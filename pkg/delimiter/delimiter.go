package delimiter

import (
	"fmt"
	"strings"
)

const (
	// CommaSeparator is the separator used by Comma.
	CommaSeparator = ","
	// SpaceSeparator is the separator used by Space. Only a single space is
	// matched; consecutive spaces produce empty tokens which the chain drops.
	SpaceSeparator = " "
)

// Delimiter splits every token of the input according to one separator rule.
// Tokens that do not contain the separator are passed through unchanged.
// Implementations must be stateless and free of side effects.
type Delimiter interface {
	Split(tokens []string) []string
}

// Func adapts an ordinary function to the Delimiter interface.
type Func func(tokens []string) []string

// Split calls f(tokens).
func (f Func) Split(tokens []string) []string {
	return f(tokens)
}

// literal splits on a fixed separator string.
type literal struct {
	sep string
}

// Literal returns a Delimiter splitting on sep.
// Panics on an empty separator: it would split every token into single
// characters, which is never a valid delimiter configuration.
func Literal(sep string) Delimiter {
	if sep == "" {
		panic("delimiter: separator cannot be empty")
	}
	return literal{sep: sep}
}

// Comma returns a Delimiter splitting on ",".
func Comma() Delimiter {
	return literal{sep: CommaSeparator}
}

// Space returns a Delimiter splitting on a single " ".
func Space() Delimiter {
	return literal{sep: SpaceSeparator}
}

// Split implements Delimiter.
func (d literal) Split(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, strings.Split(token, d.sep)...)
	}
	return out
}

// Separator returns the literal separator.
func (d literal) Separator() string {
	return d.sep
}

func (d literal) String() string {
	return fmt.Sprintf("delimiter(%q)", d.sep)
}
