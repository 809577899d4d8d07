package calculator

import (
	"slices"
	"strconv"

	"github.com/dmitrymomot/strcalc/pkg/delimiter"
)

// Strategy turns a single input value into a sum.
type Strategy interface {
	// Calculate returns the sum of the numbers found in input.
	Calculate(input string) (int, error)

	// CalculateOptional behaves like Calculate; a nil input sums to zero.
	CalculateOptional(input *string) (int, error)
}

// StringStrategy sums the integers of a delimited string.
// It is immutable after construction and safe to share.
type StringStrategy struct {
	delimiters []delimiter.Delimiter
	maxValue   int
}

var _ Strategy = (*StringStrategy)(nil)

// New creates a StringStrategy that tokenizes input with delims in the given order.
// Returns ErrNoDelimiters if delims is empty or contains a nil entry.
func New(delims []delimiter.Delimiter, opts ...Option) (*StringStrategy, error) {
	if len(delims) == 0 || slices.Contains(delims, nil) {
		return nil, ErrNoDelimiters
	}

	s := &StringStrategy{
		delimiters: slices.Clone(delims),
		maxValue:   DefaultMaxValue,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(delims []delimiter.Delimiter, opts ...Option) *StringStrategy {
	s, err := New(delims, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Calculate splits input through the delimiter chain and sums the tokens.
//
// The first token that is not an integer aborts with ErrInvalidDelimiter, the
// first negative number aborts with ErrUnsupportedNumber. Numbers above the
// configured maximum are skipped. Blank input sums to zero.
func (s *StringStrategy) Calculate(input string) (int, error) {
	return s.sum(delimiter.Tokenize(input, s.delimiters...))
}

// CalculateOptional treats a nil input as no tokens at all.
func (s *StringStrategy) CalculateOptional(input *string) (int, error) {
	if input == nil {
		return s.sum(nil)
	}
	return s.Calculate(*input)
}

// Delimiters returns a copy of the configured delimiter chain.
func (s *StringStrategy) Delimiters() []delimiter.Delimiter {
	return slices.Clone(s.delimiters)
}

// MaxValue returns the drop threshold.
func (s *StringStrategy) MaxValue() int {
	return s.maxValue
}

func (s *StringStrategy) sum(tokens []string) (int, error) {
	total := 0
	for i, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, &NumberError{Token: token, Index: i, Err: ErrInvalidDelimiter, Cause: err}
		}
		if n < 0 {
			return 0, &NumberError{Token: token, Index: i, Err: ErrUnsupportedNumber}
		}
		if n > s.maxValue {
			continue
		}
		total += n
	}
	return total, nil
}
