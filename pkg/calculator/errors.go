package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDelimiters is returned when a strategy is constructed without delimiters.
	ErrNoDelimiters = errors.New("delimiterList can't be null or empty")

	// ErrInvalidDelimiter is returned when a token left after splitting is not an integer,
	// which means the input contained a separator the strategy does not know about.
	ErrInvalidDelimiter = errors.New("Invalid Delimiter found between valid numbers")

	// ErrUnsupportedNumber is returned when the input contains a negative number.
	ErrUnsupportedNumber = errors.New("Negative numbers are not supported")
)

// NumberError describes the token that aborted a calculation.
// It unwraps to ErrInvalidDelimiter or ErrUnsupportedNumber, and to the
// strconv error when parsing failed.
type NumberError struct {
	Token string // offending token as produced by the delimiter chain
	Index int    // position of the token among the non-empty tokens
	Err   error
	Cause error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%v: token %q at position %d", e.Err, e.Token, e.Index)
}

func (e *NumberError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
