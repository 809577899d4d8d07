package calculator

// DefaultMaxValue is the largest number that still contributes to the sum.
const DefaultMaxValue = 100

// Option configures a StringStrategy.
type Option func(*StringStrategy)

// WithMaxValue sets the threshold above which numbers are silently dropped.
// Negative numbers are rejected regardless of the threshold.
func WithMaxValue(n int) Option {
	return func(s *StringStrategy) {
		s.maxValue = n
	}
}
