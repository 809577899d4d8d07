package calculator_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/dmitrymomot/strcalc/pkg/calculator"
	"github.com/dmitrymomot/strcalc/pkg/delimiter"
)

func BenchmarkStringStrategy_Calculate(b *testing.B) {
	s := calculator.MustNew([]delimiter.Delimiter{delimiter.Comma(), delimiter.Space()})

	parts := make([]string, 0, 200)
	for i := range 200 {
		parts = append(parts, strconv.Itoa(i))
	}
	input := strings.Join(parts[:100], ",") + " " + strings.Join(parts[100:], " ")

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := s.Calculate(input); err != nil {
			b.Fatal(err)
		}
	}
}
