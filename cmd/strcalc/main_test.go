package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcalc/pkg/calculator"
	"github.com/dmitrymomot/strcalc/pkg/logger"
)

func TestRun(t *testing.T) {
	strategy, err := newStrategy(Config{MaxValue: calculator.DefaultMaxValue})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(io.Discard))

	require.NoError(t, run(out, log, strategy, samples))

	expected := "Input String is: 1 2 3 4 5 6 7 102\n" +
		"Result is: 28\n" +
		"Input String is: 1 2 3 4 5 6 7 10\n" +
		"Result is: 38\n" +
		"Input String is: 1 2 3 4 5 6 7 102,100\n" +
		"Result is: 128\n" +
		"Input String is: 1 2 3 4 5 6 7 10,200\n" +
		"Result is: 38\n" +
		"Input String is: null\n" +
		"Result is: 0\n" +
		"Input String is: \n" +
		"Result is: 0\n" +
		"Input String is: 1 2 3 4 5 6 7 10,200,-90\n" +
		"Exception occurred for input: 1 2 3 4 5 6 7 10,200,-90 Exception is: " +
		"Negative numbers are not supported: token \"-90\" at position 9\n"
	assert.Equal(t, expected, out.String())
}

func TestRun_InvalidDelimiterPropagates(t *testing.T) {
	strategy, err := newStrategy(Config{MaxValue: calculator.DefaultMaxValue})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(io.Discard))

	err = run(out, log, strategy, []*string{ptr("1;2"), ptr("3")})
	require.ErrorIs(t, err, calculator.ErrInvalidDelimiter)
	assert.NotContains(t, out.String(), "Input String is: 3")
}

func TestNewStrategy_CustomMax(t *testing.T) {
	strategy, err := newStrategy(Config{MaxValue: 5})
	require.NoError(t, err)

	sum, err := strategy.Calculate("1 5,6")
	require.NoError(t, err)
	assert.Equal(t, 6, sum)
}
