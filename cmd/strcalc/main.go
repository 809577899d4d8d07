package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/strcalc"
	"github.com/dmitrymomot/strcalc/pkg/calculator"
	"github.com/dmitrymomot/strcalc/pkg/config"
	"github.com/dmitrymomot/strcalc/pkg/logger"
	"github.com/dmitrymomot/strcalc/pkg/registry"
)

// Config is read from the environment.
type Config struct {
	Env      string `env:"STRCALC_ENV" envDefault:"development"`
	LogLevel string `env:"STRCALC_LOG_LEVEL" envDefault:"info"`
	MaxValue int    `env:"STRCALC_MAX_VALUE" envDefault:"100"`
}

func ptr(s string) *string { return &s }

// samples are printed in order; the last one is expected to fail.
var samples = []*string{
	ptr("1 2 3 4 5 6 7 102"),
	ptr("1 2 3 4 5 6 7 10"),
	ptr("1 2 3 4 5 6 7 102,100"),
	ptr("1 2 3 4 5 6 7 10,200"),
	nil,
	ptr(""),
	ptr("1 2 3 4 5 6 7 10,200,-90"),
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "strcalc"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
	)

	strategy, err := newStrategy(cfg)
	if err != nil {
		log.Error("building strategy", logger.Error(err))
		os.Exit(1)
	}

	if err := run(os.Stdout, log, strategy, samples); err != nil {
		log.Error("calculation failed", logger.Error(err))
		os.Exit(1)
	}
}

// newStrategy returns the default string strategy unless the threshold was overridden.
func newStrategy(cfg Config) (calculator.Strategy, error) {
	if cfg.MaxValue == calculator.DefaultMaxValue {
		return strcalc.Default().MustGet(registry.InputString), nil
	}
	return calculator.New(registry.StringDelimiters(), calculator.WithMaxValue(cfg.MaxValue))
}

func run(w io.Writer, log *slog.Logger, strategy calculator.Strategy, inputs []*string) error {
	log = log.With(logger.Component("demo"), logger.InputType(registry.InputString.String()))

	for _, in := range inputs {
		fmt.Fprintf(w, "Input String is: %s\n", display(in))

		sum, err := strategy.CalculateOptional(in)
		if errors.Is(err, calculator.ErrUnsupportedNumber) {
			fmt.Fprintf(w, "Exception occurred for input: %s Exception is: %v\n", display(in), err)
			log.Warn("unsupported number", logger.Input(display(in)), logger.Error(err))
			continue
		}
		if err != nil {
			return fmt.Errorf("input %s: %w", display(in), err)
		}

		fmt.Fprintf(w, "Result is: %d\n", sum)
		log.Debug("calculated", logger.Input(display(in)), logger.Result(sum))
	}
	return nil
}

func display(in *string) string {
	if in == nil {
		return "null"
	}
	return *in
}
