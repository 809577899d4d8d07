// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 and caches every successfully parsed
// configuration type, so each struct is parsed once per process:
//
//	type Config struct {
//	    Env      string `env:"STRCALC_ENV" envDefault:"development"`
//	    MaxValue int    `env:"STRCALC_MAX_VALUE" envDefault:"100"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Values are read from the process environment only; there is no file
// loading.
//
// # Error Handling
//
//   - ErrParsingConfig - env vars could not be parsed into the struct.
//   - ErrConfigNotLoaded - a previous parse of the same type failed.
//   - ErrNilPointer - nil pointer passed to Load/MustLoad.
//
// # Testing Helpers
//
// ResetCache clears all cached configs; ForceReload re-parses one type after
// the environment changed.
package config
