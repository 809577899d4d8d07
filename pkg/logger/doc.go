// Package logger builds *slog.Logger instances for strcalc binaries.
//
// New creates a logger configured by Option functions: output format (text or
// json), minimum level, output writer and static attributes. Environment
// presets pick sensible defaults:
//
//   - WithDevelopment: text output at debug level
//   - WithProduction: json output at info level
//   - WithEnvironment: chooses one of the above by name
//
// Helper constructors in attr.go (Error, Component, Input, Result, ...) keep
// attribute keys consistent across the code base.
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "strcalc"))
//	log.Info("calculated", logger.Input(in), logger.Result(sum))
//
// The library packages never log; only commands do.
package logger
