// Package config loads application configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into a struct using `env` and `envDefault` field tags.
//
// # Usage
//
//	type BenchConfig struct {
//	    Cases      int        `env:"CASES" envDefault:"10000"`
//	    Iterations int        `env:"ITERATIONS" envDefault:"1000"`
//	    LogLevel   slog.Level `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg BenchConfig
//	if err := config.Load(&cfg, config.WithPrefix("NIFBENCH_")); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Tests can bypass the process environment with WithEnvironment.
//
// # Error Handling
//
//   - ErrParsingConfig  – a variable could not be parsed or a required one is missing.
//   - ErrLoadingEnvFile – LoadEnv could not read one of the given files.
//   - ErrNilPointer     – nil pointer passed to Load or MustLoad.
package config
