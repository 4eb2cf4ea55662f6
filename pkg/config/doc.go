// Package config loads application configuration from environment variables
// and .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Load parses the environment into any struct using `env` field tags.
//     The default `.env` file in the working directory is read once per
//     process when present.
//   - WithPrefix scopes lookups to a variable prefix such as `HUMANID_`.
//   - WithEnvironment parses from an explicit map instead of the process
//     environment, which keeps tests hermetic.
//   - LoadEnv reads explicit .env files. Later files override earlier ones;
//     variables already exported in the process are left untouched.
//
// # Usage
//
//	type Config struct {
//	    Separator  string `env:"SEPARATOR" envDefault:"-"`
//	    Adjectives uint   `env:"ADJECTIVES" envDefault:"1"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("HUMANID_")); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicit .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
