// Package config loads typed configuration structs from environment variables
// and optional .env files.
//
// Parsing is delegated to github.com/caarlos0/env/v11, so every feature of
// its struct tags (env, envDefault, required, custom TextUnmarshaler types)
// is available. .env files are read with github.com/joho/godotenv without
// touching the process environment; real environment variables override
// values from files, and earlier files win over later ones.
//
// # Usage
//
//	type Config struct {
//		LogLevel  slog.Level              `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat string                  `env:"LOG_FORMAT" envDefault:"text"`
//		Env       environment.Environment `env:"ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("GTIN_"))
//
// # Errors
//
// Load returns ErrNilPointer for a nil target and wraps env-file and parsing
// failures with ErrReadingEnvFile and ErrParsingConfig, so callers can use
// errors.Is.
package config
