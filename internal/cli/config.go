package cli

import (
	"log/slog"

	"github.com/dmitrymomot/gtinkit/pkg/config"
	"github.com/dmitrymomot/gtinkit/pkg/environment"
	"github.com/dmitrymomot/gtinkit/pkg/logger"
)

// Config is read from GTIN_* environment variables and an optional .env file.
type Config struct {
	Env       environment.Environment `env:"ENV" envDefault:"production"`
	LogLevel  slog.Level              `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat logger.Format           `env:"LOG_FORMAT" envDefault:"text"`
	Output    string                  `env:"OUTPUT" envDefault:"text"`
	Normalize bool                    `env:"NORMALIZE" envDefault:"false"`
}

const envPrefix = "GTIN_"

func loadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(envPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

