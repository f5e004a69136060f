package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
	environ  map[string]string
}

// WithPrefix only considers variables starting with prefix, e.g. "GTIN_".
// Field tags are written without it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles replaces the default ".env" with the given files.
// Missing files are skipped.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = files }
}

// WithEnviron uses vars instead of the process environment. Intended for tests.
func WithEnviron(vars map[string]string) Option {
	return func(o *options) { o.environ = vars }
}

// Load fills v from .env files and the process environment according to
// its `env` and `envDefault` struct tags. Variables already set in the
// environment take precedence over .env values; .env files never modify
// the process environment.
//
// Example:
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Output   string `env:"OUTPUT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("GTIN_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	vars := make(map[string]string)
	for _, file := range o.envFiles {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, val := range fileVars {
			if _, set := vars[k]; !set {
				vars[k] = val
			}
		}
	}

	environ := o.environ
	if environ == nil {
		environ = processEnviron()
	}
	for k, val := range environ {
		vars[k] = val
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func processEnviron() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}
	return vars
}
