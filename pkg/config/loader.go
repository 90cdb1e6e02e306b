package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load and Parse.
type Option func(*options)

type options struct {
	prefix       string
	envFiles     []string
	requireFiles bool
	environment  map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "STUDENTCHECK_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles reads dotenv files before parsing. Earlier files take
// precedence over later ones and the process environment over all of them.
// Missing files are skipped.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, paths...) }
}

// WithRequiredEnvFiles is WithEnvFiles that fails when a file is missing.
func WithRequiredEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
		o.requireFiles = true
	}
}

// WithEnvironment parses from the given map instead of the process
// environment. Env files are still merged underneath it.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load parses a new T from the environment.
func Load[T any](opts ...Option) (T, error) {
	var cfg T
	err := Parse(&cfg, opts...)
	return cfg, err
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// Parse fills v from the environment.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars, err := o.collect()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// collect builds the variable set: file values first, then the explicit
// or process environment on top.
func (o *options) collect() (map[string]string, error) {
	vars := make(map[string]string)

	for i := len(o.envFiles) - 1; i >= 0; i-- {
		values, err := godotenv.Read(o.envFiles[i])
		if err != nil {
			if !o.requireFiles && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", o.envFiles[i], err))
		}
		for k, val := range values {
			vars[k] = val
		}
	}

	environment := o.environment
	if environment == nil {
		environment = env.ToMap(os.Environ())
	}
	for k, val := range environment {
		vars[k] = val
	}

	return vars, nil
}
