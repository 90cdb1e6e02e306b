package main

import (
	"github.com/dmitrymomot/studentcheck/pkg/config"
	"github.com/dmitrymomot/studentcheck/pkg/i18n"
)

// Config is read from the environment and an optional dotenv file.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Locale     string `env:"STUDENTCHECK_LOCALE"`
	LocalesDir string `env:"STUDENTCHECK_LOCALES_DIR"`
	Output     string `env:"STUDENTCHECK_OUTPUT" envDefault:"text"`

	// SystemLocale is the POSIX locale, used when no locale is configured.
	SystemLocale string `env:"LANG"`
}

// loadConfig reads configuration from vars, or from the process environment
// when vars is nil. envFile values sit underneath either source.
func loadConfig(envFile string, vars map[string]string) (Config, error) {
	var opts []config.Option
	if envFile != "" {
		opts = append(opts, config.WithEnvFiles(envFile))
	}
	if vars != nil {
		opts = append(opts, config.WithEnvironment(vars))
	}
	return config.Load[Config](opts...)
}

// locale returns the configured locale, falling back to the system locale.
func (c Config) locale() string {
	if c.Locale != "" {
		return c.Locale
	}
	return i18n.NormalizeLocale(c.SystemLocale)
}
