package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/studentcheck/pkg/environment"
	"github.com/dmitrymomot/studentcheck/pkg/i18n"
	"github.com/dmitrymomot/studentcheck/pkg/logger"
	"github.com/dmitrymomot/studentcheck/svc/student"
)

const serviceName = "studentcheck"

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
)

func parseOutput(s string) (outputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(outputText):
		return outputText, nil
	case string(outputJSON):
		return outputJSON, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownOutput, s)
}

// app holds the dependencies shared by every command.
type app struct {
	env      environment.Environment
	logger   *slog.Logger
	messages *student.Messages
	output   outputFormat
}

func newApp(ctx context.Context, cfg Config, c *cli) (*app, error) {
	output, err := parseOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	env := environment.Parse(cfg.Env)
	log, err := newLogger(env, cfg, c)
	if err != nil {
		return nil, err
	}

	adapters := []i18n.TranslationAdapter{localesAdapter()}
	if cfg.LocalesDir != "" {
		adapters = append(adapters, i18n.NewDirectoryAdapter(cfg.LocalesDir))
	}

	messages, err := student.LoadMessages(ctx, cfg.locale(), adapters,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(env == environment.Development),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		env:      env,
		logger:   log,
		messages: messages,
		output:   output,
	}, nil
}

func newLogger(env environment.Environment, cfg Config, c *cli) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(env, serviceName),
		logger.WithOutput(c.stderr),
		logger.WithContextExtractors(environment.LoggerExtractor(), student.LoggerExtractor()),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.Join(errInvalidLogSettings, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, errors.Join(errInvalidLogSettings, err)
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

// context returns ctx carrying the environment and the message catalog.
func (a *app) context(ctx context.Context) context.Context {
	ctx = environment.WithContext(ctx, a.env)
	return student.ContextWithMessages(ctx, a.messages)
}

// text translates a console string.
func (a *app) text(key, def string, args ...string) string {
	return a.messages.Text(key, def, args...)
}

func (a *app) yesNo(v bool) string {
	if v {
		return a.text("cli.yes", "yes")
	}
	return a.text("cli.no", "no")
}
