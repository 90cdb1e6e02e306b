package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/studentcheck/pkg/config"
)

type fileConfig struct {
	String   string   `env:"TEST_STRING"`
	Int      int      `env:"TEST_INT"`
	Bool     bool     `env:"TEST_BOOL"`
	Array    []string `env:"TEST_ARRAY" envSeparator:","`
	Quoted   string   `env:"TEST_QUOTED"`
	Priority string   `env:"TEST_PRIORITY"`
	Unique   string   `env:"TEST_UNIQUE"`
}

type defaultsConfig struct {
	Locale string `env:"LOCALE" envDefault:"pt-BR"`
	Output string `env:"OUTPUT" envDefault:"text"`
	Limit  int    `env:"LIMIT" envDefault:"3"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load[defaultsConfig](config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 3, cfg.Limit)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("STUDENTCHECK_LOCALE", "en")
	t.Setenv("STUDENTCHECK_LIMIT", "10")

	cfg, err := config.Load[defaultsConfig](config.WithPrefix("STUDENTCHECK_"))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, "text", cfg.Output)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		cfg, err := config.Load[fileConfig](
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles("testdata/.env.custom"),
		)
		require.NoError(t, err)

		assert.Equal(t, "custom_value", cfg.String)
		assert.Equal(t, 1234, cfg.Int)
		assert.True(t, cfg.Bool)
		assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.Array)
		assert.Equal(t, "quoted value", cfg.Quoted)
	})

	t.Run("earlier files win", func(t *testing.T) {
		cfg, err := config.Load[fileConfig](
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles("testdata/.env.custom", "testdata/.env.override"),
		)
		require.NoError(t, err)

		assert.Equal(t, "custom_value", cfg.String)
		assert.Equal(t, "custom_file_value", cfg.Priority)
		assert.Equal(t, "only_in_override", cfg.Unique)
	})

	t.Run("environment wins over files", func(t *testing.T) {
		cfg, err := config.Load[fileConfig](
			config.WithEnvironment(map[string]string{"TEST_STRING": "from_env"}),
			config.WithEnvFiles("testdata/.env.custom"),
		)
		require.NoError(t, err)
		assert.Equal(t, "from_env", cfg.String)
		assert.Equal(t, 1234, cfg.Int)
	})

	t.Run("missing optional file is skipped", func(t *testing.T) {
		_, err := config.Load[fileConfig](
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles("testdata/.env.missing"),
		)
		assert.NoError(t, err)
	})

	t.Run("missing required file fails", func(t *testing.T) {
		_, err := config.Load[fileConfig](
			config.WithEnvironment(map[string]string{}),
			config.WithRequiredEnvFiles("testdata/.env.missing"),
		)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := config.Load[requiredConfig](config.WithEnvironment(map[string]string{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_InvalidValue(t *testing.T) {
	_, err := config.Load[defaultsConfig](config.WithEnvironment(map[string]string{"LIMIT": "many"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestParse_NilPointer(t *testing.T) {
	err := config.Parse[defaultsConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		cfg := config.MustLoad[defaultsConfig](config.WithEnvironment(map[string]string{}))
		assert.Equal(t, "pt-BR", cfg.Locale)
	})
}
