package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etchedjs/dispatcher/pkg/config"
)

type appConfig struct {
	Name  string   `env:"CONFIG_TEST_NAME" envDefault:"default_name"`
	Limit int      `env:"CONFIG_TEST_LIMIT" envDefault:"10"`
	Tags  []string `env:"CONFIG_TEST_TAGS" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_TOKEN,required"`
}

type fileConfig struct {
	Name       string   `env:"CONFIG_TEST_NAME"`
	Limit      int      `env:"CONFIG_TEST_LIMIT"`
	Tags       []string `env:"CONFIG_TEST_TAGS" envSeparator:","`
	SecondOnly string   `env:"CONFIG_TEST_SECOND_ONLY"`
}

func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_TEST_NAME", "CONFIG_TEST_LIMIT", "CONFIG_TEST_TAGS",
		"CONFIG_TEST_TOKEN", "CONFIG_TEST_SECOND_ONLY",
	} {
		require.NoError(t, os.Unsetenv(key))
	}
	config.ResetCache()
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_name", cfg.Name)
	assert.Equal(t, 10, cfg.Limit)
	assert.Empty(t, cfg.Tags)
}

func TestLoad_FromEnvironment(t *testing.T) {
	unsetAll(t)
	t.Setenv("CONFIG_TEST_NAME", "orders")
	t.Setenv("CONFIG_TEST_LIMIT", "3")
	t.Setenv("CONFIG_TEST_TAGS", "x,y")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "orders", cfg.Name)
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, []string{"x", "y"}, cfg.Tags)
}

func TestLoad_Cached(t *testing.T) {
	unsetAll(t)
	t.Setenv("CONFIG_TEST_NAME", "first")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)

	t.Setenv("CONFIG_TEST_NAME", "second")

	var again appConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name, "cached value should be returned")

	var reloaded appConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "second", reloaded.Name)
}

func TestLoad_MissingRequired(t *testing.T) {
	unsetAll(t)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})

	t.Setenv("CONFIG_TEST_TOKEN", "secret")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "secret", cfg.Token)
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[appConfig](nil), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReload[appConfig](nil), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	t.Run("earlier files take precedence", func(t *testing.T) {
		unsetAll(t)
		t.Cleanup(func() { unsetAll(t) })

		require.NoError(t, config.LoadEnv("testdata/.env.first", "testdata/.env.second"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 7, cfg.Limit)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
		assert.Equal(t, "yes", cfg.SecondOnly)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does_not_exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

		assert.Panics(t, func() {
			config.MustLoadEnv("testdata/does_not_exist.env")
		})
		assert.NotPanics(t, func() {
			config.MustLoadEnv("testdata/.env.second")
		})
		unsetAll(t)
	})
}
