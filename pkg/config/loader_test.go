package config_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/pkg/config"
)

type defaultsConfig struct {
	AppName  string        `env:"CAMPKIT_TEST_APP_NAME" envDefault:"campkit"`
	PageSize int           `env:"CAMPKIT_TEST_DEFAULT_PAGE" envDefault:"10"`
	Timeout  time.Duration `env:"CAMPKIT_TEST_TIMEOUT" envDefault:"10s"`
}

type singletonConfig struct {
	Lang string `env:"CAMPKIT_TEST_LANG" envDefault:"fr"`
}

type requiredConfig struct {
	Secret string `env:"CAMPKIT_TEST_SECRET,required"`
}

type envFileConfig struct {
	APIURL   string   `env:"CAMPKIT_TEST_API_URL"`
	PageSize int      `env:"CAMPKIT_TEST_PAGE_SIZE"`
	Langs    []string `env:"CAMPKIT_TEST_LANGS" envSeparator:","`
}

type nested struct {
	Inner defaultsConfig
	Lang  singletonConfig
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("CAMPKIT_TEST_APP_NAME")
	os.Unsetenv("CAMPKIT_TEST_DEFAULT_PAGE")
	os.Unsetenv("CAMPKIT_TEST_TIMEOUT")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "campkit", cfg.AppName)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("CAMPKIT_TEST_LANG", "en")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CAMPKIT_TEST_LANG", "fr")

	var second singletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "en", second.Lang, "second load should be served from cache")

	require.NoError(t, config.ForceReload(&second))
	assert.Equal(t, "fr", second.Lang)
}

func TestLoad_NestedStructs(t *testing.T) {
	t.Setenv("CAMPKIT_TEST_DEFAULT_PAGE", "30")

	var cfg nested
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, 30, cfg.Inner.PageSize)
}

func TestLoad_MissingRequiredCanBeRetried(t *testing.T) {
	os.Unsetenv("CAMPKIT_TEST_SECRET")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))

	t.Setenv("CAMPKIT_TEST_SECRET", "s3cr3t")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "s3cr3t", cfg.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("CAMPKIT_TEST_SECRET")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("CAMPKIT_TEST_API_URL")
		os.Unsetenv("CAMPKIT_TEST_PAGE_SIZE")
		os.Unsetenv("CAMPKIT_TEST_LANGS")
	})

	t.Run("custom file", func(t *testing.T) {
		config.ResetCache()
		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg envFileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.org", cfg.APIURL)
		assert.Equal(t, 25, cfg.PageSize)
		assert.Equal(t, []string{"fr", "en"}, cfg.Langs)
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		config.ResetCache()
		require.NoError(t, config.LoadEnv("testdata/.env.test", "testdata/.env.override"))

		var cfg envFileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 50, cfg.PageSize)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	})
}
