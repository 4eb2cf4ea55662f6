package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/humanids/pkg/config"
)

type testConfig struct {
	Separator  string `env:"SEPARATOR" envDefault:"-"`
	Adjectives uint   `env:"ADJECTIVES" envDefault:"1"`
	Adverb     bool   `env:"ADVERB"`
	Format     string `env:"FORMAT" envDefault:"text"`
}

type requiredConfig struct {
	Addr string `env:"ADDR,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.Separator)
	assert.Equal(t, uint(1), cfg.Adjectives)
	assert.False(t, cfg.Adverb)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_Prefix(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg,
		config.WithPrefix("HUMANID_"),
		config.WithEnvironment(map[string]string{
			"HUMANID_SEPARATOR":  "_",
			"HUMANID_ADJECTIVES": "2",
			"HUMANID_ADVERB":     "true",
			"SEPARATOR":          "ignored",
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, "_", cfg.Separator)
	assert.Equal(t, uint(2), cfg.Adjectives)
	assert.True(t, cfg.Adverb)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("HUMANID_PROC_SEPARATOR", "+")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("HUMANID_PROC_")))
	assert.Equal(t, "+", cfg.Separator)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		err := config.Load(cfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"ADJECTIVES": "many"}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("must load panics", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
		})
	})
}

func TestLoadEnv(t *testing.T) {
	keys := []string{"HUMANID_TEST_SEPARATOR", "HUMANID_TEST_ADJECTIVES", "HUMANID_TEST_ADVERB", "HUMANID_TEST_FORMAT"}
	unset := func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	}
	unset()
	t.Cleanup(unset)

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("HUMANID_TEST_")))

	assert.Equal(t, ".", cfg.Separator, "later files override earlier ones")
	assert.Equal(t, uint(3), cfg.Adjectives)
	assert.True(t, cfg.Adverb)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadEnv_ProcessWins(t *testing.T) {
	t.Setenv("HUMANID_TEST_SEPARATOR", "~")

	require.NoError(t, config.LoadEnv("testdata/.env.override"))
	t.Cleanup(func() { os.Unsetenv("HUMANID_TEST_FORMAT") })

	assert.Equal(t, "~", os.Getenv("HUMANID_TEST_SEPARATOR"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
}
