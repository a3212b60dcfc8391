package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coerce/pkg/config"
	"github.com/dmitrymomot/coerce/pkg/validator"
)

func serverVars() map[string]config.Var {
	return map[string]config.Var{
		"APP_ADDR":  config.EnvDefault(validator.Text(), ":8080"),
		"APP_DEBUG": config.EnvDefault(validator.Boolean(), "false"),
		"APP_TIMEOUT": config.EnvDefault(
			validator.Integer(validator.MinValue(1), validator.MaxValue(60)), "5"),
		"APP_SECRET": config.Env(validator.Text(validator.MinLength(8))),
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("coerces set variables", func(t *testing.T) {
		environ, err := config.LoadEnvironment(serverVars(), config.WithEnvironment(map[string]string{
			"APP_ADDR":    "  :9000 ",
			"APP_DEBUG":   "true",
			"APP_TIMEOUT": "30",
			"APP_SECRET":  "correct horse",
		}))
		require.NoError(t, err)

		assert.Equal(t, 4, environ.Len())
		assert.Equal(t, ":9000", environ.Get("APP_ADDR"))

		debug, ok := config.Value[bool](environ, "APP_DEBUG")
		require.True(t, ok)
		assert.True(t, debug)

		timeout, ok := config.Value[int64](environ, "APP_TIMEOUT")
		require.True(t, ok)
		assert.Equal(t, int64(30), timeout)
	})

	t.Run("applies defaults to unset variables", func(t *testing.T) {
		environ, err := config.LoadEnvironment(serverVars(), config.WithEnvironment(map[string]string{
			"APP_SECRET": "correct horse",
		}))
		require.NoError(t, err)

		assert.Equal(t, ":8080", environ.Get("APP_ADDR"))
		assert.Equal(t, false, environ.Get("APP_DEBUG"))
		assert.Equal(t, int64(5), environ.Get("APP_TIMEOUT"))
	})

	t.Run("optional validator supplies its default", func(t *testing.T) {
		environ, err := config.LoadEnvironment(map[string]config.Var{
			"APP_TZ": config.Env(validator.Optional(validator.Text(), "UTC")),
		}, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, "UTC", environ.Get("APP_TZ"))
	})

	t.Run("collects every failure", func(t *testing.T) {
		_, err := config.LoadEnvironment(serverVars(), config.WithEnvironment(map[string]string{
			"APP_DEBUG":   "yes please",
			"APP_TIMEOUT": "600",
		}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidEnvironment)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, map[string]any{
			"APP_DEBUG":   "Must be a valid boolean.",
			"APP_TIMEOUT": "Must be less than or equal to 60.",
			"APP_SECRET":  "This field is required.",
		}, verr.Description())
	})

	t.Run("invalid default is reported", func(t *testing.T) {
		_, err := config.LoadEnvironment(map[string]config.Var{
			"APP_STARTS": config.EnvDefault(validator.ISODateTime(), "soon"),
		}, config.WithEnvironment(nil))
		require.Error(t, err)

		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, map[string]any{"APP_STARTS": "Must be a valid datetime."}, verr.Description())
	})

	t.Run("missing validator is an error", func(t *testing.T) {
		_, err := config.LoadEnvironment(map[string]config.Var{"APP_X": {}},
			config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestLoadEnvironment_ProcessEnvironment(t *testing.T) {
	t.Setenv("COERCE_TEST_DEADLINE", "2030-01-02T03:04:05Z")

	environ, err := config.LoadEnvironment(map[string]config.Var{
		"COERCE_TEST_DEADLINE": config.Env(validator.ISODateTime()),
	})
	require.NoError(t, err)

	deadline, ok := config.Value[time.Time](environ, "COERCE_TEST_DEADLINE")
	require.True(t, ok)
	assert.True(t, deadline.Equal(time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestMustLoadEnvironment(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoadEnvironment(map[string]config.Var{
			"APP_PORT": config.Env(validator.Integer()),
		}, config.WithEnvironment(map[string]string{"APP_PORT": "http"}))
	})

	assert.NotPanics(t, func() {
		config.MustLoadEnvironment(map[string]config.Var{
			"APP_PORT": config.Env(validator.Integer()),
		}, config.WithEnvironment(map[string]string{"APP_PORT": "8080"}))
	})
}
