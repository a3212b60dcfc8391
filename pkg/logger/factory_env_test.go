package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coerce/pkg/environment"
	"github.com/dmitrymomot/coerce/pkg/logger"
	"github.com/dmitrymomot/coerce/pkg/validator"
)

func TestPresets(t *testing.T) {
	t.Run("development logs text at debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment("notes"), logger.WithOutput(buf))
		log.Debug("seeded store")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=notes")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production logs json at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithProduction("notes"), logger.WithOutput(buf))
		log.Debug("dropped")
		log.Info("kept")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("empty service name is ignored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithStaging(""), logger.WithOutput(buf))
		log.Info("plain")
		assert.NotContains(t, buf.String(), "service")
	})

	t.Run("explicit level after preset wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithDevelopment("notes"),
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(buf),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env       environment.Environment
		wantEnv   string
		wantLevel string
	}{
		{"prod", "production", "INFO"},
		{environment.Staging, "staging", "INFO"},
		{"dev", "development", "DEBUG"},
		{"unknown", "development", "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithEnvironment(tt.env, "notes"),
				logger.WithOutput(buf),
				logger.WithJSONFormatter(),
			)
			log.Debug("debug")
			log.Info("info")

			var entry map[string]any
			line := bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0]
			require.NoError(t, json.Unmarshal(line, &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantEnv, entry["env"])
			assert.Equal(t, "notes", entry["service"])
		})
	}
}

func TestEnvironmentExtractor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	)

	ctx := environment.WithContext(t.Context(), environment.Staging)
	log.InfoContext(ctx, "msg")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "staging", entry["env"])
}

func TestLevelValidator(t *testing.T) {
	t.Parallel()
	v := logger.LevelValidator()

	valid := []struct {
		raw  any
		want any
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error+2", slog.LevelError + 2},
		{slog.LevelWarn, slog.LevelWarn},
		{"", nil},
		{nil, nil},
	}
	for _, tc := range valid {
		got, err := v.Validate(tc.raw)
		require.NoError(t, err, "raw %#v", tc.raw)
		assert.Equal(t, tc.want, got, "raw %#v", tc.raw)
	}

	_, err := v.Validate("loud")
	verr := validator.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, validator.KindValue, verr.Kind)

	_, err = v.Validate(42)
	verr = validator.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, validator.KindType, verr.Kind)
}
