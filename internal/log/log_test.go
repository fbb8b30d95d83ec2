package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-dotpath/internal/log"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level, format string
		contains      string
	}{
		"text":   {level: "info", format: log.FormatText, contains: "hello"},
		"logfmt": {level: "info", format: log.FormatLogfmt, contains: "msg=hello"},
		"json":   {level: "info", format: log.FormatJSON, contains: `"msg":"hello"`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			h, err := log.CreateHandler(&buf, tc.level, tc.format)
			require.NoError(t, err)

			slog.New(h).Info("hello", "path", "a.b")
			assert.Contains(t, buf.String(), tc.contains)
			assert.Contains(t, buf.String(), "a.b")
		})
	}
}

func TestCreateHandlerLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h, err := log.CreateHandler(&buf, "warn", log.FormatText)
	require.NoError(t, err)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}

func TestCreateHandlerInvalid(t *testing.T) {
	t.Parallel()

	_, err := log.CreateHandler(&bytes.Buffer{}, "loud", log.FormatText)
	require.ErrorIs(t, err, log.ErrInvalidArgument)

	_, err = log.CreateHandler(&bytes.Buffer{}, "info", "xml")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(log.EnvLevel, "")
	t.Setenv(log.EnvFormat, "")
	assert.Equal(t, log.DefaultLevel, log.LevelFromEnv())
	assert.Equal(t, log.DefaultFormat, log.FormatFromEnv())

	t.Setenv(log.EnvLevel, "debug")
	t.Setenv(log.EnvFormat, "json")
	assert.Equal(t, "debug", log.LevelFromEnv())
	assert.Equal(t, "json", log.FormatFromEnv())
}
