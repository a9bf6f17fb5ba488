package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coelacanthushex/ligstyle/internal/log"
)

func TestNewHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		"error":   {input: "error", want: slog.LevelError},
		"warn":    {input: "warn", want: slog.LevelWarn},
		"warning": {input: "WARNING", want: slog.LevelWarn},
		"info":    {input: "Info", want: slog.LevelInfo},
		"debug":   {input: "debug", want: slog.LevelDebug},
		"unknown": {input: "trace", wantErr: true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.NewHandler(&bytes.Buffer{}, tc.input, "json")
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)
				return
			}
			require.NoError(t, err)
			assert.True(t, h.Enabled(context.Background(), tc.want))
			assert.False(t, h.Enabled(context.Background(), tc.want-1))
		})
	}
}

func TestNewHandler_AllListedNamesAccepted(t *testing.T) {
	t.Parallel()

	for _, lvl := range log.AllLevels {
		for _, f := range log.AllFormats {
			h, err := log.NewHandler(&bytes.Buffer{}, lvl, strings.ToUpper(f))
			require.NoError(t, err, "%s/%s", lvl, f)
			assert.NotNil(t, h)
		}
	}
}

func TestNewHandler_Formats(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h, err := log.NewHandler(&buf, "info", "json")
		require.NoError(t, err)

		logger := slog.New(h)
		logger.Debug("hidden")
		logger.Info("wrote userstyle", "rules", 42)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "wrote userstyle", entry["msg"])
		assert.InDelta(t, 42, entry["rules"], 0)
	})

	t.Run("logfmt", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h, err := log.NewHandler(&buf, "warn", "logfmt")
		require.NoError(t, err)

		logger := slog.New(h)
		logger.Info("hidden")
		logger.Warn("stale", "path", "a.user.css")
		assert.Contains(t, buf.String(), "msg=stale path=a.user.css")
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h, err := log.NewHandler(&buf, "debug", "text")
		require.NoError(t, err)

		slog.New(h).Debug("expanded catalogue", "tags", 19)
		assert.Contains(t, buf.String(), "ligstyle")
		assert.Contains(t, buf.String(), "expanded catalogue")
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := log.NewHandler(&bytes.Buffer{}, "loud", "text")
		require.ErrorIs(t, err, log.ErrInvalidArgument)
		require.ErrorIs(t, err, log.ErrUnknownLogLevel)

		_, err = log.NewHandler(&bytes.Buffer{}, "info", "xml")
		require.ErrorIs(t, err, log.ErrUnknownLogFormat)
	})
}
