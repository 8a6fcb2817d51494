package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstrace/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWriter_JSONRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWriter(&buf, logging.Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("trace failed", "error", errors.New("boom"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "trace failed", rec["msg"])
	assert.Equal(t, "boom", rec["err"])
	assert.NotContains(t, rec, "error")
}

func TestNewWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWriter(&buf, logging.Config{Level: "debug"})
	require.NoError(t, err)

	log.Debug("steps", "n", 3)
	assert.Contains(t, buf.String(), "msg=steps n=3")
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml"})
	assert.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mstrace.log")
	log, err := logging.New(logging.Config{Level: "info", Format: "text", File: path, MaxSize: 1})
	require.NoError(t, err)
	log.Info("hello")
	assert.FileExists(t, path)
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { logging.NewNop().Error("ignored") })
}
