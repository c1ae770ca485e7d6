package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fivetwenty-io/jamendo/internal/logging"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ jamendo.Logger = (*logging.Adapter)(nil)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}

	for input, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(input), input)
	}
}

func TestNew_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, closer := logging.New(logging.Options{Level: "warn", Console: &buf})
	defer func() { _ = closer.Close() }()

	adapter := logging.NewAdapter(logger)
	adapter.Info("hidden", nil)
	adapter.Warn("network error, retry", map[string]interface{}{"attempt": 2})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "network error, retry")
	assert.Contains(t, out, "attempt=2")
}

func TestNew_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jamendo.log")

	logger, closer := logging.New(logging.Options{Level: "debug", File: path})
	adapter := logging.NewAdapter(logger)
	adapter.Debug("HTTP Request", map[string]interface{}{"method": "GET", "path": "/tracks"})
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "HTTP Request", entry["message"])
	assert.Equal(t, "/tracks", entry["path"])
}
