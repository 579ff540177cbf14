package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("INFO", &buf)

	logger.Info("operation completed", String("operation", "READ"), Int("size", 3))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "operation completed", entry["message"])
	assert.Equal(t, "READ", entry["operation"])
	assert.EqualValues(t, 3, entry["size"])
	assert.Contains(t, entry, "timestamp")
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("WARN", &buf)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	logger.(*defaultLogger).SetLevel("DEBUG")
	logger.Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")
}

func TestLoggerRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("DEBUG", &buf).WithFields(String("password", "hunter2"))

	logger.Info("login", String("Token", "abc"), String("user", "admin"))

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "abc")
	assert.Contains(t, out, "[REDACTED]")
	assert.Contains(t, out, "admin")
}

func TestErrorField(t *testing.T) {
	assert.Nil(t, Error("error", nil).Value)
	assert.Equal(t, "boom", Error("error", errors.New("boom")).Value)
	assert.Equal(t, "1s", Duration("d", 1e9).Value)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLogLevel("debug"))
	assert.Equal(t, ERROR, ParseLogLevel("ERROR"))
	assert.Equal(t, INFO, ParseLogLevel("nonsense"))
}

func TestDigestIsStable(t *testing.T) {
	assert.Equal(t, Digest("abc"), Digest("abc"))
	assert.NotEqual(t, Digest("abc"), Digest("abd"))
	assert.NotEmpty(t, Digest(""))
}

func TestZapLoggerSetLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("filtered by the core")
	logger.Info("kept")
	assert.Equal(t, 1, logs.Len())

	logger.(*defaultLogger).SetLevel("ERROR")
	logger.Warn("now filtered")
	logger.Error("kept")
	assert.Equal(t, 2, logs.Len())

	logger.(*defaultLogger).SetLevel("DEBUG")
	logger.Debug("still below the core level")
	logger.Info("kept again")
	assert.Equal(t, 3, logs.Len())
}
