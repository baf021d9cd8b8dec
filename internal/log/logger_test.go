package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foldersort/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(WithOutput(&buf)).Debug("debug message")
	assert.Empty(t, buf.String())

	l := NewLogger(WithOutput(&buf), WithLevel("debug"))
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithLevel("warn"))

	l.Info("quiet")
	assert.Empty(t, buf.String())
	l.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	output = buf.String()
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured json")

	var logEntry map[string]interface{}
	err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry)
	require.NoError(t, err)

	assert.Equal(t, "info", logEntry["level"])
	assert.Equal(t, "structured json", logEntry["message"])
	assert.Contains(t, logEntry, "timestamp")
	assert.Equal(t, "value1", logEntry["key1"])
	assert.Equal(t, float64(123), logEntry["key2"])
}

func TestJSONErrorKind(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	err := errors.NewFileError("invalid folder name", "../x", errors.InvalidPath, nil)
	l.WithError(err).Error("Cannot create folder")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))

	assert.Equal(t, "invalid_path", logEntry["error_kind"])
	assert.Equal(t, "../x", logEntry["path"])
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	stdErr := fmt.Errorf("standard error")
	l.With(F("error", stdErr.Error())).Error("error occurred")
	assert.Contains(t, buf.String(), "standard error")
	buf.Reset()

	appErr := errors.New("application error")
	l.WithError(appErr).Error("app error occurred")
	output := buf.String()
	assert.Contains(t, output, "application error")
	assert.Contains(t, output, "error_kind=unknown")
	buf.Reset()

	fileErr := errors.NewFileError("file error", "/path/to/file", errors.FileNotFound, nil)
	l.WithError(fileErr).Error("file error occurred")
	output = buf.String()
	assert.Contains(t, output, "file error: /path/to/file")
	assert.Contains(t, output, "path=/path/to/file")
	assert.Contains(t, output, "error_kind=file_not_found")
	buf.Reset()

	configErr := errors.NewConfigError("config error", "base", errors.InvalidConfig, fileErr)
	l.WithError(configErr).Error("nested error occurred")
	output = buf.String()
	assert.Contains(t, output, "config error: base: file error: /path/to/file")
	assert.Contains(t, output, "param=base")
	assert.Contains(t, output, "error_kind=invalid_config")
	buf.Reset()

	l.With(errorFields(fileErr)...).Error("error fields")
	assert.Contains(t, buf.String(), "error fields")
	assert.Contains(t, buf.String(), "path=/path/to/file")
	buf.Reset()

	l.WithError(nil).Error("nil error test")
	assert.Contains(t, buf.String(), "error=\"<nil>\"")
}

func TestFileOutput(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "foldersort.log")

	l := NewLogger(WithOutput(&buf), WithFile(logPath))
	defer l.Close()

	l.Info("file test message")

	assert.Contains(t, buf.String(), "file test message")
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file test message")
}

func TestConfigure(t *testing.T) {
	originalLogger := logger
	defer func() { logger = originalLogger }()

	var buf bytes.Buffer
	Configure(WithOutput(&buf), WithJSON())
	Default().Info("global config test")

	var logEntry map[string]interface{}
	err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry)
	require.NoError(t, err)
	assert.Equal(t, "global config test", logEntry["message"])
}
