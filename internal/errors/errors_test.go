package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot access", "/path/to/file", FileAccessDenied, nil)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/path/to/file", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	notFoundErr := NewFileError("file not found", "/missing/file", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFoundErr))
	assert.False(t, IsFileNotFound(fileErr))
	assert.True(t, IsFileAccessDenied(fileErr))
	assert.False(t, IsFileAccessDenied(notFoundErr))
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "log_level", InvalidConfig, nil)
	assert.Equal(t, "invalid value: log_level", configErr.Error())
	assert.Equal(t, "log_level", configErr.Param())

	origErr := fmt.Errorf("unknown level")
	configErr = NewConfigError("invalid value", "log_level", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: log_level: unknown level", configErr.Error())

	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("some other error")))

	var ce *ConfigError
	assert.True(t, As(configErr, &ce))
	assert.Equal(t, "log_level", ce.Param())
}

func TestFromOS(t *testing.T) {
	dir := t.TempDir()

	_, statErr := os.Stat(filepath.Join(dir, "missing"))
	require.Error(t, statErr)

	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"not exist", statErr, FileNotFound},
		{"permission", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, FileAccessDenied},
		{"exist", &fs.PathError{Op: "mkdir", Path: "/x", Err: fs.ErrExist}, FileExists},
		{"invalid", fs.ErrInvalid, InvalidPath},
		{"other", errors.New("disk on fire"), FileOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileErr := FromOS("operation failed", "/x", tt.err)
			require.NotNil(t, fileErr)
			assert.Equal(t, tt.kind, fileErr.Kind())
			assert.Equal(t, tt.kind, KindOf(fileErr))
			assert.True(t, Is(fileErr, tt.err))
		})
	}

	assert.Nil(t, FromOS("noop", "/x", nil))
}

func TestErrorChains(t *testing.T) {
	baseErr := errors.New("base error")
	fileErr := NewFileError("file error", "/path/to/file", FileNotFound, baseErr)
	configErr := NewConfigError("config error", "base", InvalidConfig, fileErr)

	assert.Equal(t, "config error: base: file error: /path/to/file: base error", configErr.Error())
	assert.True(t, Is(configErr, baseErr))
	assert.True(t, IsFileNotFound(configErr))
	assert.True(t, IsInvalidConfig(configErr))
	assert.Equal(t, InvalidConfig, KindOf(configErr))
	assert.Equal(t, Unknown, KindOf(baseErr))
	assert.Equal(t, "file_not_found", FileNotFound.String())
}
