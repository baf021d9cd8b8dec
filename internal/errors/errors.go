// Package errors provides standardized error handling for foldersort.
// It defines the error kinds raised by the directory store and the
// organizer, plus helpers for consistent creation, wrapping and
// classification of filesystem errors.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
	// Join returns an error that wraps the given errors
	Join = errors.Join
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	FileExists
	FileCreateFailed
	FileOperationFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// String returns a short name for the kind, used in log fields.
func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file_not_found"
	case FileAccessDenied:
		return "file_access_denied"
	case InvalidPath:
		return "invalid_path"
	case FileExists:
		return "file_exists"
	case FileCreateFailed:
		return "file_create_failed"
	case FileOperationFailed:
		return "file_operation_failed"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	default:
		return "unknown"
	}
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file and folder operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// FromOS wraps an error returned by the os package into a FileError whose
// kind reflects the underlying cause. Causes it does not recognise become
// FileOperationFailed.
func FromOS(msg, path string, err error) *FileError {
	if err == nil {
		return nil
	}
	return NewFileError(msg, path, kindOf(err), err)
}

func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return FileNotFound
	case errors.Is(err, fs.ErrPermission):
		return FileAccessDenied
	case errors.Is(err, fs.ErrExist):
		return FileExists
	case errors.Is(err, fs.ErrInvalid):
		return InvalidPath
	default:
		return FileOperationFailed
	}
}

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the outermost application error in err's
// chain, or Unknown.
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

func isFileKind(err error, kind ErrorKind) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == kind
	}
	return false
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	return isFileKind(err, FileNotFound)
}

// IsFileAccessDenied checks if the error is a file access denied error
func IsFileAccessDenied(err error) bool {
	return isFileKind(err, FileAccessDenied)
}

// IsFileExists checks if the error reports an already existing path
func IsFileExists(err error) bool {
	return isFileKind(err, FileExists)
}

// IsInvalidPath checks if the error is an invalid path error
func IsInvalidPath(err error) bool {
	return isFileKind(err, InvalidPath)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
