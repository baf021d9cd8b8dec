// Package log wraps logrus with the small structured-logging surface used
// across foldersort: leveled helpers, key/value fields and error-aware
// entries.
package log

import (
	"fmt"
	"io"
	"os"

	apperrors "foldersort/internal/errors"

	"github.com/sirupsen/logrus"
)

var logger = NewLogger()

// Field is a single structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logging is the logger contract handed to components.
type Logging interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	With(fields ...Field) Logging
	WithError(err error) Logging
}

// Logger is a logrus-backed Logging implementation.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

type options struct {
	out   io.Writer
	json  bool
	file  string
	level logrus.Level
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sends log lines to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithJSON switches to JSON formatted entries.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// WithFile additionally appends every entry to the file at path.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithLevel sets the minimum level ("debug", "info", "warn", "error").
// Unknown names leave the default info level in place.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// NewLogger creates a Logger writing to stdout at info level unless
// options say otherwise.
func NewLogger(opts ...Option) *Logger {
	o := options{out: os.Stdout, level: logrus.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	base.SetLevel(o.level)

	l := &Logger{}
	out := o.out
	if o.file != "" {
		f, err := os.OpenFile(o.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", o.file, err)
		} else {
			l.file = f
			out = io.MultiWriter(o.out, f)
		}
	}
	base.SetOutput(out)

	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg:  "message",
				logrus.FieldKeyTime: "timestamp",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.entry = logrus.NewEntry(base)
	return l
}

// Close releases the log file opened by WithFile, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) Logging {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(lf), file: l.file}
}

// WithError returns a child logger describing err.
func (l *Logger) WithError(err error) Logging {
	return l.With(errorFields(err)...)
}

// errorFields describes err as log fields: its message, its kind and the
// path or parameter it refers to.
func errorFields(err error) []Field {
	if err == nil {
		return []Field{F("error", "<nil>")}
	}
	fields := []Field{
		F("error", err.Error()),
		F("error_kind", apperrors.KindOf(err).String()),
	}
	var fileErr *apperrors.FileError
	if apperrors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *apperrors.ConfigError
	if apperrors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	return fields
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	old := logger
	logger = NewLogger(opts...)
	if old != nil {
		old.Close()
	}
}

// Default returns the package-level logger.
func Default() *Logger {
	return logger
}
