// Package log is the application's logging facade. It wraps logrus so callers
// never import it directly and so tests can redirect output.
package log

import (
	"io"
	"os"
	"strings"

	serr "filedrop/internal/errors"

	"github.com/sirupsen/logrus"
)

// EnvLevel names the environment variable that overrides the log level.
const EnvLevel = "FILEDROP_LOG"

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*options)

type options struct {
	out   io.Writer
	json  bool
	level logrus.Level
}

// WithOutput sends log lines to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// WithLevel sets the minimum level by name ("debug", "info", ...).
// Unknown names leave the level unchanged.
func WithLevel(name string) Option {
	return func(o *options) {
		if lvl, err := logrus.ParseLevel(name); err == nil {
			o.level = lvl
		}
	}
}

// Logger writes leveled, structured log lines.
type Logger struct {
	entry *logrus.Entry
	level logrus.Level
}

// NewLogger creates a logger writing text lines to stderr at info level.
func NewLogger(opts ...Option) *Logger {
	o := &options{out: os.Stderr, level: logrus.InfoLevel}
	for _, opt := range opts {
		opt(o)
	}

	base := logrus.New()
	base.SetOutput(o.out)
	// Filtering happens in enabled() so SetDebug can flip every logger at once.
	base.SetLevel(logrus.TraceLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return &Logger{entry: logrus.NewEntry(base), level: o.level}
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// LevelFromEnv returns the level named by FILEDROP_LOG, or fallback.
func LevelFromEnv(fallback string) string {
	if v := strings.TrimSpace(os.Getenv(EnvLevel)); v != "" {
		return v
	}
	return fallback
}

// SetDebug enables debug output on every logger.
func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), level: l.level}
}

func (l *Logger) enabled(level logrus.Level) bool {
	if level == logrus.DebugLevel && isDebug {
		return true
	}
	return level <= l.level
}

func (l *Logger) log(level logrus.Level, args ...interface{}) {
	if l.enabled(level) {
		l.entry.Log(level, args...)
	}
}

func (l *Logger) logf(level logrus.Level, format string, args ...interface{}) {
	if l.enabled(level) {
		l.entry.Logf(level, format, args...)
	}
}

func (l *Logger) Debug(args ...interface{})                 { l.log(logrus.DebugLevel, args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(logrus.DebugLevel, format, args...) }
func (l *Logger) Info(args ...interface{})                  { l.log(logrus.InfoLevel, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.logf(logrus.InfoLevel, format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.log(logrus.WarnLevel, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logf(logrus.WarnLevel, format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.log(logrus.ErrorLevel, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(logrus.ErrorLevel, format, args...) }

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError attaches err and, for application errors, its kind and path.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger
	}
	fields := []Field{F("error", err.Error())}

	var appErr *serr.ApplicationError
	var fileErr *serr.FileError
	var cfgErr *serr.ConfigError
	switch {
	case serr.As(err, &cfgErr):
		fields = append(fields, F("error_kind", int(cfgErr.Kind())))
		if cfgErr.Param() != "" {
			fields = append(fields, F("param", cfgErr.Param()))
		}
	case serr.As(err, &fileErr):
		fields = append(fields, F("error_kind", int(fileErr.Kind())))
		if fileErr.Path() != "" {
			fields = append(fields, F("path", fileErr.Path()))
		}
	case serr.As(err, &appErr):
		fields = append(fields, F("error_kind", int(appErr.Kind())))
	}
	return logger.With(fields...)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

// Debug logs at debug level.
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Info(args ...interface{}) {
	logger.Info(args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warn logs a warning.
func Warn(args ...interface{}) {
	logger.Warn(args...)
}

// Warnf logs a formatted warning.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error message.
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
