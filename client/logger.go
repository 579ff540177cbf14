package client

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLogLevel converts a string to a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Field represents a structured log field.
type Field struct {
	Key   string
	Value interface{}
}

// Helper functions for creating fields
func String(key, val string) Field          { return Field{Key: key, Value: val} }
func Int(key string, val int) Field         { return Field{Key: key, Value: val} }
func Int64(key string, val int64) Field     { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }
func Bool(key string, val bool) Field       { return Field{Key: key, Value: val} }
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}
func Error(key string, err error) Field {
	if err == nil {
		return Field{Key: key, Value: nil}
	}
	return Field{Key: key, Value: err.Error()}
}

// Logger is the interface for structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithFields(fields ...Field) Logger
}

// defaultLogger implements Logger on top of zap with a JSON encoder.
type defaultLogger struct {
	z     *zap.Logger
	level zap.AtomicLevel
}

// NewLogger creates a new default logger with the specified level and output.
func NewLogger(level string, output io.Writer) Logger {
	if output == nil {
		output = os.Stdout
	}

	atom := zap.NewAtomicLevelAt(ParseLogLevel(level).zapLevel())
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(output), atom)
	return &defaultLogger{z: zap.New(core), level: atom}
}

// NewZapLogger adapts an existing zap logger. SetLevel can only raise the
// level above the one the caller's core was built with; lower levels stay
// filtered by that core.
func NewZapLogger(z *zap.Logger) Logger {
	atom := zap.NewAtomicLevelAt(zapcore.LevelOf(z.Core()))
	return &defaultLogger{z: z.WithOptions(zap.IncreaseLevel(atom)), level: atom}
}

// NewDefaultLogger creates a logger with INFO level writing to stdout.
func NewDefaultLogger() Logger {
	return NewLogger("INFO", os.Stdout)
}

func (l *defaultLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, zapFields(fields)...) }
func (l *defaultLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, zapFields(fields)...) }
func (l *defaultLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, zapFields(fields)...) }
func (l *defaultLogger) Error(msg string, fields ...Field) { l.z.Error(msg, zapFields(fields)...) }

func (l *defaultLogger) WithFields(fields ...Field) Logger {
	return &defaultLogger{z: l.z.With(zapFields(fields)...), level: l.level}
}

// SetLevel changes the minimum level at runtime.
func (l *defaultLogger) SetLevel(level string) {
	l.level.SetLevel(ParseLogLevel(level).zapLevel())
}

func zapFields(fields []Field) []zap.Field {
	fields = redactSensitiveFields(fields)
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

// redactSensitiveFields masks values for sensitive keys.
func redactSensitiveFields(fields []Field) []Field {
	sensitiveKeys := map[string]bool{
		"password":      true,
		"token":         true,
		"secret":        true,
		"authorization": true,
		"api_key":       true,
		"apikey":        true,
		"auth":          true,
		"custom_vars":   true,
	}

	result := make([]Field, len(fields))
	for i, field := range fields {
		key := strings.ToLower(field.Key)
		if sensitiveKeys[key] {
			result[i] = Field{Key: field.Key, Value: "[REDACTED]"}
		} else {
			result[i] = field
		}
	}

	return result
}

// noopLogger implements Logger but does nothing.
type noopLogger struct{}

func (n *noopLogger) Debug(msg string, fields ...Field) {}
func (n *noopLogger) Info(msg string, fields ...Field)  {}
func (n *noopLogger) Warn(msg string, fields ...Field)  {}
func (n *noopLogger) Error(msg string, fields ...Field) {}
func (n *noopLogger) WithFields(fields ...Field) Logger { return n }

// NewNoopLogger creates a logger that discards all output.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

type contextKey string

const requestIDKey contextKey = "requestID"

// WithRequestID returns a context whose operations use id as request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestIDField extracts request ID from context and returns it as a Field.
func RequestIDField(ctx context.Context) Field {
	if id := RequestIDFromContext(ctx); id != "" {
		return Field{Key: "request_id", Value: id}
	}
	return Field{Key: "request_id", Value: "unknown"}
}
