// Package flexlog wraps zap with the engine's own sink and field
// conventions, grounded on logging/logger.go: a console encoder on stderr
// by default, structured JSON when Config.JSON is set, and a rotating
// file sink via
// lumberjack. The profile/middleware/throttling/policy machinery of the
// original is dropped — a scoring CLI has no multi-tenant log pipeline to
// govern, see DESIGN.md.
package flexlog

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink rotates a log file via lumberjack.
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// Config configures a Logger.
type Config struct {
	Service      string
	DefaultLevel Severity
	JSON         bool // false => human-readable console encoder on stderr
	File         *FileSink
	StaticFields map[string]any
}

// Logger wraps a zap.Logger with the engine's field conventions.
type Logger struct {
	zap         *zap.Logger
	atomicLevel zap.AtomicLevel
}

// New builds a Logger from Config. Always includes a stderr sink; adds a
// rotating file sink when Config.File is set.
func New(cfg Config) (*Logger, error) {
	if cfg.Service == "" {
		return nil, fmt.Errorf("flexlog: Config.Service is required")
	}
	if cfg.DefaultLevel == "" {
		cfg.DefaultLevel = INFO
	}

	atomicLevel := zap.NewAtomicLevelAt(cfg.DefaultLevel.ToZapLevel())

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    severityEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if cfg.JSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), atomicLevel),
	}

	if cfg.File != nil {
		lumber := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxAge:     cfg.File.MaxAgeDays,
			MaxBackups: cfg.File.MaxBackups,
			Compress:   cfg.File.Compress,
		}
		fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(lumber), atomicLevel))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}

	fields := make([]zap.Field, 0, len(cfg.StaticFields)+1)
	fields = append(fields, zap.String("service", cfg.Service))
	for k, v := range cfg.StaticFields {
		fields = append(fields, zap.Any(k, v))
	}
	opts = append(opts, zap.Fields(fields...))

	return &Logger{
		zap:         zap.New(zapcore.NewTee(cores...), opts...),
		atomicLevel: atomicLevel,
	}, nil
}

// NewCLI returns a Logger tuned for interactive CLI use: human-readable
// console output on stderr only, INFO level.
func NewCLI(service string) (*Logger, error) {
	return New(Config{Service: service, DefaultLevel: INFO, JSON: false})
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.zap.Fatal(msg, fields...) }

// WithFields returns a derived Logger carrying additional structured fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return &Logger{zap: l.zap.With(zapFields...), atomicLevel: l.atomicLevel}
}

// WithError returns a derived Logger carrying an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{zap: l.zap.With(zap.Error(err)), atomicLevel: l.atomicLevel}
}

// WithComponent returns a derived Logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zap: l.zap.With(zap.String("component", component)), atomicLevel: l.atomicLevel}
}

// SetLevel dynamically adjusts the minimum logged severity.
func (l *Logger) SetLevel(s Severity) {
	l.atomicLevel.SetLevel(s.ToZapLevel())
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
