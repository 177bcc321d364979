package flexlog

import "go.uber.org/zap/zapcore"

// Severity is the engine's log level vocabulary.
type Severity string

const (
	DEBUG Severity = "DEBUG"
	INFO  Severity = "INFO"
	WARN  Severity = "WARN"
	ERROR Severity = "ERROR"
	FATAL Severity = "FATAL"
)

// ToZapLevel converts a Severity to its zapcore.Level equivalent.
func (s Severity) ToZapLevel() zapcore.Level {
	switch s {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func severityEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString(string(DEBUG))
	case zapcore.InfoLevel:
		enc.AppendString(string(INFO))
	case zapcore.WarnLevel:
		enc.AppendString(string(WARN))
	case zapcore.ErrorLevel:
		enc.AppendString(string(ERROR))
	default:
		enc.AppendString(string(FATAL))
	}
}
