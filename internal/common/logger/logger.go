// Package logger provides the logging facade shared by the service clients
// and the CLI. Two backends are available: logrus (default) and zap.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the minimal logging surface this module needs.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	WithFields(fields map[string]interface{}) Logger
}

// New builds the default backend (logrus).
func New(level, format string) (Logger, error) {
	return NewLogrus(level, format)
}

// LogrusLogger adapts a logrus entry to Logger.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus builds a logrus-backed Logger writing to stdout.
// Unknown levels fall back to info, unknown formats to text.
func NewLogrus(level, format string) (*LogrusLogger, error) {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	log.SetOutput(os.Stdout)

	return &LogrusLogger{entry: logrus.NewEntry(log)}, nil
}

func (l *LogrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *LogrusLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *LogrusLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *LogrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *LogrusLogger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *LogrusLogger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *LogrusLogger) Error(args ...interface{})                 { l.entry.Error(args...) }

func (l *LogrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// ZapLogger adapts a zap logger to Logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZap builds a zap-backed Logger writing to stdout.
func NewZap(level, format string) (*ZapLogger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zapLevel)
	return &ZapLogger{logger: zap.New(core, zap.AddCaller())}, nil
}

func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.logger.Sugar().Debugf(format, args...)
}

func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.logger.Sugar().Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.logger.Sugar().Warnf(format, args...)
}

func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.logger.Sugar().Errorf(format, args...)
}

func (l *ZapLogger) Info(args ...interface{})  { l.logger.Sugar().Info(args...) }
func (l *ZapLogger) Warn(args ...interface{})  { l.logger.Sugar().Warn(args...) }
func (l *ZapLogger) Error(args ...interface{}) { l.logger.Sugar().Error(args...) }

func (l *ZapLogger) WithFields(fields map[string]interface{}) Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return &ZapLogger{logger: l.logger.With(zapFields...)}
}

// Nop discards everything. Used in tests and as a nil-safe default.
type Nop struct{}

func (Nop) Debugf(string, ...interface{}) {}
func (Nop) Infof(string, ...interface{})  {}
func (Nop) Warnf(string, ...interface{})  {}
func (Nop) Errorf(string, ...interface{}) {}
func (Nop) Info(...interface{})           {}
func (Nop) Warn(...interface{})           {}
func (Nop) Error(...interface{})          {}

func (n Nop) WithFields(map[string]interface{}) Logger { return n }
