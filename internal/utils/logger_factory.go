package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	jsonZapEncodingStringConstant        = "json"
	consoleZapEncodingStringConstant     = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	loggerWriterMissingMessageConstant   = "logger output writer not provided"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct{}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

var logFormatEncodingMapping = map[LogFormat]string{
	LogFormatStructured: jsonZapEncodingStringConstant,
	LogFormatConsole:    consoleZapEncodingStringConstant,
}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// ParseLogLevel normalizes a configured level; surrounding whitespace and case are ignored.
func ParseLogLevel(value string) (LogLevel, error) {
	candidate := LogLevel(strings.ToLower(strings.TrimSpace(value)))
	if _, levelExists := logLevelMapping[candidate]; !levelExists {
		return "", fmt.Errorf(unsupportedLogLevelTemplateConstant, value)
	}
	return candidate, nil
}

// ParseLogFormat normalizes a configured format; surrounding whitespace and case are ignored.
func ParseLogFormat(value string) (LogFormat, error) {
	candidate := LogFormat(strings.ToLower(strings.TrimSpace(value)))
	if _, formatExists := logFormatEncodingMapping[candidate]; !formatExists {
		return "", fmt.Errorf(unsupportedLogFormatTemplateConstant, value)
	}
	return candidate, nil
}

// CreateLogger produces a zap.Logger writing to standard error with the requested level and format.
// Standard output stays reserved for command results and inherited child output.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLogLevel, encoding, resolveError := resolveLoggerSettings(requestedLogLevel, requestedLogFormat)
	if resolveError != nil {
		return nil, resolveError
	}

	configuration := zap.NewProductionConfig()
	configuration.Level = zap.NewAtomicLevelAt(zapLogLevel)
	configuration.Encoding = encoding
	if encoding == consoleZapEncodingStringConstant {
		configuration.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		configuration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		configuration.DisableStacktrace = true
	}

	logger, buildError := configuration.Build()
	if buildError != nil {
		return nil, buildError
	}

	return logger, nil
}

// CreateLoggerWithWriter produces a zap.Logger that writes to the supplied writer.
func (factory *LoggerFactory) CreateLoggerWithWriter(requestedLogLevel LogLevel, requestedLogFormat LogFormat, writer io.Writer) (*zap.Logger, error) {
	if writer == nil {
		return nil, errors.New(loggerWriterMissingMessageConstant)
	}

	zapLogLevel, encoding, resolveError := resolveLoggerSettings(requestedLogLevel, requestedLogFormat)
	if resolveError != nil {
		return nil, resolveError
	}

	encoderConfiguration := zap.NewProductionEncoderConfig()
	var encoder zapcore.Encoder
	if encoding == consoleZapEncodingStringConstant {
		encoderConfiguration.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfiguration)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), zap.NewAtomicLevelAt(zapLogLevel))
	return zap.New(core), nil
}

// SyncLogger flushes the logger, ignoring the errors terminals and pipes
// report for fsync.
func SyncLogger(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}

	syncError := logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func resolveLoggerSettings(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (zapcore.Level, string, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return zapcore.InfoLevel, "", fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	encoding, formatExists := logFormatEncodingMapping[requestedLogFormat]
	if !formatExists {
		return zapcore.InfoLevel, "", fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	return zapLogLevel, encoding, nil
}
