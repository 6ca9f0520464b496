package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) zapLevel() (zapcore.Level, error) {
	switch l {
	case LogLevelDebug:
		return zap.DebugLevel, nil
	case LogLevelInfo:
		return zap.InfoLevel, nil
	case LogLevelWarn:
		return zap.WarnLevel, nil
	case LogLevelError:
		return zap.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unexpected log level %s", l)
}

type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// newLogger builds the diagnostics logger. Conversion results never go
// through it; it carries notices and debug traces to w (normally stderr).
func newLogger(w io.Writer, level LogLevel, format LogFormat) (*zap.Logger, error) {
	lvl, err := level.zapLevel()
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	switch format {
	case LogFormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	case LogFormatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("unexpected log format %s", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
