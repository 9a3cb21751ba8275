package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Level is a zap level name; empty means debug.
	Level string
	// File, when set, receives every entry at Level while the console only
	// shows warnings and above.
	File string
	// Console defaults to os.Stderr.
	Console io.Writer
}

func New(opts Options) (*zap.Logger, func(), error) {
	level := zapcore.DebugLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	cleanup := func() {}
	var core zapcore.Core
	if opts.File == "" {
		core = zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), level)
	} else {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup = func() { _ = file.Close() }

		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		consoleLevel := zapcore.WarnLevel
		if level > consoleLevel {
			consoleLevel = level
		}
		core = zapcore.NewTee(
			zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.AddSync(file), level),
			zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), consoleLevel),
		)
	}

	logger := zap.New(core, zap.AddCaller())

	zap.ReplaceGlobals(logger)
	log.SetOutput(zap.NewStdLog(logger).Writer())

	return logger, func() {
		_ = logger.Sync()
		cleanup()
	}, nil
}
