// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jlog provides the console logger shared by the CLI commands.
package jlog

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
)

// Init initializes the global logger. verbose raises the level to debug.
func Init(verbose bool) {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	cfg := zap.Config{
		DisableCaller:     true,
		DisableStacktrace: true,
		EncoderConfig:     enc,
		Encoding:          "console",
		ErrorOutputPaths:  []string{"stderr"},
		Level:             zap.NewAtomicLevelAt(level),
		OutputPaths:       []string{"stderr"},
	}
	logger, _ = cfg.Build()
	sugar = logger.Sugar()
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// Debugf uses fmt.Sprintf to log a formatted string at debug level.
func Debugf(format string, args ...interface{}) { sugar.Debugf(format, args...) }

// Infof uses fmt.Sprintf to log a formatted string.
func Infof(format string, args ...interface{}) { sugar.Infof(format, args...) }

// Errorf uses fmt.Sprintf to log a formatted string.
func Errorf(format string, args ...interface{}) { sugar.Errorf(format, args...) }

// Fatalf uses fmt.Sprintf to log a formatted string, then exits the process.
func Fatalf(format string, args ...interface{}) {
	sugar.Errorf(format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}
