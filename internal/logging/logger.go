// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the application logger, a zap sugared logger with a dedicated security channel
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

func newConfig(level zapcore.Level) zap.Config {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.OutputPaths = []string{"stdout"}
	c.ErrorOutputPaths = []string{"stderr"}
	return c
}

// NewLogger creates a JSON logger writing to stdout at the given level,
// invalid levels fall back to error
func NewLogger(l string) *Logger {
	level, err := zapcore.ParseLevel(strings.ToLower(l))
	if err != nil {
		level = zapcore.ErrorLevel
	}

	lgr, err := newConfig(level).Build()
	if err != nil {
		panic(err)
	}

	// security events are emitted regardless of the application level
	slgr, err := newConfig(zapcore.InfoLevel).Build()
	if err != nil {
		panic(err)
	}

	logger := new(Logger)
	logger.SugaredLogger = lgr.Sugar()
	logger.security = newSecurityLogger(slgr)

	return logger
}
