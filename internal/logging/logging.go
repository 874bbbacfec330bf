// Package logging builds the process logger.
//
// Logs always go to stderr: with the stdio transport, stdout carries the
// MCP protocol stream and must not see anything else.
package logging

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger on stderr at the given level
// (debug, info, warn, error).
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// StdLog adapts logger for libraries that want a *log.Logger. Lines are
// logged at error level.
func StdLog(logger *zap.Logger) *log.Logger {
	std, err := zap.NewStdLogAt(logger, zapcore.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(logger)
	}
	return std
}
