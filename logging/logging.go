// Package logging holds the process-wide zap logger.
package logging

import (
	"fmt"
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init builds the console logger. Debug lowers the level to debug.
// Output of the standard log package is redirected to it at warn level.
func Init(debug bool) error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	Set(l)
	return nil
}

// Set replaces the global logger and redirects the standard log package.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
	if _, err := zap.RedirectStdLogAt(l, zapcore.WarnLevel); err != nil {
		l.Warn("std log redirect failed", zap.Error(err))
	}
}

// L returns the global logger. It is a no-op logger until Init or Set.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Named returns a child logger for one subsystem.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Sync flushes buffered entries.
func Sync() {
	// stderr sync fails on some terminals
	_ = L().Sync()
}

// Std returns a standard library logger writing into zap at info level.
func Std(name string) *log.Logger {
	return zap.NewStdLog(Named(name))
}
