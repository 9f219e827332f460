// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dynstate

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the dynstate package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the dynstate package's logger.
// This must be called before any artifact is generated.
func SetLogger(l *zap.Logger) {
	logger = l
}
