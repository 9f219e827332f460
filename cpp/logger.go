// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cpp

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the cpp package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the cpp package's logger.
// This must be called before any artifact is compiled.
func SetLogger(l *zap.Logger) {
	logger = l
}
