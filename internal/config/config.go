// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package config loads dynstategen defaults from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds environment-driven defaults. Command line flags override
// every field.
type Config struct {
	// Registry is the vk.xml or field list file. Empty uses the builtin feed.
	Registry string `env:"DYNSTATE_REGISTRY"`

	// Table is the setter command table file. Empty uses the builtin table.
	Table string `env:"DYNSTATE_TABLE"`

	// OutDir receives generated artifacts.
	OutDir string `env:"DYNSTATE_OUT_DIR" envDefault:"."`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel zapcore.Level `env:"DYNSTATE_LOG_LEVEL" envDefault:"info"`

	// Generator is named in the generated do-not-edit banner.
	Generator string `env:"DYNSTATE_GENERATOR" envDefault:"dynstategen"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds a console logger writing to stderr at level.
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
