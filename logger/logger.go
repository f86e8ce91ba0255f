// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a process-wide zap logger configured from the environment.
package logger

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/envtyped/env"
	"github.com/stacklok/envtyped/envvar"
)

const (
	// UnstructuredLogsVar selects human readable console output when true.
	// It defaults to true when unset or empty.
	UnstructuredLogsVar = "UNSTRUCTURED_LOGS"

	// DebugVar enables debug level logging for the default debug provider.
	DebugVar = "DEBUG"
)

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// NewLogr returns a logr.Logger which uses the singleton zap logger.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// DebugProvider reports whether debug logging is enabled.
// This allows different projects to plug in their own debug flag implementation.
type DebugProvider interface {
	IsDebug() bool
}

// EnvDebug reads the debug flag from a boolean environment variable. A
// missing or invalid value means debug is off.
type EnvDebug struct {
	Accessor *envvar.Accessor
	Name     string
}

// IsDebug implements DebugProvider.
func (d EnvDebug) IsDebug() bool {
	v, err := d.Accessor.Bool(d.Name, envvar.Default(false))
	return err == nil && v.Or(false)
}

// Initialize configures the singleton logger from the process environment.
// UNSTRUCTURED_LOGS selects the output format and DEBUG the level.
func Initialize() {
	InitializeWithOptions(&env.OSStore{}, nil)
}

// InitializeWithDebug configures the singleton logger from the process
// environment with a custom debug provider.
func InitializeWithDebug(debugProvider DebugProvider) {
	InitializeWithOptions(&env.OSStore{}, debugProvider)
}

// InitializeWithOptions configures the singleton logger from the given store.
// A nil debug provider reads DEBUG from the same store.
//
// When UNSTRUCTURED_LOGS is true, or unset, logs are written to stderr as
// plain lines carrying only the time and level. Otherwise JSON is written to
// stdout.
func InitializeWithOptions(store env.Store, debugProvider DebugProvider) {
	a := envvar.New(store)
	if debugProvider == nil {
		debugProvider = EnvDebug{Accessor: a, Name: DebugVar}
	}

	var config zap.Config
	if unstructuredLogs(a) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	if debugProvider.IsDebug() {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zap.ReplaceGlobals(zap.Must(config.Build()))
}

func unstructuredLogs(a *envvar.Accessor) bool {
	if !a.IsSet(UnstructuredLogsVar) {
		return true
	}
	v, err := a.Bool(UnstructuredLogsVar)
	if err != nil {
		// An unrecognised value keeps the human readable default.
		return true
	}
	return v.Or(true)
}
