// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/stacklok/envtyped/envvar"
)

const (
	// FormatVar names the variable read by [FromEnv] for the output format.
	FormatVar = "LOG_FORMAT"

	// LevelVar names the variable read by [FromEnv] for the minimum level.
	LevelVar = "LOG_LEVEL"
)

var (
	// ErrInvalidFormat is returned by [FromEnv] for an unknown LOG_FORMAT.
	ErrInvalidFormat = errors.New("invalid log format")

	// ErrInvalidLevel is returned by [FromEnv] for an unknown LOG_LEVEL.
	ErrInvalidLevel = errors.New("invalid log level")
)

// Format represents the log output format.
type Format int

const (
	// FormatJSON produces JSON-formatted log output using [log/slog.JSONHandler].
	// This is the default format.
	FormatJSON Format = iota

	// FormatText produces human-readable text output using [log/slog.TextHandler].
	FormatText
)

// ParseFormat parses "json" or "text", ignoring case and surrounding whitespace.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

type config struct {
	format Format
	level  slog.Leveler
	output io.Writer
}

// Option configures the logger created by [New].
type Option func(*config)

// WithFormat sets the output format (JSON or Text).
// The default is [FormatJSON].
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithLevel sets the minimum log level.
// The default is [log/slog.LevelInfo].
//
// Accepts any [log/slog.Leveler], including [*log/slog.LevelVar] for
// dynamic level changes.
func WithLevel(l slog.Leveler) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets the destination writer for log output.
// The default is [os.Stderr].
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// FromEnv reads LOG_FORMAT (json or text) and LOG_LEVEL (debug, info, warn
// or error) through the accessor and returns the matching options. Unset or
// empty variables keep the defaults. Options given to [New] after these
// override them.
//
//	opts, err := logging.FromEnv(envvar.Std())
//	if err != nil {
//	    return err
//	}
//	logger := logging.New(append(opts, logging.WithOutput(os.Stdout))...)
func FromEnv(a *envvar.Accessor) ([]Option, error) {
	var opts []Option

	format, err := a.Str(FormatVar, envvar.Default(""))
	if err != nil {
		return nil, err
	}
	if s := format.Or(""); s != "" {
		f, err := ParseFormat(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", FormatVar, err)
		}
		opts = append(opts, WithFormat(f))
	}

	level, err := a.Str(LevelVar, envvar.Default(""))
	if err != nil {
		return nil, err
	}
	if s := level.Or(""); s != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("%s: %w: %q", LevelVar, ErrInvalidLevel, s)
		}
		opts = append(opts, WithLevel(l))
	}

	return opts, nil
}

// NewHandler creates the [log/slog.Handler] used by [New], for callers that
// wrap it with middleware.
func NewHandler(opts ...Option) slog.Handler {
	cfg := &config{
		format: FormatJSON,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: replaceAttr,
	}

	if cfg.format == FormatText {
		return slog.NewTextHandler(cfg.output, handlerOpts)
	}
	return slog.NewJSONHandler(cfg.output, handlerOpts)
}

// New creates a pre-configured [*log/slog.Logger].
//
// Defaults:
//   - Format: JSON ([FormatJSON])
//   - Level: INFO ([log/slog.LevelInfo])
//   - Output: [os.Stderr]
//   - Timestamps: [time.RFC3339]
func New(opts ...Option) *slog.Logger {
	return slog.New(NewHandler(opts...))
}

// replaceAttr formats the time attribute to RFC3339.
// All other attributes are passed through unchanged.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339))
		}
	}
	return a
}
