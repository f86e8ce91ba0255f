// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import (
	"fmt"
	"log/slog"

	"github.com/stacklok/envtyped/env"
)

// Accessor reads and writes typed values through an env.Store.
//
// An Accessor holds no state besides its store, so every read observes the
// latest write. It performs no locking of its own.
type Accessor struct {
	store  env.Store
	logger *slog.Logger
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithLogger sets the logger used for deprecation warnings and debug output.
// Without it the accessor logs to whatever [slog.Default] returns at the time
// of the call.
func WithLogger(l *slog.Logger) Option {
	return func(a *Accessor) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Accessor backed by the given store.
func New(store env.Store, opts ...Option) *Accessor {
	a := &Accessor{store: store}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Accessor) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return slog.Default()
}

// Store returns the underlying store.
func (a *Accessor) Store() env.Store {
	return a.store
}

// IsSet reports whether the variable has a non-empty value. A variable that
// is present but empty is reported as not set.
func (a *Accessor) IsSet(name string) bool {
	v, _ := a.store.LookupEnv(name)
	return v != ""
}

// Write stores the string form of value under name. A nil value, or an unset
// Value, removes the variable instead. Strings are stored verbatim, string
// slices are joined with commas and everything else is formatted with
// spf13/cast.
func (a *Accessor) Write(name string, value any) error {
	value = unwrap(value)
	if value == nil {
		if err := a.store.Unsetenv(name); err != nil {
			return fmt.Errorf("unsetting %s: %w", name, err)
		}
		return nil
	}

	if err := a.store.Setenv(name, stringify(value)); err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	return nil
}

// Read resolves the raw value of a variable.
//
// The primary name is looked up first, then each [Fallback] in order. A
// present value, including an empty one, is returned untouched. When nothing
// is present the [Default] is returned as given, without any cast. With no
// default, Read returns an unset Value if [AllowNone] was given and fails
// with [ErrMissing] otherwise.
func (a *Accessor) Read(name string, opts ...ReadOption) (Value[any], error) {
	v, _, err := a.read(name, newRequest(opts))
	return v, err
}

// Lookup resolves a variable like [Accessor.Read] and also reports which
// variable supplied the value: name itself or one of its fallbacks. The
// source is empty when the result is the default or unset.
func (a *Accessor) Lookup(name string, opts ...ReadOption) (Value[any], string, error) {
	return a.read(name, newRequest(opts))
}

func (a *Accessor) read(name string, req *request) (Value[any], string, error) {
	if raw, ok := a.store.LookupEnv(name); ok {
		return ValueOf[any](raw), name, nil
	}

	for _, fb := range req.fallback {
		if raw, ok := a.store.LookupEnv(fb); ok {
			a.log().Debug("resolved environment variable from fallback",
				slog.String("name", name), slog.String("fallback", fb))
			return ValueOf[any](raw), fb, nil
		}
	}

	if req.def != nil {
		return ValueOf(req.def), "", nil
	}
	if req.allowNone {
		return Value[any]{}, "", nil
	}
	return Value[any]{}, "", missingError(name)
}

// Set is an alias of Write.
//
// Deprecated: Use Write instead.
func (a *Accessor) Set(name string, value any) error {
	a.deprecated("Set", "Write", name)
	return a.Write(name, value)
}

// Get is an alias of Read.
//
// Deprecated: Use Read instead.
func (a *Accessor) Get(name string, opts ...ReadOption) (Value[any], error) {
	a.deprecated("Get", "Read", name)
	return a.Read(name, opts...)
}

func (a *Accessor) deprecated(fn, replacement, name string) {
	a.log().Warn("envvar function is deprecated",
		slog.String("function", fn),
		slog.String("replacement", replacement),
		slog.String("name", name))
}
