// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import "github.com/stacklok/envtyped/env"

var std = New(&env.OSStore{})

// Std returns the Accessor used by the package-level functions. It reads and
// writes the environment of the current process. Tuples are read with
// Std().Tuple since the package-level name is taken by the Tuple type.
func Std() *Accessor {
	return std
}

// IsSet reports whether a process environment variable is set and non-empty.
func IsSet(name string) bool {
	return std.IsSet(name)
}

// Write sets or, for a nil value, removes a process environment variable.
func Write(name string, value any) error {
	return std.Write(name, value)
}

// Read resolves the raw value of a process environment variable.
func Read(name string, opts ...ReadOption) (Value[any], error) {
	return std.Read(name, opts...)
}

// Str reads a process environment variable as a trimmed string.
func Str(name string, opts ...ReadOption) (Value[string], error) {
	return std.Str(name, opts...)
}

// Bool reads a process environment variable as a boolean.
func Bool(name string, opts ...ReadOption) (Value[bool], error) {
	return std.Bool(name, opts...)
}

// Int reads a process environment variable as an integer.
func Int(name string, opts ...ReadOption) (Value[int], error) {
	return std.Int(name, opts...)
}

// Float reads a process environment variable as a float.
func Float(name string, opts ...ReadOption) (Value[float64], error) {
	return std.Float(name, opts...)
}

// List reads a process environment variable as a list of strings.
func List(name string, opts ...ReadOption) (Value[[]string], error) {
	return std.List(name, opts...)
}

// Set is an alias of Write.
//
// Deprecated: Use Write instead.
func Set(name string, value any) error {
	return std.Set(name, value)
}

// Get is an alias of Read.
//
// Deprecated: Use Read instead.
func Get(name string, opts ...ReadOption) (Value[any], error) {
	return std.Get(name, opts...)
}
