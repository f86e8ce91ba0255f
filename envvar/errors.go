// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import (
	"errors"
	"fmt"
)

// Sentinel errors for variable resolution and casting.
var (
	// ErrMissing is returned when a required variable is absent, no fallback
	// is present and no default was given.
	ErrMissing = errors.New("required variable missing")

	// ErrInvalidBool is returned when a value does not match the truth table.
	ErrInvalidBool = errors.New("invalid truth value")

	// ErrInvalidNumber is returned when a value cannot be parsed as an
	// integer or a float. The underlying *strconv.NumError stays in the chain.
	ErrInvalidNumber = errors.New("invalid numeric literal")

	// ErrInvalidList is returned when a list or tuple value has no
	// non-empty elements. It is deliberately distinct from ErrMissing.
	ErrInvalidList = errors.New("invalid list: no non-empty elements")
)

// VariableError reports a failure to resolve or cast a single variable.
type VariableError struct {
	// Name is the primary name that was requested.
	Name string
	// Value is the offending value in string form. It is empty for ErrMissing.
	Value string

	original error
}

// Error implements the error interface.
func (e *VariableError) Error() string {
	return fmt.Sprintf("environment variable %s: %s", e.Name, e.original)
}

// Unwrap returns the underlying error.
func (e *VariableError) Unwrap() error {
	return e.original
}

func missingError(name string) error {
	return &VariableError{Name: name, original: ErrMissing}
}
