// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"testing"

	"github.com/stacklok/envtyped/envvar"
)

// SkipUnlessSet skips the test unless name is set to a non-empty value.
func SkipUnlessSet(t testing.TB, a *envvar.Accessor, name string) {
	t.Helper()
	if !a.IsSet(name) {
		t.Skipf("skipping: %s is not set", name)
	}
}

// SkipUnlessBool skips the test unless name is set and reads as the boolean
// want, or is empty or missing and has a default that does. A value that is
// not a valid boolean fails the test.
func SkipUnlessBool(t testing.TB, a *envvar.Accessor, name string, want bool, opts ...envvar.ReadOption) {
	t.Helper()
	ok, err := matchBool(a, name, want, opts)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	if !ok {
		t.Skipf("skipping: %s is not %t", name, want)
	}
}

// Setenv writes value to name for the rest of the test and restores the
// previous state during cleanup. Unlike testing.T.Setenv it works with any
// store and does not forbid parallel tests; callers sharing a store between
// parallel tests are responsible for not racing on it.
func Setenv(t testing.TB, a *envvar.Accessor, name string, value any) {
	t.Helper()
	restore, err := override(a, name, value)
	if err != nil {
		t.Fatalf("setting %s: %v", name, err)
	}
	t.Cleanup(func() {
		if err := restore(); err != nil {
			t.Errorf("%v", err)
		}
	})
}
