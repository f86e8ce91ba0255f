// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"errors"
	"fmt"
	"maps"

	"github.com/stacklok/envtyped/cel"
	"github.com/stacklok/envtyped/env"
	"github.com/stacklok/envtyped/envvar"
)

// IfSet returns a function that calls fn only when name is set to a
// non-empty value.
func IfSet[T any](a *envvar.Accessor, name string, fn func() (T, error)) func() (envvar.Value[T], error) {
	return func() (envvar.Value[T], error) {
		if !a.IsSet(name) {
			return envvar.Value[T]{}, nil
		}
		return run(fn)
	}
}

// IfBool returns a function that calls fn only when name is set and reads
// as the boolean want. An empty or missing variable only matches through a
// [envvar.Default]. Options are passed to [envvar.Accessor.Bool]; a value
// that is not a valid boolean is returned as an error.
func IfBool[T any](
	a *envvar.Accessor,
	name string,
	want bool,
	fn func() (T, error),
	opts ...envvar.ReadOption,
) func() (envvar.Value[T], error) {
	return func() (envvar.Value[T], error) {
		ok, err := matchBool(a, name, want, opts)
		if err != nil || !ok {
			return envvar.Value[T]{}, err
		}
		return run(fn)
	}
}

// When returns a function that calls fn only when cond holds for the
// accessor's environment at call time.
func When[T any](cond *cel.Condition, a *envvar.Accessor, fn func() (T, error)) func() (envvar.Value[T], error) {
	return func() (envvar.Value[T], error) {
		ok, err := cond.Evaluate(a.Store())
		if err != nil {
			return envvar.Value[T]{}, fmt.Errorf("evaluating %q: %w", cond.Source(), err)
		}
		if !ok {
			return envvar.Value[T]{}, nil
		}
		return run(fn)
	}
}

// With returns a function that writes value to name, calls fn and restores
// the previous state of name. A nil value removes the variable for the
// duration of the call. The previous state is restored on every exit path,
// including a panic in fn.
func With[T any](a *envvar.Accessor, name string, value any, fn func() (T, error)) func() (T, error) {
	return func() (_ T, err error) {
		restore, err := override(a, name, value)
		if err != nil {
			var zero T
			return zero, err
		}
		defer func() {
			if rerr := restore(); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}()
		return fn()
	}
}

func run[T any](fn func() (T, error)) (envvar.Value[T], error) {
	v, err := fn()
	if err != nil {
		return envvar.Value[T]{}, err
	}
	return envvar.ValueOf(v), nil
}

// matchBool reads name from a snapshot without empty variables, so an empty
// variable is passed over like a missing one, as IsSet does.
func matchBool(a *envvar.Accessor, name string, want bool, opts []envvar.ReadOption) (bool, error) {
	vars := env.ToMap(a.Store())
	maps.DeleteFunc(vars, func(_, v string) bool { return v == "" })
	src := envvar.New(env.NewMapStore(vars))

	b, err := src.Bool(name, append([]envvar.ReadOption{envvar.AllowNone()}, opts...)...)
	if err != nil {
		return false, err
	}
	got, ok := b.Value()
	return ok && got == want, nil
}

// override writes value to name and returns a function restoring what the
// store held before.
func override(a *envvar.Accessor, name string, value any) (func() error, error) {
	store := a.Store()
	prev, had := store.LookupEnv(name)
	if err := a.Write(name, value); err != nil {
		return nil, err
	}
	return func() error {
		return restoreVar(store, name, prev, had)
	}, nil
}

func restoreVar(store env.Store, name, prev string, had bool) error {
	var err error
	if had {
		err = store.Setenv(name, prev)
	} else {
		err = store.Unsetenv(name)
	}
	if err != nil {
		return fmt.Errorf("restoring %s: %w", name, err)
	}
	return nil
}
