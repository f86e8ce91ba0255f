// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

// Value represents a resolved value that may be unset. The zero value is
// unset, which is what a getter returns for a missing variable when
// [AllowNone] is given.
type Value[T any] struct {
	val T
	set bool
}

// ValueOf returns a set Value holding v.
func ValueOf[T any](v T) Value[T] {
	return Value[T]{val: v, set: true}
}

// Value returns the underlying value and whether it is set.
func (v Value[T]) Value() (T, bool) {
	return v.val, v.set
}

// IsSet reports whether the value is set.
func (v Value[T]) IsSet() bool {
	return v.set
}

// Or returns the underlying value, or def when unset.
func (v Value[T]) Or(def T) T {
	if !v.set {
		return def
	}
	return v.val
}

func (v Value[T]) unwrap() (any, bool) {
	return v.val, v.set
}

// unwrapper is implemented by every Value[T] so a getter result can be
// handed to [Default] or [Accessor.Write] without the caller unpacking it.
type unwrapper interface {
	unwrap() (any, bool)
}

// unwrap returns v with any Value wrapper removed. An unset Value becomes nil.
func unwrap(v any) any {
	u, ok := v.(unwrapper)
	if !ok {
		return v
	}
	inner, set := u.unwrap()
	if !set {
		return nil
	}
	return inner
}
