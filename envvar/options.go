// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

const defaultSeparator = ","

// request holds the resolved options of a single read.
type request struct {
	def       any
	allowNone bool
	fallback  []string
	separator string
}

// ReadOption configures how a variable is resolved.
type ReadOption func(*request)

// Default sets the value returned when neither the variable nor any fallback
// is present. Defaults are passed through the getter's cast, so they may be
// given as a literal of the target type, as a string in environment form, or
// as the result of another getter. A nil default or an unset Value is the
// same as no default.
func Default(v any) ReadOption {
	return func(r *request) {
		r.def = unwrap(v)
	}
}

// AllowNone permits a missing variable with no default to resolve to an
// unset Value instead of failing with [ErrMissing].
func AllowNone() ReadOption {
	return func(r *request) {
		r.allowNone = true
	}
}

// Fallback adds alternate variable names tried in order when the primary
// name is absent. The first present one wins.
func Fallback(names ...string) ReadOption {
	return func(r *request) {
		r.fallback = append(r.fallback, names...)
	}
}

// Separator sets the element separator used by [Accessor.List] and
// [Accessor.Tuple]. The default is ",". An empty separator keeps the default.
func Separator(sep string) ReadOption {
	return func(r *request) {
		if sep != "" {
			r.separator = sep
		}
	}
}

func newRequest(opts []ReadOption) *request {
	r := &request{separator: defaultSeparator}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
