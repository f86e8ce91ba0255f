// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Tuple is a fixed sequence of strings read with [Accessor.Tuple].
type Tuple []string

var truthTable = map[string]bool{
	"y":     true,
	"yes":   true,
	"t":     true,
	"true":  true,
	"on":    true,
	"1":     true,
	"n":     false,
	"no":    false,
	"f":     false,
	"false": false,
	"off":   false,
	"0":     false,
	"":      false,
}

// ParseBool applies the truth table to s, ignoring case and surrounding
// whitespace. True values are y, yes, t, true, on and 1. False values are n,
// no, f, false, off, 0 and the empty string.
func ParseBool(s string) (bool, error) {
	b, ok := truthTable[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
	}
	return b, nil
}

// Str reads a variable as a string with surrounding whitespace removed.
func (a *Accessor) Str(name string, opts ...ReadOption) (Value[string], error) {
	return get(a, name, opts, func(v any, _ *request) (string, error) {
		return strings.TrimSpace(stringify(v)), nil
	})
}

// Bool reads a variable as a boolean. Booleans pass through, integers are
// true when positive and everything else goes through [ParseBool].
func (a *Accessor) Bool(name string, opts ...ReadOption) (Value[bool], error) {
	return get(a, name, opts, func(v any, _ *request) (bool, error) {
		return toBool(v)
	})
}

// Int reads a variable as a base 10 integer. Surrounding whitespace is ignored.
func (a *Accessor) Int(name string, opts ...ReadOption) (Value[int], error) {
	return get(a, name, opts, func(v any, _ *request) (int, error) {
		return toInt(v)
	})
}

// Float reads a variable as a 64-bit float. Surrounding whitespace is ignored.
func (a *Accessor) Float(name string, opts ...ReadOption) (Value[float64], error) {
	return get(a, name, opts, func(v any, _ *request) (float64, error) {
		return toFloat(v)
	})
}

// List reads a separated variable as a slice of strings. Elements are
// trimmed and empty elements dropped. A value with no remaining elements
// fails with [ErrInvalidList].
func (a *Accessor) List(name string, opts ...ReadOption) (Value[[]string], error) {
	return get(a, name, opts, func(v any, req *request) ([]string, error) {
		return toSlice(v, req.separator)
	})
}

// Tuple reads a variable like [Accessor.List] but returns a Tuple.
func (a *Accessor) Tuple(name string, opts ...ReadOption) (Value[Tuple], error) {
	return get(a, name, opts, func(v any, req *request) (Tuple, error) {
		if t, ok := v.(Tuple); ok {
			return t, nil
		}
		s, err := toSlice(v, req.separator)
		if err != nil {
			return nil, err
		}
		return Tuple(s), nil
	})
}

func get[T any](a *Accessor, name string, opts []ReadOption, conv func(any, *request) (T, error)) (Value[T], error) {
	req := newRequest(opts)
	resolved, _, err := a.read(name, req)
	if err != nil {
		return Value[T]{}, err
	}

	raw, ok := resolved.Value()
	if !ok {
		return Value[T]{}, nil
	}

	out, err := conv(raw, req)
	if err != nil {
		return Value[T]{}, &VariableError{Name: name, Value: stringify(raw), original: err}
	}
	return ValueOf(out), nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []string:
		return strings.Join(x, defaultSeparator)
	case Tuple:
		return strings.Join(x, defaultSeparator)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func toBool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() > 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() > 0, nil
	default:
		return ParseBool(stringify(v))
	}
}

func toInt(v any) (int, error) {
	if s, ok := v.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
		}
		return n, nil
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	return n, nil
}

func toFloat(v any) (float64, error) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
		}
		return f, nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	return f, nil
}

// toSlice converts a resolved value into list elements. Go has a single
// slice kind, so any string sequence is accepted by both List and Tuple.
func toSlice(v any, sep string) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return x, nil
	case Tuple:
		return []string(x), nil
	case string:
		return split(x, sep)
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		s, err := cast.ToStringSliceE(v)
		if err == nil {
			return s, nil
		}
	}
	return []string{stringify(v)}, nil
}

func split(s, sep string) ([]string, error) {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, ErrInvalidList
	}
	return out, nil
}
