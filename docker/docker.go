// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package docker

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stacklok/envtyped/envvar"
	"github.com/stacklok/envtyped/logger"
	"github.com/stacklok/envtyped/validation/name"
)

// ErrInvalidLink is returned when a link variable is not of the form
// scheme://host:port.
var ErrInvalidLink = errors.New("invalid docker link")

var (
	linkPattern  = regexp.MustCompile(`^\w+://[^:/]+:\d+$`)
	splitPattern = regexp.MustCompile(`:|//`)
)

// Link is a parsed link variable.
type Link struct {
	Protocol string
	Host     string
	Port     int
}

// String returns the link in scheme://host:port form.
func (l Link) String() string {
	return fmt.Sprintf("%s://%s:%d", l.Protocol, l.Host, l.Port)
}

// VariableName returns the name of the link variable for alias.
func VariableName(alias string) (string, error) {
	alias = name.NormalizeAlias(alias)
	if err := name.ValidateAlias(alias); err != nil {
		return "", fmt.Errorf("invalid link alias: %w", err)
	}
	return alias + "_PORT", nil
}

// Parse splits a link value on ":" and "//" into its three components.
func Parse(raw string) (Link, error) {
	var parts []string
	for _, p := range splitPattern.Split(strings.TrimSpace(raw), -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 3 {
		return Link{}, fmt.Errorf("%w: %q", ErrInvalidLink, raw)
	}

	port, err := strconv.Atoi(parts[2])
	if err != nil {
		return Link{}, fmt.Errorf("%w: port %q: %w", ErrInvalidLink, parts[2], err)
	}
	return Link{Protocol: parts[0], Host: parts[1], Port: port}, nil
}

// Read returns the trimmed link value for alias. Options behave as for
// [envvar.Accessor.Str].
func Read(a *envvar.Accessor, alias string, opts ...envvar.ReadOption) (envvar.Value[string], error) {
	varName, err := VariableName(alias)
	if err != nil {
		return envvar.Value[string]{}, err
	}
	return a.Str(varName, opts...)
}

// IsSet reports whether the link variable for alias is set and well formed.
// A set but malformed value is logged as a warning and reported as not set.
func IsSet(a *envvar.Accessor, alias string) bool {
	varName, err := VariableName(alias)
	if err != nil {
		return false
	}
	if !a.IsSet(varName) {
		return false
	}

	v, err := a.Str(varName, envvar.AllowNone())
	if err != nil {
		return false
	}
	raw := v.Or("")
	if !linkPattern.MatchString(raw) {
		logger.Warnw("Docker link variable does not match scheme://host:port",
			"name", varName, "value", raw)
		return false
	}
	return true
}

// Protocol returns the scheme of the link for alias.
func Protocol(a *envvar.Accessor, alias string, opts ...envvar.ReadOption) (envvar.Value[string], error) {
	return component(a, alias, opts, func(l Link) string { return l.Protocol }, a.Str)
}

// Host returns the host of the link for alias.
func Host(a *envvar.Accessor, alias string, opts ...envvar.ReadOption) (envvar.Value[string], error) {
	return component(a, alias, opts, func(l Link) string { return l.Host }, a.Str)
}

// Port returns the port of the link for alias.
func Port(a *envvar.Accessor, alias string, opts ...envvar.ReadOption) (envvar.Value[int], error) {
	return component(a, alias, opts, func(l Link) int { return l.Port }, a.Int)
}

func component[T any](
	a *envvar.Accessor,
	alias string,
	opts []envvar.ReadOption,
	pick func(Link) T,
	get func(string, ...envvar.ReadOption) (envvar.Value[T], error),
) (envvar.Value[T], error) {
	varName, err := VariableName(alias)
	if err != nil {
		return envvar.Value[T]{}, err
	}

	resolved, from, err := a.Lookup(varName, opts...)
	if err != nil {
		return envvar.Value[T]{}, err
	}
	if from == "" {
		// Nothing in the store: cast the default, or pass the unset value on.
		return get(varName, envvar.Default(resolved), envvar.AllowNone())
	}

	raw, _ := resolved.Value()
	s, _ := raw.(string)
	link, err := Parse(s)
	if err != nil {
		return envvar.Value[T]{}, fmt.Errorf("environment variable %s: %w", from, err)
	}
	return envvar.ValueOf(pick(link)), nil
}
