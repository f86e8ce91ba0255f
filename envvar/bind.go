// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import (
	"fmt"
	"log/slog"
	"reflect"

	cenv "github.com/caarlos0/env/v11"

	"github.com/stacklok/envtyped/env"
)

type bindConfig struct {
	prefix          string
	requiredIfNoDef bool
}

// BindOption configures [Accessor.Bind].
type BindOption func(*bindConfig)

// WithPrefix only considers variables starting with prefix. Tag names are
// given without it.
func WithPrefix(prefix string) BindOption {
	return func(c *bindConfig) {
		c.prefix = prefix
	}
}

// RequiredIfNoDefault makes every field without an envDefault tag required.
func RequiredIfNoDefault() BindOption {
	return func(c *bindConfig) {
		c.requiredIfNoDef = true
	}
}

// Bind populates the struct pointed to by v from the accessor's store using
// `env` struct tags, as understood by caarlos0/env. Boolean fields use the
// same truth table as [Accessor.Bool].
//
//	type Config struct {
//	    Port  int      `env:"PORT" envDefault:"8080"`
//	    Debug bool     `env:"DEBUG"`
//	    Hosts []string `env:"HOSTS" envSeparator:","`
//	}
func (a *Accessor) Bind(v any, opts ...BindOption) error {
	cfg := &bindConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	err := cenv.ParseWithOptions(v, cenv.Options{
		Environment:     env.ToMap(a.store),
		Prefix:          cfg.prefix,
		RequiredIfNoDef: cfg.requiredIfNoDef,
		FuncMap: map[reflect.Type]cenv.ParserFunc{
			reflect.TypeOf(false): func(s string) (any, error) {
				return ParseBool(s)
			},
		},
		OnSet: func(tag string, _ any, isDefault bool) {
			a.log().Debug("bound environment variable",
				slog.String("name", tag), slog.Bool("default", isDefault))
		},
	})
	if err != nil {
		return fmt.Errorf("binding environment: %w", err)
	}
	return nil
}
