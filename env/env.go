// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_store.go -package=mocks -exclude_interfaces=Reader,Writer

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/stacklok/envtyped/validation/name"
)

// Reader defines read access to environment variables.
type Reader interface {
	// LookupEnv returns the value of the variable and whether it is present.
	LookupEnv(key string) (string, bool)
}

// Writer defines write access to environment variables.
type Writer interface {
	Setenv(key, value string) error
	Unsetenv(key string) error
}

// Store is a mutable environment.
type Store interface {
	Reader
	Writer

	// Environ returns a copy of the environment as "key=value" strings.
	Environ() []string
}

// OSStore implements Store using the standard os package
type OSStore struct{}

// LookupEnv retrieves the value of the environment variable named by the key
func (*OSStore) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Setenv sets the value of the environment variable named by the key
func (*OSStore) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Unsetenv unsets the environment variable named by the key
func (*OSStore) Unsetenv(key string) error {
	return os.Unsetenv(key)
}

// Environ returns the environment of the current process
func (*OSStore) Environ() []string {
	return os.Environ()
}

// MapStore is an in-memory Store.
// The zero value is an empty, ready to use store.
type MapStore struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapStore creates a MapStore holding a copy of initial.
func NewMapStore(initial map[string]string) *MapStore {
	vars := make(map[string]string, len(initial))
	maps.Copy(vars, initial)
	return &MapStore{vars: vars}
}

// LookupEnv implements Reader.
func (s *MapStore) LookupEnv(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[key]
	return v, ok
}

// Setenv implements Writer. Keys are held to the same rules the operating
// system applies to variable names.
func (s *MapStore) Setenv(key, value string) error {
	if err := name.ValidateVariableName(key); err != nil {
		return fmt.Errorf("setenv: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vars == nil {
		s.vars = make(map[string]string)
	}
	s.vars[key] = value
	return nil
}

// Unsetenv implements Writer. Removing an absent key is not an error.
func (s *MapStore) Unsetenv(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vars, key)
	return nil
}

// Environ implements Store. Entries are sorted by key.
func (s *MapStore) Environ() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := slices.Sorted(maps.Keys(s.vars))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+s.vars[k])
	}
	return out
}

// ToMap converts the environment of a store into a map.
// Entries without a separator are skipped; later duplicates win.
func ToMap(s Store) map[string]string {
	environ := s.Environ()
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := cutPair(kv)
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

// cutPair splits "key=value". Windows keeps per-drive working directories in
// variables such as "=C:", so a leading separator belongs to the key.
func cutPair(kv string) (string, string, bool) {
	if kv == "" {
		return "", "", false
	}
	for i := 1; i < len(kv); i++ {
		if kv[i] == '=' {
			return kv[:i], kv[i+1:], true
		}
	}
	return "", "", false
}
