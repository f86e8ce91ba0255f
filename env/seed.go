// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSeed is returned when a seed document cannot be mapped onto
// environment variables.
var ErrInvalidSeed = errors.New("invalid environment seed")

// DotenvPath returns the per-user dotenv file for an application within the
// given config home directory.
// This is the injectable, testable form. For the standard XDG location, use DefaultDotenvPath.
func DotenvPath(configHome, app string) string {
	return filepath.Join(configHome, app, ".env")
}

// DefaultDotenvPath returns the per-user dotenv file using XDG base directory conventions.
func DefaultDotenvPath(app string) string {
	return DotenvPath(xdg.ConfigHome, app)
}

// LoadDotenv reads each dotenv file in order and writes its variables into
// the store. Files that do not exist are skipped.
//
// Without overload a variable that is already present is left alone, so the
// first file mentioning a variable wins. With overload every file replaces
// what came before it.
func LoadDotenv(store Store, overload bool, paths ...string) error {
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("reading dotenv file %s: %w", path, err)
		}
		if err := apply(store, vars, overload); err != nil {
			return fmt.Errorf("loading dotenv file %s: %w", path, err)
		}
	}
	return nil
}

// LoadYAML writes the variables of a flat YAML mapping into the store.
//
// Scalars are stored in their literal YAML form, so `port: 0080` is stored as
// "0080". Sequences of scalars are joined with commas. Null values are skipped.
// Nested mappings are rejected with ErrInvalidSeed.
func LoadYAML(store Store, r io.Reader, overload bool) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: top level must be a mapping", ErrInvalidSeed)
	}

	vars := make(map[string]string, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		s, ok, err := scalarText(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidSeed, key.Value, err)
		}
		if !ok {
			continue
		}
		vars[key.Value] = s
	}
	return apply(store, vars, overload)
}

// LoadJSON writes the variables of a flat JSON object into the store.
//
// Strings are stored unquoted, numbers and booleans in their JSON text, and
// arrays of scalars are joined with commas. Null values are skipped. Nested
// objects are rejected with ErrInvalidSeed.
func LoadJSON(store Store, data []byte, overload bool) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidSeed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("%w: top level must be an object", ErrInvalidSeed)
	}

	vars := make(map[string]string)
	var err error
	root.ForEach(func(key, value gjson.Result) bool {
		var s string
		var ok bool
		s, ok, err = jsonText(value)
		if err != nil {
			err = fmt.Errorf("%w: %s: %w", ErrInvalidSeed, key.String(), err)
			return false
		}
		if ok {
			vars[key.String()] = s
		}
		return true
	})
	if err != nil {
		return err
	}
	return apply(store, vars, overload)
}

func jsonText(v gjson.Result) (string, bool, error) {
	switch {
	case v.Type == gjson.Null:
		return "", false, nil
	case v.Type == gjson.String:
		return v.Str, true, nil
	case v.IsArray():
		var items []string
		var err error
		v.ForEach(func(_, item gjson.Result) bool {
			if item.Type == gjson.JSON || item.Type == gjson.Null {
				err = errors.New("array items must be scalars")
				return false
			}
			if item.Type == gjson.String {
				items = append(items, item.Str)
			} else {
				items = append(items, item.Raw)
			}
			return true
		})
		if err != nil {
			return "", false, err
		}
		return strings.Join(items, ","), true, nil
	case v.IsObject():
		return "", false, errors.New("nested objects are not supported")
	default:
		return v.Raw, true, nil
	}
}

func scalarText(n *yaml.Node) (string, bool, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "", false, nil
		}
		return n.Value, true, nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return "", false, fmt.Errorf("line %d: sequence items must be scalars", item.Line)
			}
			items = append(items, item.Value)
		}
		return strings.Join(items, ","), true, nil
	case yaml.AliasNode:
		return scalarText(n.Alias)
	case yaml.DocumentNode, yaml.MappingNode:
		return "", false, fmt.Errorf("line %d: nested mappings are not supported", n.Line)
	default:
		return "", false, fmt.Errorf("line %d: unsupported node", n.Line)
	}
}

func apply(store Store, vars map[string]string, overload bool) error {
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		if !overload {
			if _, exists := store.LookupEnv(k); exists {
				continue
			}
		}
		if err := store.Setenv(k, vars[k]); err != nil {
			return err
		}
	}
	return nil
}
