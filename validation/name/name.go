// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"fmt"
	"regexp"
	"strings"
)

var validAliasRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// ValidateVariableName validates that a string can be used as an environment
// variable name.
func ValidateVariableName(key string) error {
	if key == "" {
		return fmt.Errorf("variable name cannot be empty")
	}

	if strings.Contains(key, "\x00") {
		return fmt.Errorf("variable name cannot contain null bytes: %q", key)
	}

	if strings.Contains(key, "=") {
		return fmt.Errorf("variable name cannot contain '=': %q", key)
	}

	return nil
}

// NormalizeAlias trims surrounding whitespace, upper-cases a link alias and
// maps dashes to underscores, as Docker does for link variable names.
func NormalizeAlias(alias string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(alias)), "-", "_")
}

// ValidateAlias validates a normalised link alias.
func ValidateAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("alias cannot be empty or consist only of whitespace")
	}

	if !validAliasRegex.MatchString(alias) {
		return fmt.Errorf("alias can only contain uppercase letters, digits and underscores, starting with a letter: %q", alias)
	}

	return nil
}
