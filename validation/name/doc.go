// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package name provides validation functions for environment variable names and
container link aliases.

# Variable Names

Operating systems accept almost any byte sequence as a variable name, but a
few are rejected outright. ValidateVariableName applies the same rules so an
in-memory environment fails where the real one would:

	if err := name.ValidateVariableName("DATABASE_URL"); err != nil {
		// Handle invalid variable name
	}

Valid variable names must:
  - Be non-empty
  - Not contain '='
  - Not contain null bytes

# Link Aliases

Container links export variables such as DB_PORT for an alias "db". Aliases
are normalised before use and then validated:

	alias := name.NormalizeAlias(" db ") // "DB"
	if err := name.ValidateAlias(alias); err != nil {
		// Handle invalid alias
	}

Valid aliases start with an uppercase letter followed by uppercase letters,
digits and underscores.
*/
package name
