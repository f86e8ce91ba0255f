// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package envvar reads environment variables as typed values.

An [Accessor] wraps an [env.Store] and offers a raw [Accessor.Read], plus
getters that cast the resolved value: [Accessor.Str], [Accessor.Bool],
[Accessor.Int], [Accessor.Float], [Accessor.List] and [Accessor.Tuple].
Package-level functions of the same names operate on the environment of the
current process.

# Basic Usage

	a := envvar.New(&env.OSStore{})

	port, err := a.Int("PORT", envvar.Default(8080))
	if err != nil {
	    return err
	}
	listen := fmt.Sprintf(":%d", port.Or(8080))

# Resolution

Every getter resolves its variable the same way:

 1. The primary name is looked up. A present value is used even when empty.
 2. Otherwise each [Fallback] name is tried in order.
 3. Otherwise the [Default] is used.
 4. Otherwise the result is unset if [AllowNone] was given, and the read
    fails with [ErrMissing] if not.

Getters then trim whitespace and cast. Defaults go through the same cast, so
a default may be another getter's result:

	timeout, err := a.Int("HTTP_TIMEOUT",
	    envvar.Fallback("TIMEOUT"),
	    envvar.Default(legacyTimeout), // a Value[string] from a.Str
	)

# Optional Values

Getters return a [Value], which is unset only when AllowNone let a missing
variable through:

	token, err := a.Str("API_TOKEN", envvar.AllowNone())
	if v, ok := token.Value(); ok {
	    client.SetToken(v)
	}

# Booleans

Booleans are case-insensitive. True values are y, yes, t, true, on and 1.
False values are n, no, f, false, off, 0 and the empty string. Anything else
fails with [ErrInvalidBool].

[Accessor.Lookup] resolves like Read and also reports which variable supplied
the value, which helps when a value found under a legacy name needs a
different interpretation.

# Presence

[Accessor.IsSet] treats a variable holding the empty string as not set,
while [Accessor.Read] treats it as present. Code that must tell "empty" from
"absent" should use Read.

# Errors

Failures are returned as [*VariableError] wrapping one of [ErrMissing],
[ErrInvalidBool], [ErrInvalidNumber] or [ErrInvalidList]:

	_, err := a.Int("WORKERS")
	if errors.Is(err, envvar.ErrInvalidNumber) {
	    // WORKERS is set but not a number
	}

# Struct Binding

[Accessor.Bind] fills a tagged struct in one call using caarlos0/env, reading
from the same store and applying the same boolean rules.
*/
package envvar
