// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package gate runs functions depending on environment variables.

Each gate wraps a function and returns a new function with the gate applied.
A skipped call returns an unset [envvar.Value] and a nil error, so callers
can tell "skipped" from "ran and returned the zero value".

# Conditional Execution

	a := envvar.New(&env.OSStore{})

	migrate := gate.IfSet(a, "DATABASE_URL", runMigrations)
	res, err := migrate()
	if !res.IsSet() {
	    // DATABASE_URL was not set, nothing ran
	}

	seed := gate.IfBool(a, "SEED_DATA", true, seedDatabase)
	verbose := gate.IfBool(a, "QUIET", false, printBanner, envvar.Default(false))

IfBool only runs the function when the variable, or the default given with
[envvar.Default], is a valid boolean equal to the wanted value. A missing
variable without a default never runs the function.

Conditions compiled with the cel package can combine several variables:

	cond, _ := cel.NewEngine().Compile(`env.?APP_ENV.orValue("") == "prod" && truthy(env.METRICS)`)
	export := gate.When(cond, a, startExporter)

# Scoped Override

With sets a variable for the duration of a call and then puts back exactly
what was there before, including absence. The previous state is restored
when the function returns an error and when it panics:

	run := gate.With(a, "TZ", "UTC", renderReport)
	report, err := run()

# Tests

SkipUnlessSet and SkipUnlessBool skip a test depending on the environment,
and Setenv overrides a variable for the rest of a test:

	func TestIntegration(t *testing.T) {
	    gate.SkipUnlessBool(t, a, "INTEGRATION", true)
	    gate.Setenv(t, a, "API_URL", server.URL)
	    ...
	}
*/
package gate
