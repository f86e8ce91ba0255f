// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package cel compiles boolean CEL conditions over environment variables.

A condition sees the environment as the map env, of type map(string, string),
and may call truthy(string), which accepts the same values as
envvar.ParseBool. Optional types are enabled, so a variable that may be
missing can be read with env.?NAME.orValue(default).

# Basic Usage

	engine := cel.NewEngine()

	cond, err := engine.Compile(`env.?APP_ENV.orValue("dev") == "prod"`)
	if err != nil {
	    // handle compilation error
	}

	ok, err := cond.Evaluate(&env.OSStore{})

Evaluate reads a snapshot of the store when it is called, so a compiled
condition can be kept and evaluated again after the environment changes.

# Expression Validation

Check validates a condition without creating a program, which is useful for
conditions read from configuration at startup:

	if err := engine.Check(os.Args[1]); err != nil {
	    log.Fatal(err)
	}

# Error Handling

Compilation errors carry location information:

	_, err := engine.Compile(`env["DEBUG"`)
	var parseErr *cel.ParseError
	if errors.As(err, &parseErr) {
	    fmt.Println(parseErr.Errors) // line/column/message details
	}

	_, err = engine.Compile(`enabled(env.DEBUG)`)
	var checkErr *cel.CheckError
	if errors.As(err, &checkErr) {
	    fmt.Println(checkErr.AsJSON())
	}

A condition that does not have type bool is rejected with ErrInvalidResult.
Reading a variable that is not set with env.NAME or env["NAME"] fails at
evaluation time with ErrEvaluation, as does truthy on a value outside the
truth table.

# Limits

	engine := cel.NewEngine().
	    WithMaxExpressionLength(5000).
	    WithCostLimit(500000)

# Concurrency

Engine and Condition are safe for concurrent use.
*/
package cel
