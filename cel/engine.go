// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/stacklok/envtyped/env"
	"github.com/stacklok/envtyped/envvar"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a condition.
	DefaultMaxExpressionLength = 10000

	// DefaultCostLimit is the default runtime cost limit for evaluating a condition.
	DefaultCostLimit = 1000000

	// EnvVariable is the name under which conditions see the environment.
	EnvVariable = "env"
)

// Engine compiles conditions over environment variables. Conditions see the
// environment as the map `env` of type map(string, string) and may call
// truthy(string), which applies the envvar truth table.
//
// It is safe for concurrent use from multiple goroutines.
type Engine struct {
	options             []cel.EnvOption
	maxExpressionLength int
	costLimit           uint64

	once sync.Once
	env  *cel.Env
	err  error
}

// Condition is a compiled boolean condition ready for evaluation.
type Condition struct {
	source  string
	program cel.Program
}

// Source returns the original condition source.
func (c *Condition) Source() string {
	return c.source
}

// NewEngine creates an engine. Extra options are appended to the built-in
// declarations, so callers can add variables or functions of their own.
//
//	engine := cel.NewEngine()
//	cond, err := engine.Compile(`env.?APP_ENV.orValue("dev") == "prod" && truthy(env.DEBUG)`)
func NewEngine(options ...cel.EnvOption) *Engine {
	base := []cel.EnvOption{
		cel.Variable(EnvVariable, cel.MapType(cel.StringType, cel.StringType)),
		cel.OptionalTypes(),
		cel.Function("truthy",
			cel.Overload("truthy_string", []*cel.Type{cel.StringType}, cel.BoolType,
				cel.UnaryBinding(truthy))),
	}
	return &Engine{
		options:             append(base, options...),
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

func truthy(v ref.Val) ref.Val {
	s, ok := v.Value().(string)
	if !ok {
		return types.MaybeNoSuchOverloadErr(v)
	}
	b, err := envvar.ParseBool(s)
	if err != nil {
		return types.NewErr("truthy: %s", err.Error())
	}
	return types.Bool(b)
}

// WithMaxExpressionLength sets the maximum allowed length for conditions.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit for evaluating conditions.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.err = cel.NewEnv(e.options...)
	})
	return e.env, e.err
}

func (e *Engine) checked(expr string) (*cel.Ast, *cel.Env, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	celEnv, err := e.getEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsed, issues := celEnv.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newParseError(expr, issues)
	}

	checked, issues := celEnv.Check(parsed)
	if issues.Err() != nil {
		return nil, nil, newCheckError(expr, issues)
	}

	if !checked.OutputType().IsExactType(cel.BoolType) {
		return nil, nil, fmt.Errorf("%w: condition %q has type %s, want bool",
			ErrInvalidResult, expr, checked.OutputType())
	}
	return checked, celEnv, nil
}

// Compile parses and type checks a condition. The condition must evaluate to
// a bool.
//
// Returns ErrExpressionCheck if the condition is too long, a ParseError for
// syntax errors, a CheckError for type errors and ErrInvalidResult for a
// condition of another type.
func (e *Engine) Compile(expr string) (*Condition, error) {
	checked, celEnv, err := e.checked(expr)
	if err != nil {
		return nil, err
	}

	program, err := celEnv.Program(checked, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Condition{source: expr, program: program}, nil
}

// Check validates a condition without building a program, for use when
// loading configuration.
func (e *Engine) Check(expr string) error {
	_, _, err := e.checked(expr)
	return err
}

// Evaluate runs the condition against a snapshot of the store.
func (c *Condition) Evaluate(store env.Store) (bool, error) {
	return c.EvaluateVars(env.ToMap(store))
}

// EvaluateVars runs the condition against the given variables.
func (c *Condition) EvaluateVars(vars map[string]string) (bool, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	out, _, err := c.program.Eval(map[string]any{EnvVariable: vars})
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return b, nil
}
