// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for conditions.
var (
	// ErrExpressionCheck is returned when a condition fails syntax or type checking.
	ErrExpressionCheck = errors.New("condition check failed")

	// ErrEvaluation is returned when evaluating a condition fails, for example
	// because it reads a variable that is not set or exceeds the cost limit.
	ErrEvaluation = errors.New("condition evaluation failed")

	// ErrInvalidResult is returned when a condition does not produce a bool.
	ErrInvalidResult = errors.New("condition is not boolean")
)

// ErrKind identifies the stage at which a condition was rejected.
type ErrKind string

const (
	// ErrKindParse indicates a syntax error.
	ErrKindParse ErrKind = "parse"
	// ErrKindCheck indicates a type checking error.
	ErrKindCheck ErrKind = "check"
)

// ErrInstance is one issue found in a condition.
type ErrInstance struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// ErrDetails lists the issues found in a condition.
type ErrDetails struct {
	Errors []ErrInstance `json:"errors,omitempty"`
	Source string        `json:"source,omitempty"`
}

// AsJSON returns the details as a JSON string.
func (ed *ErrDetails) AsJSON() string {
	b, err := json.Marshal(ed)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return string(b)
}

func detailsOf(source string, issues *cel.Issues) ErrDetails {
	ed := ErrDetails{
		Source: source,
		Errors: make([]ErrInstance, 0, len(issues.Errors())),
	}
	for _, issue := range issues.Errors() {
		ed.Errors = append(ed.Errors, ErrInstance{
			Line: issue.Location.Line(),
			Col:  issue.Location.Column(),
			Msg:  issue.Message,
		})
	}
	return ed
}

// ParseError reports a syntax error in a condition.
type ParseError struct {
	ErrDetails
	original error
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s error in condition %q: %s", ErrKindParse, pe.Source, pe.original)
}

// Unwrap returns the underlying error.
func (pe *ParseError) Unwrap() error {
	return pe.original
}

// CheckError reports a type error in a condition, such as a call to an
// undeclared function.
type CheckError struct {
	ErrDetails
	original error
}

func (ce *CheckError) Error() string {
	return fmt.Sprintf("%s error in condition %q: %s", ErrKindCheck, ce.Source, ce.original)
}

// Unwrap returns the underlying error.
func (ce *CheckError) Unwrap() error {
	return ce.original
}

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{
		ErrDetails: detailsOf(source, issues),
		original:   fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{
		ErrDetails: detailsOf(source, issues),
		original:   fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}
