// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"

	"carvel.dev/sti/pkg/filepos"
)

// UndefinedVariableError describes a single insert of an undeclared variable.
type UndefinedVariableError struct {
	Var      Var
	Position *filepos.Position
	Hint     string
}

func (e UndefinedVariableError) Error() string {
	msg := fmt.Sprintf("variable '%s' is undefined", e.Var)
	if len(e.Hint) > 0 {
		msg += fmt.Sprintf(" (hint: %s)", e.Hint)
	}
	return msg
}

// UndefinedVariablesError aggregates every undefined insert of a template.
type UndefinedVariablesError []UndefinedVariableError

var _ error = UndefinedVariablesError{}

func (e UndefinedVariablesError) Error() string {
	result := []string{""}

	for _, err := range e {
		result = append(result, "- "+err.Error())
		if err.Position.IsKnown() {
			result = append(result, "    "+err.Position.AsCompactString())
		}
	}

	return strings.Join(result, "\n")
}

// Vars lists undefined variables in template order.
func (e UndefinedVariablesError) Vars() []Var {
	var result []Var
	for _, err := range e {
		result = append(result, err.Var)
	}
	return result
}

// MissingValueError is returned when a declared variable has neither
// a supplied input nor a default.
type MissingValueError struct {
	Name     string
	Position *filepos.Position
}

func (e MissingValueError) Error() string {
	msg := fmt.Sprintf("Expected value for variable '%s' to be provided (no input given and no default declared)", e.Name)
	if e.Position.IsKnown() {
		msg += fmt.Sprintf(" (declared at %s)", e.Position.AsCompactString())
	}
	return msg
}
