// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"fmt"
)

// Stage names the step of evaluation that failed.
type Stage string

const (
	StageParse   Stage = "parse"
	StageVerify  Stage = "verify"
	StageResolve Stage = "resolve"
)

var stageDescriptions = map[Stage]string{
	StageParse:   "Parsing template",
	StageVerify:  "Verifying template",
	StageResolve: "Resolving values for template",
}

// EngineError wraps the error of the failed stage. Use errors.As to get to
// texttemplate.ParseError, template.UndefinedVariablesError or
// template.MissingValueError.
type EngineError struct {
	Stage Stage
	Name  string
	Err   error
}

var _ error = EngineError{}

func (e EngineError) Error() string {
	desc := stageDescriptions[e.Stage]
	if len(e.Name) > 0 {
		desc += fmt.Sprintf(" '%s'", e.Name)
	}
	return fmt.Sprintf("%s: %s", desc, e.Err)
}

func (e EngineError) Unwrap() error { return e.Err }
