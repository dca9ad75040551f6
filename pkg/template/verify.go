// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"

	"carvel.dev/sti/pkg/spell"
)

// VerifiedBody is a template whose inserts are all declared.
// It can only be obtained from Verify.
type VerifiedBody struct {
	decls    Decls
	template Template
}

func (b VerifiedBody) Decls() Decls       { return b.decls }
func (b VerifiedBody) Template() Template { return b.template }

// Verify checks that every insert of the body's template refers to a declared
// variable (or to the ignore variable). All undefined inserts are reported
// together as UndefinedVariablesError.
func Verify(body Body) (VerifiedBody, error) {
	switch typedBody := body.(type) {
	case *FunctionBody:
		errs := verifyTemplate(typedBody.Template, typedBody.Decls)
		if len(errs) > 0 {
			return VerifiedBody{}, errs
		}
		return VerifiedBody{decls: typedBody.Decls, template: typedBody.Template}, nil

	default:
		panic(fmt.Sprintf("unknown body type %T", typedBody))
	}
}

func verifyTemplate(template Template, decls Decls) UndefinedVariablesError {
	var errs UndefinedVariablesError
	var names []string

	for _, insert := range template.Inserts() {
		if decls.Defines(insert.Var) {
			continue
		}
		if names == nil {
			names = decls.Names()
		}
		err := UndefinedVariableError{Var: insert.Var, Position: insert.Position}
		if suggestion, ok := spell.Suggest(insert.Var.Name, names); ok {
			err.Hint = fmt.Sprintf("did you mean '%s'?", suggestion)
		}
		errs = append(errs, err)
	}

	return errs
}

// Resolve combines the verified declarations with inputs.
func (b VerifiedBody) Resolve(inputs Inputs) (VerifiedTemplate, error) {
	values, err := inputs.Resolve(b.decls)
	if err != nil {
		return VerifiedTemplate{}, err
	}
	return VerifiedTemplate{template: b.template, values: values}, nil
}

// VerifiedTemplate pairs a verified template with values resolved
// from its declarations, so it can always be reduced.
type VerifiedTemplate struct {
	template Template
	values   *Values
}

func (t VerifiedTemplate) Values() *Values { return t.values }

func (t VerifiedTemplate) Reduce() string {
	return Reduce(t.template, t.values)
}
