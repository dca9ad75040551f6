// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"carvel.dev/sti/pkg/template"
	"carvel.dev/sti/pkg/texttemplate"
)

// Evaluate parses, verifies, resolves and reduces source with inputs.
// It either returns the whole output or an EngineError.
func Evaluate(source string, inputs template.Inputs) (string, error) {
	return EvaluateNamed("", source, inputs)
}

// EvaluateNamed is Evaluate with a source name used in error positions.
func EvaluateNamed(name, source string, inputs template.Inputs) (string, error) {
	prepared, err := Prepare(name, []byte(source))
	if err != nil {
		return "", err
	}
	return prepared.Evaluate(inputs)
}

// Prepared is a parsed and verified source that can be evaluated
// repeatedly, including from multiple goroutines.
type Prepared struct {
	name string
	body template.VerifiedBody
}

// Parse only checks syntax.
func Parse(name string, source []byte) (template.Body, error) {
	body, err := texttemplate.NewParser().Parse(source, name)
	if err != nil {
		return nil, EngineError{Stage: StageParse, Name: name, Err: err}
	}
	return body, nil
}

// Prepare parses and verifies source.
func Prepare(name string, source []byte) (*Prepared, error) {
	body, err := Parse(name, source)
	if err != nil {
		return nil, err
	}

	verified, err := template.Verify(body)
	if err != nil {
		return nil, EngineError{Stage: StageVerify, Name: name, Err: err}
	}

	return &Prepared{name: name, body: verified}, nil
}

func (p *Prepared) Name() string { return p.name }

func (p *Prepared) Decls() template.Decls { return p.body.Decls() }

// Values resolves declarations against inputs without reducing.
func (p *Prepared) Values(inputs template.Inputs) (*template.Values, error) {
	resolved, err := p.resolve(inputs)
	if err != nil {
		return nil, err
	}
	return resolved.Values(), nil
}

func (p *Prepared) Evaluate(inputs template.Inputs) (string, error) {
	resolved, err := p.resolve(inputs)
	if err != nil {
		return "", err
	}
	return resolved.Reduce(), nil
}

func (p *Prepared) resolve(inputs template.Inputs) (template.VerifiedTemplate, error) {
	resolved, err := p.body.Resolve(inputs)
	if err != nil {
		return template.VerifiedTemplate{}, EngineError{Stage: StageResolve, Name: p.name, Err: err}
	}
	return resolved, nil
}
