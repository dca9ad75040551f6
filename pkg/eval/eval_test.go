// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package eval_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"carvel.dev/sti/pkg/eval"
	"carvel.dev/sti/pkg/template"
	"carvel.dev/sti/pkg/texttemplate"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateScenarios(t *testing.T) {
	cases := []struct {
		src      string
		inputs   template.MapInputs
		expected string
	}{
		{"{}->f", template.MapInputs{}, "f"},
		{"{}->f%%f", template.MapInputs{}, "f%f"},
		{"{foo}->%{foo}", template.MapInputs{"foo": "bar"}, "bar"},
		{"{foo ? \"def\"}->%{foo}", template.MapInputs{}, "def"},
		{"{foo ? \"def\"}->%{foo}", template.MapInputs{"foo": "given"}, "given"},
		{"{_}->a%{_}b", template.MapInputs{}, "ab"},
		{"{}->a%{_}b", template.MapInputs{"_": "never used"}, "ab"},
		{"{foo}->%{foo}", template.MapInputs{"foo": "bar", "unused": "x"}, "bar"},
		{"{first, last}->\n%{first} %{last}!\n", template.MapInputs{"first": "Ada", "last": "Lovelace"}, "Ada Lovelace!\n"},
		{"{v}->%{v}%%{v}", template.MapInputs{"v": "x"}, "x%{v}"},
		{"{v}->%{v}", template.MapInputs{"v": "%{v} stays as is"}, "%{v} stays as is"},
	}

	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			out, err := eval.Evaluate(tc.src, tc.inputs)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestEvaluateUndefinedVariableFailsVerification(t *testing.T) {
	_, err := eval.Evaluate("{}->%{foo}", template.MapInputs{})
	require.Error(t, err)

	var engineErr eval.EngineError
	require.True(t, errors.As(err, &engineErr))
	assert.Equal(t, eval.StageVerify, engineErr.Stage)

	var undefinedErr template.UndefinedVariablesError
	require.True(t, errors.As(err, &undefinedErr))
	assert.Equal(t, []template.Var{template.NewIdent("foo")}, undefinedErr.Vars())

	assert.Equal(t, "Verifying template: \n- variable 'foo' is undefined\n    1:5", err.Error())
}

func TestEvaluateReportsAllUndefinedVariables(t *testing.T) {
	_, err := eval.Evaluate("{x}->%{a}%{x}%{b}%{c}", template.MapInputs{"a": "1", "b": "2", "c": "3"})

	var undefinedErr template.UndefinedVariablesError
	require.True(t, errors.As(err, &undefinedErr))
	assert.Equal(t, []template.Var{template.NewIdent("a"), template.NewIdent("b"), template.NewIdent("c")}, undefinedErr.Vars())
}

func TestEvaluateMissingValueFailsResolution(t *testing.T) {
	_, err := eval.EvaluateNamed("tpl.sti", "{foo}->%{foo}", template.MapInputs{})
	require.Error(t, err)

	var engineErr eval.EngineError
	require.True(t, errors.As(err, &engineErr))
	assert.Equal(t, eval.StageResolve, engineErr.Stage)

	var missingErr template.MissingValueError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "foo", missingErr.Name)

	assert.Equal(t, "Resolving values for template 'tpl.sti': Expected value for variable 'foo' to be provided "+
		"(no input given and no default declared) (declared at tpl.sti:1:2)", err.Error())
}

func TestEvaluateParseErrors(t *testing.T) {
	for _, src := range []string{"", "{}->", "{}->100%", "{foo->x", "{}->%{a"} {
		out, err := eval.Evaluate(src, template.MapInputs{})
		require.Error(t, err, "source: %q", src)
		assert.Empty(t, out)

		var engineErr eval.EngineError
		require.True(t, errors.As(err, &engineErr))
		assert.Equal(t, eval.StageParse, engineErr.Stage)

		var parseErr texttemplate.ParseError
		assert.True(t, errors.As(err, &parseErr))
	}
}

func TestEvaluateRejectsInvalidUTF8(t *testing.T) {
	out, err := eval.Evaluate("{}->\xffx", template.MapInputs{"x": "y"})
	require.EqualError(t, err, "Parsing template: Expected source to be valid UTF-8, but found byte 0xff at line 1:5")
	assert.Empty(t, out)
}

func TestEvaluateVerifiesBeforeResolving(t *testing.T) {
	// both undefined insert and missing value; verification wins
	_, err := eval.Evaluate("{a}->%{b}", template.MapInputs{})

	var engineErr eval.EngineError
	require.True(t, errors.As(err, &engineErr))
	assert.Equal(t, eval.StageVerify, engineErr.Stage)
}

func TestPreparedCanBeEvaluatedRepeatedly(t *testing.T) {
	prepared, err := eval.Prepare("greeting", []byte(`{greeting ? "Hello", name}->%{greeting}, %{name}!`))
	require.NoError(t, err)
	assert.Equal(t, "greeting", prepared.Name())
	assert.Len(t, prepared.Decls(), 2)

	out, err := prepared.Evaluate(template.MapInputs{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!", out)

	out, err = prepared.Evaluate(template.MapInputs{"name": "Grace", "greeting": "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "Hi, Grace!", out)

	values, err := prepared.Values(template.MapInputs{"name": "Ada"})
	require.NoError(t, err)

	var pairs []string
	values.Iterate(func(v template.Var, val string) { pairs = append(pairs, v.String()+"="+val) })
	assert.Equal(t, []string{"greeting=Hello", "name=Ada"}, pairs)

	_, err = prepared.Values(template.MapInputs{})
	assert.Error(t, err)
}

func TestPreparedIsSafeForConcurrentUse(t *testing.T) {
	prepared, err := eval.Prepare("", []byte("{n}->#%{n}"))
	require.NoError(t, err)

	results := make([]string, 50)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := prepared.Evaluate(template.MapInputs{"n": fmt.Sprint(i)})
			if err == nil {
				results[i] = out
			}
		}(i)
	}
	wg.Wait()

	for i, out := range results {
		assert.Equal(t, fmt.Sprintf("#%d", i), out)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 5)

	for i := 0; i < 200; i++ {
		var text string
		var value string
		f.Fuzz(&text)
		f.Fuzz(&value)

		src := "{v}->" + "<" + strings.ReplaceAll(text, "%", "%%") + "%{v}>"
		inputs := template.MapInputs{"v": value}

		out1, err1 := eval.Evaluate(src, inputs)
		out2, err2 := eval.Evaluate(src, inputs)
		assert.Equal(t, err1, err2)
		assert.Equal(t, out1, out2)
	}
}
