// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"carvel.dev/sti/pkg/template"
	"carvel.dev/sti/pkg/texttemplate"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *template.FunctionBody {
	t.Helper()
	body, err := texttemplate.NewParser().Parse([]byte(src), "stdin")
	require.NoError(t, err, "source: %q", src)
	return stripPositions(body.(*template.FunctionBody))
}

func parseErr(t *testing.T, src string) texttemplate.ParseError {
	t.Helper()
	_, err := texttemplate.NewParser().Parse([]byte(src), "stdin")
	require.Error(t, err, "source: %q", src)

	var parseErr texttemplate.ParseError
	require.True(t, errors.As(err, &parseErr))
	return parseErr
}

// stripPositions allows comparing bodies by structure only.
func stripPositions(body *template.FunctionBody) *template.FunctionBody {
	result := &template.FunctionBody{Decls: template.Decls{}}
	for _, decl := range body.Decls {
		decl.Position = nil
		result.Decls = append(result.Decls, decl)
	}
	for _, part := range body.Template {
		if insert, ok := part.(template.InsertPart); ok {
			insert.Position = nil
			part = insert
		}
		result.Template = append(result.Template, part)
	}
	return result
}

func ident(name string) template.Var { return template.NewIdent(name) }

func chars(str string) template.Template { return template.NewTemplateFromString(str) }

func declsBody(names ...string) *template.FunctionBody {
	decls := template.Decls{}
	for _, name := range names {
		decls = append(decls, template.Decl{Var: ident(name)})
	}
	return &template.FunctionBody{Decls: decls, Template: chars("f")}
}

func TestParseValidSources(t *testing.T) {
	fooInsert := template.InsertPart{Var: ident("foo")}

	cases := []struct {
		desc     string
		src      string
		expected *template.FunctionBody
	}{
		{"text only", "{}->f", declsBody()},
		{"newline after arrow is dropped", "{}->\nf", declsBody()},
		{"crlf after arrow is dropped", "{}->\r\nf", declsBody()},
		{"only one newline is dropped", "{}->\n\nf", &template.FunctionBody{Decls: template.Decls{}, Template: chars("\nf")}},
		{"spaces after arrow are literal", "{}-> f", &template.FunctionBody{Decls: template.Decls{}, Template: chars(" f")}},
		{"single decl", "{foo}->\nf", declsBody("foo")},
		{"single decl trailing comma", "{foo,}->\nf", declsBody("foo")},
		{"multiple decls", "{foo,bar,baz}->\nf", declsBody("foo", "bar", "baz")},
		{"multiple decls trailing comma", "{foo,bar,baz,}->\nf", declsBody("foo", "bar", "baz")},
		{"whitespace before arrow", "{} \n  \t->\nf", declsBody()},
		{"whitespace inside braces", "{  }->f", declsBody()},
		{"leading whitespace", "\n\n\t  \n  {}->f", declsBody()},
		{"whitespace around decls", "\n\n\t  \n  {  foo, \n\nbar, }  ->f", declsBody("foo", "bar")},
		{"duplicate decls are kept", "{foo, foo}->f", declsBody("foo", "foo")},
		{"identifiers with digits and underscores", "{a1, _b, C_2}->f", declsBody("a1", "_b", "C_2")},
		{
			"insert only",
			"{}->%{foo}",
			&template.FunctionBody{Decls: template.Decls{}, Template: template.Template{fooInsert}},
		},
		{
			"mixed parts",
			"{}->foo%{foo}b%{foo}bar",
			&template.FunctionBody{Decls: template.Decls{}, Template: append(append(append(append(chars("foo"), fooInsert), chars("b")...), fooInsert), chars("bar")...)},
		},
		{
			"escaped percent",
			"{}->f%%f",
			&template.FunctionBody{Decls: template.Decls{}, Template: chars("f%f")},
		},
		{
			"ignore decl and insert",
			"{_}->%{_}",
			&template.FunctionBody{
				Decls:    template.Decls{{Var: template.IgnoreVar}},
				Template: template.Template{template.InsertPart{Var: template.IgnoreVar}},
			},
		},
		{
			"defaults",
			"{foo ? \"def\", bar?\"\", baz ?\n\"a, b}\"}->f",
			&template.FunctionBody{
				Decls: template.Decls{
					{Var: ident("foo"), Default: template.NewStrDeclValue("def")},
					{Var: ident("bar"), Default: template.NewStrDeclValue("")},
					{Var: ident("baz"), Default: template.NewStrDeclValue("a, b}")},
				},
				Template: chars("f"),
			},
		},
		{
			"braces and arrows in template are literal",
			"{}->{x}->}",
			&template.FunctionBody{Decls: template.Decls{}, Template: chars("{x}->}")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, parse(t, tc.src))
		})
	}
}

func TestParseInvalidSources(t *testing.T) {
	cases := []struct {
		desc string
		src  string
		msg  string
	}{
		{"empty source", "", "Expected '{' to open declarations, but found end of input at line stdin:1:1"},
		{"empty template", "{}->", "Expected template body after '->', but found end of input at line stdin:1:5"},
		{"empty template after newline", "{}->\n", "Expected template body after '->', but found end of input at line stdin:2:1"},
		{"missing arrow", "{}f", "Expected '->' after declarations, but found 'f' at line stdin:1:3"},
		{"unclosed decls", "{foo", "Expected ',' or '}' after declaration, but found end of input at line stdin:1:5"},
		{"unclosed decls after comma", "{foo,", "Expected '}' to close declarations, but found end of input at line stdin:1:6"},
		{"double comma", "{foo,,}->f", "Expected variable name, but found ',' at line stdin:1:6"},
		{"missing comma", "{foo bar}->f", "Expected ',' or '}' after declaration, but found 'b' at line stdin:1:6"},
		{"decl starting with digit", "{1foo}->f", "Expected variable name, but found '1' at line stdin:1:2"},
		{"default without string", "{foo ? bar}->f", "Expected '\"' to open default value, but found 'b' at line stdin:1:8"},
		{"unterminated default", "{foo ? \"bar}->f", "Expected string literal to be closed with '\"', but reached end of input at line stdin:1:8"},
		{"bare percent", "{}->100% done", "Expected '%' or '{' after '%' (use '%%' for a literal '%'), but found ' ' at line stdin:1:9"},
		{"trailing percent", "{}->100%", "Expected '%' or '{' after '%' (use '%%' for a literal '%'), but found end of input at line stdin:1:9"},
		{"unclosed insert", "{}->%{foo", "Expected '}' to close insert, but found end of input at line stdin:1:10"},
		{"space inside insert", "{}->%{ foo}", "Expected variable name, but found ' ' at line stdin:1:7"},
		{"expression inside insert", "{a}->%{a+1}", "Expected '}' to close insert, but found '+' at line stdin:1:9"},
		{"empty insert", "{}->%{}", "Expected variable name, but found '}' at line stdin:1:7"},
		{"error on later line", "{\n  foo,\n  -bar\n}->f", "Expected variable name, but found '-' at line stdin:3:3"},
		{"invalid utf-8 in template", "{}->\xffx", "Expected source to be valid UTF-8, but found byte 0xff at line stdin:1:5"},
		{"invalid utf-8 after multibyte chars", "{}->\u00e9\n\u00e9\xfe", "Expected source to be valid UTF-8, but found byte 0xfe at line stdin:2:2"},
		{"invalid utf-8 in default", "{a ? \"\xc3\"}->%{a}", "Expected source to be valid UTF-8, but found byte 0xc3 at line stdin:1:7"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := parseErr(t, tc.src)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestParseAcceptsEncodedReplacementChar(t *testing.T) {
	body := parse(t, "{}->\uFFFDx")
	assert.Equal(t, chars("\uFFFDx"), body.Template)
}

func TestParseRecordsPositions(t *testing.T) {
	body, err := texttemplate.NewParser().Parse([]byte("{\n  foo ? \"x\",\n  bar\n}->\nhi %{foo}\n%{bar}"), "greeting.sti")
	require.NoError(t, err)

	fnBody := body.(*template.FunctionBody)
	require.Len(t, fnBody.Decls, 2)
	assert.Equal(t, "greeting.sti:2:3", fnBody.Decls[0].Position.AsCompactString())
	assert.Equal(t, "greeting.sti:3:3", fnBody.Decls[1].Position.AsCompactString())

	inserts := fnBody.Template.Inserts()
	require.Len(t, inserts, 2)
	assert.Equal(t, "greeting.sti:5:4", inserts[0].Position.AsCompactString())
	assert.Equal(t, "greeting.sti:6:1", inserts[1].Position.AsCompactString())
}

func TestParseSourceStringRoundTrip(t *testing.T) {
	for _, src := range []string{
		"{}->f",
		"{foo ? \"def\", _, bar}->a%%b%{foo}%{_}",
		"{}->\n\nleading newline",
	} {
		body := parse(t, src)
		assert.Equal(t, body, parse(t, body.AsSourceString()), "source: %q", src)
	}
}

func TestParseFuzzedTextIsLiteral(t *testing.T) {
	f := fuzz.New().NilChance(0)

	for i := 0; i < 500; i++ {
		var text string
		f.Fuzz(&text)
		if len(text) == 0 || !utf8.ValidString(text) {
			continue
		}

		src := "{}->\n" + strings.ReplaceAll(text, "%", "%%")
		body := parse(t, src)
		assert.Equal(t, chars(text), body.Template)
		assert.Equal(t, body, parse(t, body.AsSourceString()))
	}
}

func TestParseFuzzedSourceNeverPanics(t *testing.T) {
	f := fuzz.New().NilChance(0)
	prefixes := []string{"", "{", "{a", "{a ?", "{a,}", "{}->", "{}->%", "{}->%{"}

	for i := 0; i < 500; i++ {
		var text string
		f.Fuzz(&text)

		src := prefixes[i%len(prefixes)] + text
		assert.NotPanics(t, func() {
			body1, err1 := texttemplate.NewParser().Parse([]byte(src), "")
			body2, err2 := texttemplate.NewParser().Parse([]byte(src), "")
			assert.Equal(t, err1, err2)
			assert.Equal(t, body1, body2)
		})
	}
}
