// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"

	"carvel.dev/sti/pkg/filepos"
)

// IgnoreName is the spelling of the wildcard variable.
const IgnoreName = "_"

// Var is either a named identifier or the wildcard Ignore.
// Vars are comparable and may be used as map keys.
type Var struct {
	Name   string
	Ignore bool
}

// IgnoreVar is always considered declared and never carries a value.
var IgnoreVar = Var{Ignore: true}

func NewIdent(name string) Var {
	if name == IgnoreName {
		panic("'_' is reserved for the ignore variable")
	}
	return Var{Name: name}
}

func (v Var) IsIgnore() bool { return v.Ignore }

func (v Var) String() string {
	if v.Ignore {
		return IgnoreName
	}
	return v.Name
}

// DeclValue is a default value attached to a declaration.
type DeclValue struct {
	Str string
}

func NewStrDeclValue(str string) *DeclValue { return &DeclValue{Str: str} }

func (v *DeclValue) AsString() string { return v.Str }

// Decl declares one parameter accepted by a template.
type Decl struct {
	Var      Var
	Default  *DeclValue
	Position *filepos.Position
}

func (d Decl) HasDefault() bool { return d.Default != nil }

// Decls keeps declarations in source order. Duplicate names are allowed;
// the first declaration of a name is the one that counts.
type Decls []Decl

// Lookup returns the first declaration of v.
func (ds Decls) Lookup(v Var) (Decl, bool) {
	for _, decl := range ds {
		if decl.Var == v {
			return decl, true
		}
	}
	return Decl{}, false
}

// Defines reports whether v may be inserted into a template with these declarations.
func (ds Decls) Defines(v Var) bool {
	if v.IsIgnore() {
		return true
	}
	_, found := ds.Lookup(v)
	return found
}

// Names returns the distinct declared identifier names in declaration order.
func (ds Decls) Names() []string {
	var result []string
	seen := map[string]struct{}{}
	for _, decl := range ds {
		if decl.Var.IsIgnore() {
			continue
		}
		if _, found := seen[decl.Var.Name]; found {
			continue
		}
		seen[decl.Var.Name] = struct{}{}
		result = append(result, decl.Var.Name)
	}
	return result
}

// TemplatePart is either a CharPart or an InsertPart.
type TemplatePart interface {
	isTemplatePart()
}

type CharPart struct {
	Char rune
}

type InsertPart struct {
	Var      Var
	Position *filepos.Position
}

var _ = []TemplatePart{CharPart{}, InsertPart{}}

func (CharPart) isTemplatePart()   {}
func (InsertPart) isTemplatePart() {}

// Template is the ordered sequence of parts emitted by reduction.
type Template []TemplatePart

// NewTemplateFromString builds a template made only of literal characters.
func NewTemplateFromString(str string) Template {
	var result Template
	for _, r := range str {
		result = append(result, CharPart{r})
	}
	return result
}

// Inserts returns insert parts in template order.
func (t Template) Inserts() []InsertPart {
	var result []InsertPart
	for _, part := range t {
		if insert, ok := part.(InsertPart); ok {
			result = append(result, insert)
		}
	}
	return result
}

// AsSourceString renders the template back into source syntax.
func (t Template) AsSourceString() string {
	var sb strings.Builder
	for _, part := range t {
		switch typedPart := part.(type) {
		case CharPart:
			if typedPart.Char == '%' {
				sb.WriteString("%%")
			} else {
				sb.WriteRune(typedPart.Char)
			}
		case InsertPart:
			sb.WriteString("%{" + typedPart.Var.String() + "}")
		default:
			panic(fmt.Sprintf("unknown template part %T", typedPart))
		}
	}
	return sb.String()
}

// Body is the parsed unit. FunctionBody is currently its only kind.
type Body interface {
	isBody()
}

// FunctionBody is a template together with the declarations of the
// variables that can be used in it.
type FunctionBody struct {
	Decls    Decls
	Template Template
}

var _ Body = &FunctionBody{}

func (*FunctionBody) isBody() {}

// AsSourceString renders the body back into source syntax.
func (b *FunctionBody) AsSourceString() string {
	var decls []string
	for _, decl := range b.Decls {
		str := decl.Var.String()
		if decl.HasDefault() {
			str += ` ? "` + decl.Default.AsString() + `"`
		}
		decls = append(decls, str)
	}
	result := "{" + strings.Join(decls, ", ") + "}->"
	// a line break right after the arrow is not part of the template
	if len(b.Template) > 0 {
		if first, ok := b.Template[0].(CharPart); ok && (first.Char == '\n' || first.Char == '\r') {
			result += "\n"
		}
	}
	return result + b.Template.AsSourceString()
}
