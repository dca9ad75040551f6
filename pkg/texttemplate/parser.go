// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"carvel.dev/sti/pkg/filepos"
	"carvel.dev/sti/pkg/template"
)

const (
	declsOpen     = '{'
	declsClose    = '}'
	declsSep      = ','
	defaultMarker = '?'
	strQuote      = '"'
	escapeChar    = '%'
	insertOpen    = '{'
	insertClose   = '}'
	arrow         = "->"
)

type Parser struct {
	associatedName string

	data []rune
	idx  int
	line int
	col  int
}

func NewParser() *Parser {
	return &Parser{}
}

// Parse turns source text into a Body. It stops at the first syntax error.
func (p *Parser) Parse(dataBs []byte, associatedName string) (template.Body, error) {
	p.associatedName = associatedName

	if err := p.checkEncoding(dataBs); err != nil {
		return nil, err
	}

	p.data = []rune(string(dataBs))
	p.idx = 0
	p.line = 1
	p.col = 1

	decls, err := p.parseDecls()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if !p.hasPrefix(arrow) {
		return nil, p.unexpected("'" + arrow + "' after declarations")
	}
	p.advance()
	p.advance()
	p.skipNewline()

	tpl, err := p.parseTemplate()
	if err != nil {
		return nil, err
	}

	return &template.FunctionBody{Decls: decls, Template: tpl}, nil
}

// checkEncoding rejects invalid UTF-8 instead of letting it turn into
// replacement characters.
func (p *Parser) checkEncoding(dataBs []byte) error {
	line, col := 1, 1

	for i := 0; i < len(dataBs); {
		r, size := utf8.DecodeRune(dataBs[i:])
		if r == utf8.RuneError && size == 1 {
			return ParseError{
				Position: filepos.NewPositionAt(line, col, p.associatedName),
				Msg:      fmt.Sprintf("Expected source to be valid UTF-8, but found byte 0x%02x", dataBs[i]),
			}
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}

	return nil
}

func (p *Parser) parseDecls() (template.Decls, error) {
	p.skipSpace()

	if r, ok := p.peek(); !ok || r != declsOpen {
		return nil, p.unexpected("'{' to open declarations")
	}
	p.advance()

	decls := template.Decls{}

	for {
		p.skipSpace()

		r, ok := p.peek()
		if !ok {
			return nil, p.unexpected("'}' to close declarations")
		}
		if r == declsClose {
			p.advance()
			return decls, nil
		}

		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)

		p.skipSpace()

		r, ok = p.peek()
		switch {
		case ok && r == declsSep:
			p.advance()
		case ok && r == declsClose:
			p.advance()
			return decls, nil
		default:
			return nil, p.unexpected("',' or '}' after declaration")
		}
	}
}

func (p *Parser) parseDecl() (template.Decl, error) {
	pos := p.position()

	variable, err := p.parseVar()
	if err != nil {
		return template.Decl{}, err
	}

	decl := template.Decl{Var: variable, Position: pos}

	p.skipSpace()

	if r, ok := p.peek(); ok && r == defaultMarker {
		p.advance()
		p.skipSpace()

		str, err := p.parseString()
		if err != nil {
			return template.Decl{}, err
		}
		decl.Default = template.NewStrDeclValue(str)
	}

	return decl, nil
}

func (p *Parser) parseString() (string, error) {
	if r, ok := p.peek(); !ok || r != strQuote {
		return "", p.unexpected("'\"' to open default value")
	}
	openPos := p.position()
	p.advance()

	start := p.idx
	for {
		r, ok := p.peek()
		if !ok {
			return "", ParseError{
				Position: openPos,
				Msg:      "Expected string literal to be closed with '\"', but reached end of input",
			}
		}
		if r == strQuote {
			str := string(p.data[start:p.idx])
			p.advance()
			return str, nil
		}
		p.advance()
	}
}

func (p *Parser) parseVar() (template.Var, error) {
	r, ok := p.peek()
	if !ok || !isIdentStart(r) {
		return template.Var{}, p.unexpected("variable name")
	}

	start := p.idx
	for {
		r, ok := p.peek()
		if !ok || !isIdentContinue(r) {
			break
		}
		p.advance()
	}

	name := string(p.data[start:p.idx])
	if name == template.IgnoreName {
		return template.IgnoreVar, nil
	}
	return template.NewIdent(name), nil
}

func (p *Parser) parseTemplate() (template.Template, error) {
	var tpl template.Template

	for {
		r, ok := p.peek()
		if !ok {
			break
		}

		if r != escapeChar {
			tpl = append(tpl, template.CharPart{Char: r})
			p.advance()
			continue
		}

		pos := p.position()
		p.advance()

		next, ok := p.peek()
		switch {
		case ok && next == escapeChar:
			tpl = append(tpl, template.CharPart{Char: escapeChar})
			p.advance()

		case ok && next == insertOpen:
			p.advance()

			variable, err := p.parseVar()
			if err != nil {
				return nil, err
			}
			if r, ok := p.peek(); !ok || r != insertClose {
				return nil, p.unexpected("'}' to close insert")
			}
			p.advance()

			tpl = append(tpl, template.InsertPart{Var: variable, Position: pos})

		default:
			return nil, p.unexpected("'%' or '{' after '%' (use '%%' for a literal '%')")
		}
	}

	if len(tpl) == 0 {
		return nil, p.unexpected("template body after '" + arrow + "'")
	}

	return tpl, nil
}

func (p *Parser) skipSpace() {
	for {
		r, ok := p.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		p.advance()
	}
}

// skipNewline consumes at most one line break.
func (p *Parser) skipNewline() {
	r, ok := p.peek()
	switch {
	case ok && r == '\n':
		p.advance()
	case ok && r == '\r':
		p.advance()
		if r, ok := p.peek(); ok && r == '\n' {
			p.advance()
		}
	}
}

func (p *Parser) hasPrefix(prefix string) bool {
	i := p.idx
	for _, r := range prefix {
		if i >= len(p.data) || p.data[i] != r {
			return false
		}
		i++
	}
	return true
}

func (p *Parser) peek() (rune, bool) {
	if p.idx >= len(p.data) {
		return 0, false
	}
	return p.data[p.idx], true
}

func (p *Parser) advance() {
	if p.data[p.idx] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.idx++
}

func (p *Parser) position() *filepos.Position {
	return filepos.NewPositionAt(p.line, p.col, p.associatedName)
}

func (p *Parser) unexpected(expected string) ParseError {
	found := "end of input"
	if r, ok := p.peek(); ok {
		found = fmt.Sprintf("%q", r)
	}
	return ParseError{
		Position: p.position(),
		Msg:      fmt.Sprintf("Expected %s, but found %s", expected, found),
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || ('0' <= r && r <= '9')
}
