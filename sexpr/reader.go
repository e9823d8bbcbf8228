/*
This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package sexpr reads an s-expression notation of an already
// standardized RPAL tree into ast nodes. It is a deserializer for a
// fixed, spec-defined notation, not a general parser: the notation has
// no let/where/within/and/rec/fn forms to recognize, because the
// standardizer that would eliminate them is out of scope.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpal-lang/rpal-cse/ast"
)

// ParseError carries the source name and a message, the same pairing
// memcp's SourceInfo.String() renders as "source:line:col".
type ParseError struct {
	Source string
	Line   int
	Col    int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Col, e.Msg)
}

// Read parses exactly one standardized-AST expression out of s. source
// names the input for error messages, matching memcp's Read(source, s
// string) signature.
func Read(source, s string) (ast.Node, error) {
	toks, err := tokenize(source, s)
	if err != nil {
		return nil, err
	}
	p := &parser{source: source, toks: toks}
	raw, err := p.readSExpr()
	if err != nil {
		return nil, err
	}
	return toAST(source, raw)
}

// ReadAll parses every top-level expression in s in sequence.
func ReadAll(source, s string) ([]ast.Node, error) {
	toks, err := tokenize(source, s)
	if err != nil {
		return nil, err
	}
	p := &parser{source: source, toks: toks}
	var out []ast.Node
	for len(p.toks) > 0 {
		raw, err := p.readSExpr()
		if err != nil {
			return nil, err
		}
		n, err := toAST(source, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

//
// Lexical analysis
//

type tokenKind int

const (
	tokOpen tokenKind = iota
	tokClose
	tokAtom
	tokString
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

var stringUnescaper = strings.NewReplacer(`\"`, `"`, `\\`, `\`)

// tokenize is a character-at-a-time state machine in the same spirit
// as memcp's scm/parser.go tokenize: states for "expecting an item",
// "inside an atom", "inside a string", "inside a string escape", and
// "inside a line comment". Unlike the teacher, string escapes here
// unescape only \" and \\ - \n and \t are left as the two literal
// characters they are, since the language expands those only at print
// time (spec.md §4.5), not at lexing time.
func tokenize(source, s string) ([]token, error) {
	const (
		stNone = iota
		stAtom
		stString
		stStringEscape
		stComment
	)
	line, col := 1, 0
	state := stNone
	start := 0
	var out []token
	runes := []rune(s)

	flushAtom := func(end int) {
		if state == stAtom && end > start {
			out = append(out, token{kind: tokAtom, text: string(runes[start:end]), line: line, col: col})
		}
	}

	for i, ch := range runes {
		if ch == '\n' {
			line++
			col = 0
		} else {
			col++
		}

		switch state {
		case stComment:
			if ch == '\n' {
				state = stNone
			}
			continue
		case stStringEscape:
			state = stString
			continue
		case stString:
			if ch == '\\' {
				state = stStringEscape
			} else if ch == '"' {
				raw := string(runes[start+1 : i])
				out = append(out, token{kind: tokString, text: stringUnescaper.Replace(raw), line: line, col: col})
				state = stNone
			}
			continue
		}

		switch {
		case ch == ';':
			flushAtom(i)
			state = stComment
		case ch == '(':
			flushAtom(i)
			out = append(out, token{kind: tokOpen, line: line, col: col})
			state = stNone
		case ch == ')':
			flushAtom(i)
			out = append(out, token{kind: tokClose, line: line, col: col})
			state = stNone
		case ch == '"':
			flushAtom(i)
			start = i
			state = stString
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			flushAtom(i)
			state = stNone
		default:
			if state != stAtom {
				start = i
				state = stAtom
			}
		}
	}
	switch state {
	case stAtom:
		flushAtom(len(runes))
	case stString, stStringEscape:
		return nil, &ParseError{Source: source, Line: line, Col: col, Msg: "unterminated string literal"}
	}
	return out, nil
}

//
// Syntactic analysis: tokens -> a generic S-expression tree
//

// sExpr is either an atom (string) or a list ([]sExpr); strings hold
// their original atom spelling, quoted-string atoms are distinguished
// from bare atoms by a wrapping strNode.
type sExpr any

type strNode string

type parser struct {
	source string
	toks   []token
}

func (p *parser) readSExpr() (sExpr, error) {
	if len(p.toks) == 0 {
		return nil, &ParseError{Source: p.source, Msg: "unexpected end of input"}
	}
	t := p.toks[0]
	p.toks = p.toks[1:]
	switch t.kind {
	case tokOpen:
		var items []sExpr
		for {
			if len(p.toks) == 0 {
				return nil, &ParseError{Source: p.source, Line: t.line, Col: t.col, Msg: "expecting matching )"}
			}
			if p.toks[0].kind == tokClose {
				p.toks = p.toks[1:]
				return items, nil
			}
			item, err := p.readSExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	case tokClose:
		return nil, &ParseError{Source: p.source, Line: t.line, Col: t.col, Msg: "unexpected )"}
	case tokString:
		return strNode(t.text), nil
	default:
		return t.text, nil
	}
}

//
// Interpretation: generic S-expression tree -> ast.Node
//

func toAST(source string, s sExpr) (ast.Node, error) {
	switch v := s.(type) {
	case strNode:
		return ast.StrLit{Value: string(v)}, nil
	case string:
		return atomToAST(source, v)
	case []sExpr:
		return listToAST(source, v)
	default:
		return nil, &ParseError{Source: source, Msg: fmt.Sprintf("unrecognized s-expression element %T", s)}
	}
}

func atomToAST(source, a string) (ast.Node, error) {
	switch a {
	case "true":
		return ast.TruthLit{Value: true}, nil
	case "false":
		return ast.TruthLit{Value: false}, nil
	case "nil":
		return ast.NilLit{}, nil
	case "dummy":
		return ast.DummyLit{}, nil
	}
	if i, err := strconv.ParseInt(a, 10, 64); err == nil {
		return ast.IntLit{Value: i}, nil
	}
	return ast.Ident{Name: a}, nil
}

var binOps = map[string]ast.Op{
	"+": ast.OpPlus, "-": ast.OpMinus, "*": ast.OpMult, "/": ast.OpDiv, "**": ast.OpExp,
	"ls": ast.OpLs, "le": ast.OpLe, "gr": ast.OpGr, "ge": ast.OpGe,
	"eq": ast.OpEq, "ne": ast.OpNe, "or": ast.OpOr, "and": ast.OpAnd,
}

var unOps = map[string]ast.Op{
	"neg": ast.OpNeg,
	"not": ast.OpNot,
}

func listToAST(source string, items []sExpr) (ast.Node, error) {
	if len(items) == 0 {
		return ast.NilLit{}, nil
	}
	head, isHeadAtom := items[0].(string)
	if isHeadAtom {
		switch head {
		case "lambda":
			if len(items) != 3 {
				return nil, &ParseError{Source: source, Msg: "lambda expects (lambda params body)"}
			}
			params, err := paramList(source, items[1])
			if err != nil {
				return nil, err
			}
			body, err := toAST(source, items[2])
			if err != nil {
				return nil, err
			}
			return ast.Lambda{Params: params, Body: body}, nil
		case "gamma":
			if len(items) != 3 {
				return nil, &ParseError{Source: source, Msg: "gamma expects (gamma fn arg)"}
			}
			fn, err := toAST(source, items[1])
			if err != nil {
				return nil, err
			}
			arg, err := toAST(source, items[2])
			if err != nil {
				return nil, err
			}
			return ast.Gamma{Fn: fn, Arg: arg}, nil
		case "beta":
			if len(items) != 4 {
				return nil, &ParseError{Source: source, Msg: "beta expects (beta test then else)"}
			}
			test, err := toAST(source, items[1])
			if err != nil {
				return nil, err
			}
			then, err := toAST(source, items[2])
			if err != nil {
				return nil, err
			}
			els, err := toAST(source, items[3])
			if err != nil {
				return nil, err
			}
			return ast.Cond{Test: test, Then: then, Else: els}, nil
		case "tau":
			elems := make([]ast.Node, len(items)-1)
			for i, it := range items[1:] {
				n, err := toAST(source, it)
				if err != nil {
					return nil, err
				}
				elems[i] = n
			}
			return ast.Tau{Elems: elems}, nil
		case "aug":
			if len(items) != 3 {
				return nil, &ParseError{Source: source, Msg: "aug expects (aug tuple elem)"}
			}
			tup, err := toAST(source, items[1])
			if err != nil {
				return nil, err
			}
			elem, err := toAST(source, items[2])
			if err != nil {
				return nil, err
			}
			return ast.Aug{Tuple: tup, Elem: elem}, nil
		case "Y*":
			if len(items) != 2 {
				return nil, &ParseError{Source: source, Msg: "Y* expects (Y* fn)"}
			}
			fn, err := toAST(source, items[1])
			if err != nil {
				return nil, err
			}
			return ast.YStar{Fn: fn}, nil
		}
		if op, ok := binOps[head]; ok {
			if len(items) != 3 {
				return nil, &ParseError{Source: source, Msg: fmt.Sprintf("%s expects two operands", head)}
			}
			left, err := toAST(source, items[1])
			if err != nil {
				return nil, err
			}
			right, err := toAST(source, items[2])
			if err != nil {
				return nil, err
			}
			return ast.BinOp{Op: op, Left: left, Right: right}, nil
		}
		if op, ok := unOps[head]; ok {
			if len(items) != 2 {
				return nil, &ParseError{Source: source, Msg: fmt.Sprintf("%s expects one operand", head)}
			}
			operand, err := toAST(source, items[1])
			if err != nil {
				return nil, err
			}
			return ast.UnOp{Op: op, Operand: operand}, nil
		}
	}
	// Not a recognized keyword: a bare parenthesized list outside any
	// of the above is not part of the standardized-AST notation.
	return nil, &ParseError{Source: source, Msg: "unrecognized form; expected lambda/gamma/beta/tau/aug/Y*/operator"}
}

func paramList(source string, s sExpr) ([]string, error) {
	switch v := s.(type) {
	case string:
		return []string{v}, nil
	case []sExpr:
		names := make([]string, len(v))
		for i, it := range v {
			name, ok := it.(string)
			if !ok {
				return nil, &ParseError{Source: source, Msg: "lambda parameter list must be bare identifiers"}
			}
			names[i] = name
		}
		return names, nil
	default:
		return nil, &ParseError{Source: source, Msg: "malformed lambda parameter list"}
	}
}
