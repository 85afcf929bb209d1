package parse

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fabceolin/airgap-json-formatter-sub000/debug"
	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/token"
)

// Parse loads an object notation document into a node tree.
//
// Empty or whitespace only input yields a nil tree and no error. On failure
// no tree is returned and the error is a *Error classified as ErrSyntax or
// ErrCapacity.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	p := &parser{s: token.NewScanner(d), opts: pOpts}
	tok, err := p.next()
	if err == io.EOF {
		pOpts.setCount(0)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	root, err := p.value(tok, 0)
	if err != nil {
		return nil, err
	}
	tok, err = p.next()
	if err == nil {
		return nil, p.syntaxErr(tok.Pos, "unexpected %s after top-level value", describe(tok))
	}
	if err != io.EOF {
		return nil, err
	}
	pOpts.setCount(p.nodes)
	if debug.Parse() {
		debug.Logf("parse: %d nodes, max %d\n", p.nodes, pOpts.maxNodes)
	}
	return root, nil
}

type parser struct {
	s     *token.Scanner
	opts  *parseOpts
	nodes int
}

func (p *parser) next() (*token.Token, error) {
	tok, err := p.s.Next()
	if err == nil || err == io.EOF {
		return tok, err
	}
	var tErr *token.TokenizeErr
	if errors.As(err, &tErr) {
		line, col := tErr.Pos.LineCol()
		pErr := syntaxErr(line, col, "%s", tErr.Err.Error())
		pErr.Err = tErr
		return nil, pErr
	}
	line, col := p.s.Pos().LineCol()
	return nil, &Error{Kind: ErrSyntax, Msg: err.Error(), Line: line, Col: col, Err: err}
}

// need reads a token that must exist.
func (p *parser) need(what string) (*token.Token, error) {
	tok, err := p.next()
	if err == io.EOF {
		return nil, p.syntaxErr(p.s.Pos(), "unexpected end of input, expected %s", what)
	}
	return tok, err
}

func (p *parser) syntaxErr(pos *token.Pos, msg string, args ...any) error {
	line, col := pos.LineCol()
	return syntaxErr(line, col, msg, args...)
}

func (p *parser) admit(pos *token.Pos) error {
	if p.nodes >= p.opts.maxNodes {
		line, col := pos.LineCol()
		return nodeLimitErr(p.opts.maxNodes, line, col)
	}
	p.nodes++
	return nil
}

func (p *parser) value(tok *token.Token, depth int) (*ir.Node, error) {
	if !tok.Type.IsValueStart() {
		return nil, p.syntaxErr(tok.Pos, "unexpected %s, expected a value", describe(tok))
	}
	if err := p.admit(tok.Pos); err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TLCurl, token.TLSquare:
		if depth >= p.opts.maxDepth {
			line, col := tok.Pos.LineCol()
			return nil, depthLimitErr(p.opts.maxDepth, line, col)
		}
		if tok.Type == token.TLCurl {
			return p.object(depth + 1)
		}
		return p.array(depth + 1)
	case token.TString:
		return ir.FromString(tok.String()), nil
	case token.TInteger:
		return integer(tok.Bytes), nil
	case token.TFloat:
		return float(tok.Bytes), nil
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	default:
		return ir.Null(), nil
	}
}

func (p *parser) object(depth int) (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType, Values: []*ir.Node{}}
	tok, err := p.need("member name or '}'")
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TRCurl {
		return obj, nil
	}
	for {
		if tok.Type != token.TString {
			return nil, p.syntaxErr(tok.Pos, "unexpected %s, expected member name", describe(tok))
		}
		key := tok.String()
		colon, err := p.need("':'")
		if err != nil {
			return nil, err
		}
		if colon.Type != token.TColon {
			return nil, p.syntaxErr(colon.Pos, "unexpected %s, expected ':'", describe(colon))
		}
		vTok, err := p.need("a value")
		if err != nil {
			return nil, err
		}
		child, err := p.value(vTok, depth)
		if err != nil {
			return nil, err
		}
		obj.Append(key, child)
		sep, err := p.need("',' or '}'")
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case token.TRCurl:
			return obj, nil
		case token.TComma:
			tok, err = p.need("member name")
			if err != nil {
				return nil, err
			}
		default:
			return nil, p.syntaxErr(sep.Pos, "unexpected %s, expected ',' or '}'", describe(sep))
		}
	}
}

func (p *parser) array(depth int) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType, Values: []*ir.Node{}}
	tok, err := p.need("a value or ']'")
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TRSquare {
		return arr, nil
	}
	for {
		child, err := p.value(tok, depth)
		if err != nil {
			return nil, err
		}
		arr.Append("", child)
		sep, err := p.need("',' or ']'")
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case token.TRSquare:
			return arr, nil
		case token.TComma:
			tok, err = p.need("a value")
			if err != nil {
				return nil, err
			}
		default:
			return nil, p.syntaxErr(sep.Pos, "unexpected %s, expected ',' or ']'", describe(sep))
		}
	}
}

func integer(d []byte) *ir.Node {
	i, err := strconv.ParseInt(string(d), 10, 64)
	if err == nil && i <= ir.MaxSafeInteger && i >= -ir.MaxSafeInteger {
		return ir.FromInt(i)
	}
	return float(d)
}

func float(d []byte) *ir.Node {
	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil && math.IsInf(f, 0) {
		return &ir.Node{Type: ir.NumberType, Number: string(d)}
	}
	return ir.FromFloat(f)
}

func describe(tok *token.Token) string {
	switch tok.Type {
	case token.TString:
		return "string"
	case token.TInteger, token.TFloat:
		return fmt.Sprintf("number %s", tok.Bytes)
	default:
		return fmt.Sprintf("'%s'", tok.Bytes)
	}
}
