package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/fabceolin/airgap-json-formatter-sub000/debug"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
)

var cdataStart = []byte("<![CDATA[")

// ParseMarkup loads a markup document into a tree under a single Root node.
//
// Namespace prefixes are kept as written and never resolved to URIs, but a
// prefix must be declared by an xmlns attribute in scope. Text between
// tags is trimmed and whitespace only text is dropped; CDATA sections are
// kept verbatim. Processing instructions and document type declarations
// are skipped. Empty or whitespace only input yields a nil tree and no
// error.
func ParseMarkup(d []byte, opts ...ParseOption) (*markup.Node, error) {
	pOpts := newParseOpts(opts)
	d = bytes.TrimPrefix(d, bom)
	if len(bytes.TrimSpace(d)) == 0 {
		pOpts.setCount(0)
		return nil, nil
	}
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.Strict = true
	p := &markupParser{d: d, dec: dec, opts: pOpts}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	pOpts.setCount(p.nodes)
	if debug.Parse() {
		debug.Logf("parse markup: %d nodes, max %d\n", p.nodes, pOpts.maxNodes)
	}
	return root, nil
}

var bom = []byte("\ufeff")

type markupParser struct {
	d     []byte
	dec   *xml.Decoder
	opts  *parseOpts
	nodes int
	stack []*markup.Node
	// prefixes declared by each open element, parallel to stack
	scopes []map[string]bool
}

var predeclared = map[string]bool{"xml": true, "xmlns": true}

func (p *markupParser) parse() (*markup.Node, error) {
	if err := p.admit(); err != nil {
		return nil, err
	}
	root := markup.NewRoot()
	p.stack = []*markup.Node{root}
	p.scopes = []map[string]bool{predeclared}
	sawElement := false
	for {
		start := p.dec.InputOffset()
		tok, err := p.dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, p.readErr(err)
		}
		top := p.stack[len(p.stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			if top == root && sawElement {
				return nil, p.syntaxErr("extra content at end of document")
			}
			sawElement = true
			if err := p.start(top, t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if top == root {
				return nil, p.syntaxErr("unexpected closing tag </%s>", qname(t.Name))
			}
			if top.Prefix != t.Name.Space || top.Name != t.Name.Local {
				return nil, p.syntaxErr("element <%s> closed by </%s>", top.QName(), qname(t.Name))
			}
			p.stack = p.stack[:len(p.stack)-1]
			p.scopes = p.scopes[:len(p.scopes)-1]
		case xml.CharData:
			if err := p.charData(top, t, bytes.HasPrefix(p.d[start:], cdataStart)); err != nil {
				return nil, err
			}
		case xml.Comment:
			if err := p.admit(); err != nil {
				return nil, err
			}
			top.Append(markup.NewComment(string(t)))
		}
	}
	if len(p.stack) > 1 {
		open := p.stack[len(p.stack)-1]
		return nil, p.syntaxErr("unexpected end of document, element <%s> is not closed", open.QName())
	}
	if !sawElement {
		return nil, p.syntaxErr("premature end of document, no document element")
	}
	return root, nil
}

func (p *markupParser) start(parent *markup.Node, t xml.StartElement) error {
	if len(p.stack) > p.opts.maxDepth {
		line, col := p.dec.InputPos()
		return depthLimitErr(p.opts.maxDepth, line, col)
	}
	if err := p.admit(); err != nil {
		return err
	}
	var decl map[string]bool
	seen := make(map[string]bool, len(t.Attr))
	for _, a := range t.Attr {
		qn := qname(a.Name)
		if seen[qn] {
			return p.syntaxErr("attribute %s redefined", qn)
		}
		seen[qn] = true
		if a.Name.Space == "xmlns" {
			if decl == nil {
				decl = map[string]bool{}
			}
			decl[a.Name.Local] = true
		}
	}
	p.scopes = append(p.scopes, decl)
	if !p.declared(t.Name.Space) {
		return p.syntaxErr("namespace prefix %s on <%s> is not declared", t.Name.Space, qname(t.Name))
	}
	el := parent.Append(markup.NewElement(t.Name.Space, t.Name.Local))
	for _, a := range t.Attr {
		if a.Name.Space != "xmlns" && !p.declared(a.Name.Space) {
			return p.syntaxErr("namespace prefix %s on attribute %s is not declared", a.Name.Space, qname(a.Name))
		}
		if err := p.admit(); err != nil {
			return err
		}
		el.Append(markup.NewAttribute(a.Name.Space, a.Name.Local, a.Value))
	}
	p.stack = append(p.stack, el)
	return nil
}

func (p *markupParser) declared(prefix string) bool {
	if prefix == "" {
		return true
	}
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if p.scopes[i][prefix] {
			return true
		}
	}
	return false
}

func (p *markupParser) charData(parent *markup.Node, t xml.CharData, isCData bool) error {
	if isCData {
		if parent.Type == markup.RootType {
			return p.syntaxErr("CDATA section outside document element")
		}
		if err := p.admit(); err != nil {
			return err
		}
		parent.Append(markup.NewCData(string(t)))
		return nil
	}
	txt := strings.TrimSpace(string(t))
	if txt == "" {
		return nil
	}
	if parent.Type == markup.RootType {
		return p.syntaxErr("character data outside document element")
	}
	if err := p.admit(); err != nil {
		return err
	}
	parent.Append(markup.NewText(txt))
	return nil
}

func (p *markupParser) admit() error {
	if p.nodes >= p.opts.maxNodes {
		line, col := p.dec.InputPos()
		return nodeLimitErr(p.opts.maxNodes, line, col)
	}
	p.nodes++
	return nil
}

func (p *markupParser) syntaxErr(msg string, args ...any) error {
	line, col := p.dec.InputPos()
	return syntaxErr(line, col, msg, args...)
}

func (p *markupParser) readErr(err error) error {
	line, col := p.dec.InputPos()
	msg := err.Error()
	var xErr *xml.SyntaxError
	if errors.As(err, &xErr) {
		msg = xErr.Msg
		if xErr.Line != line {
			line, col = xErr.Line, 1
		}
	}
	return &Error{Kind: ErrSyntax, Msg: msg, Line: line, Col: col, Err: err}
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
