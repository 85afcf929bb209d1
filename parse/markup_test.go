package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
	"github.com/google/go-cmp/cmp"
)

func markupPaths(root *markup.Node) []string {
	res := []string{}
	_ = root.Visit(func(n *markup.Node, isPost bool) (bool, error) {
		if !isPost {
			res = append(res, n.Path())
		}
		return true, nil
	})
	return res
}

func TestParseMarkupOK(t *testing.T) {
	tests := []struct {
		in    string
		paths []string
	}{
		{in: `<a/>`, paths: []string{"/", "/a"}},
		{
			in: `<a x="1"><b>hi</b><b/><!--c--><![CDATA[ <raw> ]]></a>`,
			paths: []string{
				"/", "/a", "/a/@x", "/a/b[0]", "/a/b[0]/text()", "/a/b[1]",
				"/a/comment()", "/a/text()",
			},
		},
		{
			in:    `<x:a xmlns:x="urn:x"><x:b/><b/></x:a>`,
			paths: []string{"/", "/x:a", "/x:a/@xmlns:x", "/x:a/x:b", "/x:a/b"},
		},
		{
			in:    "<?xml version=\"1.0\"?>\n<!DOCTYPE a>\n<!-- lead -->\n<a>\n  <b>  \n  </b>\n</a>\n",
			paths: []string{"/", "/comment()", "/a", "/a/b"},
		},
		{in: "\ufeff<a>t</a>", paths: []string{"/", "/a", "/a/text()"}},
	}
	for _, tt := range tests {
		n := -1
		root, err := ParseMarkup([]byte(tt.in), NodeCount(&n))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.paths, markupPaths(root)); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", tt.in, diff)
		}
		if n != len(tt.paths) {
			t.Errorf("%q: node count %d, want %d", tt.in, n, len(tt.paths))
		}
	}
}

func TestParseMarkupValues(t *testing.T) {
	root, err := ParseMarkup([]byte("<r k=\"a &amp; b\">\n  one &lt;two&gt;  \n<![CDATA[  keep ]]>\n</r>"))
	if err != nil {
		t.Fatal(err)
	}
	r := root.Children[0]
	if r.Type != markup.ElementType || r.Name != "r" || r.Parent != root {
		t.Fatalf("unexpected document element %+v", r)
	}
	want := []struct {
		typ markup.Type
		val string
	}{
		{markup.AttributeType, "a & b"},
		{markup.TextType, "one <two>"},
		{markup.CDataType, "  keep "},
	}
	if len(r.Children) != len(want) {
		t.Fatalf("children: %d", len(r.Children))
	}
	for i, w := range want {
		c := r.Children[i]
		if c.Type != w.typ || c.Value != w.val {
			t.Errorf("child %d: %s %q, want %s %q", i, c.Type, c.Value, w.typ, w.val)
		}
		if c.ParentIndex != i || c.Parent != r {
			t.Errorf("child %d: bad parent link", i)
		}
	}
}

func TestParseMarkupPrefixes(t *testing.T) {
	root, err := ParseMarkup([]byte(`<s:env xmlns:s="urn:s" s:id="7"/>`))
	if err != nil {
		t.Fatal(err)
	}
	el := root.Children[0]
	if el.Prefix != "s" || el.Name != "env" {
		t.Errorf("element %q %q", el.Prefix, el.Name)
	}
	attrs := el.Attrs()
	if len(attrs) != 2 {
		t.Fatalf("attrs: %d", len(attrs))
	}
	if attrs[0].Prefix != "xmlns" || attrs[0].Name != "s" || attrs[0].Value != "urn:s" {
		t.Errorf("xmlns attr %+v", attrs[0])
	}
	if attrs[1].QName() != "s:id" {
		t.Errorf("attr qname %q", attrs[1].QName())
	}
}

func TestParseMarkupNamespaceScope(t *testing.T) {
	for _, in := range []string{
		`<a xmlns:p="u"><b><p:c p:d="1"/></b></a>`,
		`<p:a xmlns:p="u" p:x="1"/>`,
		`<a xml:lang="en"/>`,
		`<a x="1" xmlns:x="u" x:x="2"/>`,
	} {
		if _, err := ParseMarkup([]byte(in)); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestParseMarkupEmpty(t *testing.T) {
	for _, in := range []string{"", " \n\t"} {
		root, err := ParseMarkup([]byte(in))
		if err != nil || root != nil {
			t.Errorf("%q: got %v, %v", in, root, err)
		}
	}
}

func TestParseMarkupErrors(t *testing.T) {
	tests := []struct {
		in   string
		msg  string
		line int
	}{
		{in: `<a><b></a>`, msg: "<b> closed by </a>", line: 1},
		{in: "<a>\n<b>\n</c>\n</a>", msg: "<b> closed by </c>", line: 3},
		{in: `<a>`, msg: "not closed", line: 1},
		{in: `<a/><b/>`, msg: "extra content", line: 1},
		{in: `text`, msg: "outside document element", line: 1},
		{in: `<a/>tail`, msg: "outside document element", line: 1},
		{in: `<!-- only -->`, msg: "premature end", line: 1},
		{in: `</a>`, msg: "unexpected closing tag", line: 1},
		{in: "<a\n x=1/>", line: 2},
		{in: `<a>&bogus;</a>`, line: 1},
		{in: `<a x="1" x="2"/>`, msg: "attribute x redefined", line: 1},
		{in: "<a>\n<b p:x=\"1\" xmlns:p=\"u\" p:x=\"2\"/></a>", msg: "attribute p:x redefined", line: 2},
		{in: `<p:a/>`, msg: "prefix p on <p:a> is not declared", line: 1},
		{in: `<a p:x="1"/>`, msg: "prefix p on attribute p:x", line: 1},
		{in: "<a>\n<p:b xmlns:p=\"u\"/>\n<p:c/></a>", msg: "prefix p on <p:c>", line: 3},
	}
	for _, tt := range tests {
		root, err := ParseMarkup([]byte(tt.in))
		if err == nil {
			t.Errorf("%q: expected error", tt.in)
			continue
		}
		if root != nil {
			t.Errorf("%q: partial tree returned", tt.in)
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: %v is not a syntax error", tt.in, err)
		}
		pErr, ok := AsError(err)
		if !ok {
			t.Fatalf("%q: %T", tt.in, err)
		}
		if !strings.Contains(pErr.Msg, tt.msg) {
			t.Errorf("%q: message %q lacks %q", tt.in, pErr.Msg, tt.msg)
		}
		if pErr.Line != tt.line {
			t.Errorf("%q: line %d, want %d", tt.in, pErr.Line, tt.line)
		}
		if pErr.Col < 1 {
			t.Errorf("%q: col %d", tt.in, pErr.Col)
		}
	}
}

func TestParseMarkupCeiling(t *testing.T) {
	// root + document element + k children
	doc := func(k int) []byte {
		return []byte("<r>" + strings.Repeat("<c/>", k) + "</r>")
	}
	n := 0
	root, err := ParseMarkup(doc(DefaultMaxNodes-2), NodeCount(&n))
	if err != nil {
		t.Fatal(err)
	}
	if n != DefaultMaxNodes || root.Count() != DefaultMaxNodes {
		t.Fatalf("count %d, tree %d", n, root.Count())
	}
	root, err = ParseMarkup(doc(DefaultMaxNodes - 1))
	if !errors.Is(err, ErrCapacity) || root != nil {
		t.Fatalf("expected capacity error, got %v", err)
	}
	pErr, _ := AsError(err)
	if pErr.Limit != DefaultMaxNodes || !strings.Contains(pErr.Msg, "50000") {
		t.Errorf("unexpected error %v", pErr)
	}
}

func TestParseMarkupMaxNodes(t *testing.T) {
	in := []byte(`<a x="1" y="2"><b/></a>`)
	if _, err := ParseMarkup(in, MaxNodes(5)); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseMarkup(in, MaxNodes(4)); !errors.Is(err, ErrCapacity) {
		t.Fatalf("got %v", err)
	}
	if _, err := ParseMarkup([]byte(`<a><b/></a>`), MaxDepth(2)); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseMarkup([]byte(`<a><b><c/></b></a>`), MaxDepth(2)); !errors.Is(err, ErrCapacity) {
		t.Fatalf("got %v", err)
	}
}
