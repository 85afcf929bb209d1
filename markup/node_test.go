package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// <a x="1"><b/><b><!--c-->t</b><ns:c/></a>
func sample() *Node {
	root := NewRoot()
	a := root.Append(NewElement("", "a"))
	a.Append(NewAttribute("", "x", "1"))
	a.Append(NewElement("", "b"))
	b := a.Append(NewElement("", "b"))
	b.Append(NewComment("c"))
	b.Append(NewText("t"))
	a.Append(NewElement("ns", "c"))
	return root
}

func paths(root *Node) []string {
	var res []string
	root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			res = append(res, n.Path())
		}
		return true, nil
	})
	return res
}

func TestPath(t *testing.T) {
	want := []string{
		"/",
		"/a",
		"/a/@x",
		"/a/b[0]",
		"/a/b[1]",
		"/a/b[1]/comment()",
		"/a/b[1]/text()",
		"/a/ns:c",
	}
	if diff := cmp.Diff(want, paths(sample())); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestPathPredicateMinimal(t *testing.T) {
	root := NewRoot()
	a := root.Append(NewElement("", "a"))
	a.Append(NewElement("", "b"))
	a.Append(NewElement("p", "b"))
	a.Append(NewElement("", "c"))
	want := []string{"/", "/a", "/a/b", "/a/p:b", "/a/c"}
	if diff := cmp.Diff(want, paths(root)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestPathCDataLikeText(t *testing.T) {
	root := NewRoot()
	a := root.Append(NewElement("", "a"))
	cd := a.Append(NewCData("<x>"))
	if p := cd.Path(); p != "/a/text()" {
		t.Errorf("got %s", p)
	}
}

func TestPathDetached(t *testing.T) {
	a := NewElement("", "a")
	b := a.Append(NewElement("", "b"))
	if p := a.Path(); p != "/a" {
		t.Errorf("got %s", p)
	}
	if p := b.Path(); p != "/a/b" {
		t.Errorf("got %s", p)
	}
}

func TestKeysAndHelpers(t *testing.T) {
	root := sample()
	a := root.Children[0]
	keys := []string{}
	for _, c := range a.Children {
		keys = append(keys, c.Key())
	}
	if diff := cmp.Diff([]string{"@x", "b", "b", "ns:c"}, keys); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if n := len(a.Attrs()); n != 1 {
		t.Errorf("attrs %d", n)
	}
	if n := len(a.Content()); n != 3 {
		t.Errorf("content %d", n)
	}
	if c := root.Count(); c != 8 {
		t.Errorf("count %d", c)
	}
	if !a.Children[3].IsLastChild() || a.Children[2].IsLastChild() {
		t.Error("last child")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(sample(), sample()) {
		t.Fatal("identical trees differ")
	}
	b := sample()
	b.Children[0].Children[0].Value = "2"
	if Equal(sample(), b) {
		t.Error("expected difference")
	}
}
