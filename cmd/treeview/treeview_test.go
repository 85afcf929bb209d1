package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/parse"
	"github.com/fabceolin/airgap-json-formatter-sub000/query"

	"github.com/google/go-cmp/cmp"
)

func TestView(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		depth int
		want  string
	}{
		{
			name:  "json all",
			in:    `{"a":[1,2],"b":{"c":true}}`,
			depth: -1,
			want: `$ {2}
├── a: [2]
│   ├── 0: 1
│   └── 1: 2
└── b: {1}
    └── c: true
`,
		},
		{
			name:  "json depth 1",
			in:    `{"a":[1,2],"b":{"c":true}}`,
			depth: 1,
			want: `$ {2}
├── a: [2] (+2)
└── b: {1} (+1)
`,
		},
		{
			name:  "xml all",
			in:    `<r><item id="1">one</item><!--c--></r>`,
			depth: -1,
			want: `/
└── r
    ├── item
    │   ├── @id: 1
    │   └── #text: one
    └── #comment: c
`,
		},
		{
			name:  "empty",
			in:    " \n",
			depth: -1,
			want:  "",
		},
	}
	for _, tt := range tests {
		cfg := &ViewConfig{MainConfig: &MainConfig{}}
		switch {
		case tt.depth < 0:
			cfg.All = true
		default:
			cfg.Depth = tt.depth
		}
		out := bytes.NewBuffer(nil)
		if err := viewFiles(cfg, strings.NewReader(tt.in), out, nil); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if diff := cmp.Diff(tt.want, out.String()); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tt.name, diff)
		}
	}
}

func TestViewLoadError(t *testing.T) {
	cfg := &ViewConfig{MainConfig: &MainConfig{}}
	err := viewFiles(cfg, strings.NewReader("{\n  \"a\": tru\n}"), bytes.NewBuffer(nil), nil)
	perr, ok := parse.AsError(err)
	if !ok {
		t.Fatalf("expected a load error, got %v", err)
	}
	if !errors.Is(err, parse.ErrSyntax) || perr.Line != 2 {
		t.Errorf("got %v", err)
	}
}

func TestMaxNodesOption(t *testing.T) {
	cfg := &MainConfig{MaxNodes: 3}
	err := countFiles(cfg, strings.NewReader(`[1,2,3]`), bytes.NewBuffer(nil), nil)
	if !errors.Is(err, parse.ErrCapacity) {
		t.Fatalf("got %v", err)
	}
	out := bytes.NewBuffer(nil)
	if err := countFiles(&MainConfig{}, strings.NewReader(`[1,2,3]`), out, nil); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "4\t-\n" {
		t.Errorf("count: %q", got)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		in, path, want string
	}{
		{`{"a":[1,{"b":null}]}`, "$.a[1]", `{"b":null}`},
		{`{"a":[1,{"b":null}]}`, "a[0]", `1`},
		{`{"a":[1,{"b":null}]}`, "$", `{"a":[1,{"b":null}]}`},
		{`<a><b>x</b><b/></a>`, "/a/b[1]", `<b/>`},
		{`<a><b k="v">x</b></a>`, "a/b", `<b k="v">x</b>`},
	}
	for _, tt := range tests {
		cfg := &MainConfig{WireOut: true}
		out := bytes.NewBuffer(nil)
		if err := getFiles(cfg, strings.NewReader(tt.in), out, tt.path, nil); err != nil {
			t.Fatalf("%s %s: %v", tt.in, tt.path, err)
		}
		if diff := cmp.Diff(tt.want+"\n", out.String()); diff != "" {
			t.Errorf("%s %s: (-want +got)\n%s", tt.in, tt.path, diff)
		}
	}
	err := getFiles(&MainConfig{}, strings.NewReader(`{"a":1}`), bytes.NewBuffer(nil), "$.b", nil)
	if err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestNormPath(t *testing.T) {
	tests := []struct {
		f    format.Format
		in   string
		want string
	}{
		{format.JSONFormat, "$.a", "$.a"},
		{format.JSONFormat, "a.b", "$.a.b"},
		{format.JSONFormat, "[0]", "$[0]"},
		{format.JSONFormat, ".a", "$.a"},
		{format.XMLFormat, "/a", "/a"},
		{format.XMLFormat, "a/b[0]", "/a/b[0]"},
	}
	for _, tt := range tests {
		if got := normPath(tt.f, tt.in); got != tt.want {
			t.Errorf("%s %q: got %q want %q", tt.f, tt.in, got, tt.want)
		}
	}
}

func TestPaths(t *testing.T) {
	cfg := &PathConfig{MainConfig: &MainConfig{}, Values: true}
	out := bytes.NewBuffer(nil)
	if err := pathFiles(cfg, strings.NewReader(`{"a":[1,"x"],"b c":{}}`), out, nil); err != nil {
		t.Fatal(err)
	}
	want := "$.a\t[2]\n$.a[0]\t1\n$.a[1]\tx\n$[\"b c\"]\t{0}\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	q, err := query.Compile(`type == "Number" && float(value) > 1`)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &FindConfig{MainConfig: &MainConfig{}}
	out := bytes.NewBuffer(nil)
	if err := findFiles(cfg, strings.NewReader(`{"a":[1,2],"b":{"c":3}}`), out, q, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("$.a[1]\n$.b.c\n", out.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestFilesBySuffix(t *testing.T) {
	dir := t.TempDir()
	jf := filepath.Join(dir, "doc.json")
	xf := filepath.Join(dir, "doc.xml")
	if err := os.WriteFile(jf, []byte(`[true]`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(xf, []byte(`<a/>`), 0644); err != nil {
		t.Fatal(err)
	}
	out := bytes.NewBuffer(nil)
	if err := countFiles(&MainConfig{}, nil, out, []string{jf, xf}); err != nil {
		t.Fatal(err)
	}
	want := "2\t" + jf + "\n---\n2\t" + xf + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	xmlFmt := format.XMLFormat
	err := countFiles(&MainConfig{InFormat: &xmlFmt}, nil, bytes.NewBuffer(nil), []string{jf})
	if !errors.Is(err, parse.ErrSyntax) {
		t.Errorf("json read as xml: %v", err)
	}
}

func TestRoundtrip(t *testing.T) {
	cfg := &RoundtripConfig{MainConfig: &MainConfig{}}
	out := bytes.NewBuffer(nil)
	in := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if err := roundtripFiles(cfg, strings.NewReader(in), out, nil); err != nil {
		t.Fatal(err)
	}
	want := "-: equal (json, 4 nodes)\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	out.Reset()
	if err := roundtripFiles(cfg, strings.NewReader(`{"a":1}`), out, nil); err != nil {
		t.Fatal(err)
	}
	want = "-: equal (json, 2 nodes)\n-{\"a\":1}\n+{\n+  \"a\": 1\n+}\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestPatch(t *testing.T) {
	cfg := &PatchConfig{MainConfig: &MainConfig{WireOut: true}, String: true}
	p, err := getPatch(cfg, nil, `[{"op":"replace","path":"/a","value":2},{"op":"add","path":"/b/-","value":"x"}]`)
	if err != nil {
		t.Fatal(err)
	}
	out := bytes.NewBuffer(nil)
	if err := patchFiles(cfg.MainConfig, strings.NewReader(`{"a":1,"b":[]}`), out, p, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("{\"a\":2,\"b\":[\"x\"]}\n", out.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	err = patchFiles(cfg.MainConfig, strings.NewReader(`<a/>`), bytes.NewBuffer(nil), p, nil)
	if !errors.Is(err, errNotJSON) {
		t.Errorf("xml: %v", err)
	}

	capped := &MainConfig{MaxNodes: 4}
	err = patchFiles(capped, strings.NewReader(`{"a":1,"b":[]}`), bytes.NewBuffer(nil), p, nil)
	if !errors.Is(err, parse.ErrCapacity) {
		t.Errorf("capped: %v", err)
	}

	if _, err := getPatch(cfg, nil, `{"op":"add"}`); err == nil {
		t.Error("expected an error for a patch that is not an array")
	}
}
