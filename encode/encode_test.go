package encode_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fabceolin/airgap-json-formatter-sub000/encode"
	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/parse"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `{}`, want: `{}`},
		{in: `[]`, want: `[]`},
		{in: `"a\"b\u0001"`, want: `"a\"b\u0001"`},
		{in: `1.50`, want: `1.5`},
		{in: `1e400`, want: `1e400`},
		{in: `9007199254740993`, want: `9007199254740992`},
		{in: `{"a":[1,2,3]}`, want: "{\n  \"a\": [\n    1,\n    2,\n    3\n  ]\n}"},
		{in: `{"x":{"y":{}},"z":[null,true]}`, want: "{\n  \"x\": {\n    \"y\": {}\n  },\n  \"z\": [\n    null,\n    true\n  ]\n}"},
	}
	for _, tt := range tests {
		root, err := parse.Parse([]byte(tt.in))
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, encode.MustString(root)); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tt.in, diff)
		}
	}
}

func TestEncodeSubtree(t *testing.T) {
	root, err := parse.Parse([]byte(`{"a":{"b":[1,{"c":"d"}]}}`))
	if err != nil {
		t.Fatal(err)
	}
	sub := root.Values[0].Values[0]
	if sub.Path() != "$.a.b" {
		t.Fatalf("path %s", sub.Path())
	}
	want := "[\n  1,\n  {\n    \"c\": \"d\"\n  }\n]"
	if diff := cmp.Diff(want, encode.MustString(sub)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestEncodeOptions(t *testing.T) {
	root, err := parse.Parse([]byte(`{"a":[1,{"b":null}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(root, encode.EncodeWire(true)); got != `{"a":[1,{"b":null}]}` {
		t.Errorf("wire: %s", got)
	}
	want := "{\n    \"a\": [\n        1,\n        {\n            \"b\": null\n        }\n    ]\n}"
	if diff := cmp.Diff(want, encode.MustString(root, encode.Indent(4))); diff != "" {
		t.Errorf("indent: (-want +got)\n%s", diff)
	}
	if got := encode.MustString(nil); got != "" {
		t.Errorf("nil: %q", got)
	}
}

func TestEncodeNonFinite(t *testing.T) {
	var buf strings.Builder
	err := encode.Encode(ir.FromFloat(math.Inf(1)), &buf)
	if !errors.Is(err, encode.ErrEncoding) {
		t.Fatalf("got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = save }()

	root, err := parse.Parse([]byte(`{"a%":1}`))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(root, encode.EncodeColors(encode.NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
	if !strings.Contains(got, `"a%"`) {
		t.Errorf("percent mangled in %q", got)
	}
	plain := encode.MustString(root, encode.EncodeColors(nil))
	if plain != "{\n  \"a%\": 1\n}" {
		t.Errorf("plain %q", plain)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{"a":[1,2,3],"b":{"c":"é\n","d":-0.5e-7},"":[[],{}],"e f":null}`,
		`[true,false,null,"\\",12345678901234567890]`,
		`"plain"`,
	}
	for _, d := range docs {
		first, err := parse.Parse([]byte(d))
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		for _, opt := range []encode.EncodeOption{encode.Indent(2), encode.EncodeWire(true)} {
			second, err := parse.Parse([]byte(encode.MustString(first, opt)))
			if err != nil {
				t.Fatalf("%s: re-parse: %v", d, err)
			}
			if !ir.Equal(first, second) {
				t.Errorf("%s: round trip changed the tree:\n%s", d, encode.MustString(second))
			}
		}
	}
}
