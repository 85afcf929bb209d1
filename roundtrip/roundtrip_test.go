package roundtrip

import (
	"errors"
	"testing"

	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/libdiff"
	"github.com/fabceolin/airgap-json-formatter-sub000/parse"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		f   format.Format
		src string
	}{
		{format.JSONFormat, `{"a":[1,2,3]}`},
		{format.JSONFormat, "{\n  \"a\": 1\n}"},
		{format.JSONFormat, `[1.0, 1e2, "é", {"":null}]`},
		{format.XMLFormat, `<a><b/><b/></a>`},
		{format.XMLFormat, `<?xml version="1.0"?><!--c--><p:r xmlns:p="u" p:x="&amp;">t<![CDATA[ c ]]></p:r>`},
		{format.XMLFormat, `<a>x&#13;y</a>`},
		{format.XMLFormat, `<a v="1&#13;&#10;2">p&#13;&#10;q</a>`},
	}
	for _, tt := range tests {
		res, err := Check(tt.f, []byte(tt.src))
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if !res.Equal {
			t.Errorf("%s: not equal after round trip: %v", tt.src, res.Changes)
		}
		if res.Nodes == 0 {
			t.Errorf("%s: no nodes", tt.src)
		}
	}
}

func TestCheckReportsFormatting(t *testing.T) {
	res, err := Check(format.JSONFormat, []byte(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if !libdiff.Changed(res.Lines) {
		t.Error("expected text differences")
	}
	res, err = Check(format.JSONFormat, []byte("{\n  \"a\": 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	if libdiff.Changed(res.Lines) {
		t.Errorf("canonical input changed:\n%s", libdiff.Unified(res.Lines, false))
	}
}

func TestCheckErrors(t *testing.T) {
	_, err := Check(format.JSONFormat, []byte(`{"a":}`))
	if !errors.Is(err, parse.ErrSyntax) {
		t.Errorf("got %v", err)
	}
	_, err = Check(format.XMLFormat, []byte(`<a><b></a>`))
	if !errors.Is(err, parse.ErrSyntax) {
		t.Errorf("got %v", err)
	}
	_, err = Check(format.Format(9), nil)
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	res, err := Check(format.XMLFormat, []byte("  "))
	if err != nil || !res.Equal || res.Nodes != 0 {
		t.Errorf("empty: %v %v", res, err)
	}
}
