package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"j": JSONFormat, "json": JSONFormat, "JSON": JSONFormat,
		"x": XMLFormat, "xml": XMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestSniff(t *testing.T) {
	if f := Sniff([]byte("  \n<a/>")); f != XMLFormat {
		t.Errorf("got %s", f)
	}
	if f := Sniff([]byte(`{"a":1}`)); f != JSONFormat {
		t.Errorf("got %s", f)
	}
	if f := Sniff(nil); f != JSONFormat {
		t.Errorf("got %s", f)
	}
}

func TestFromSuffix(t *testing.T) {
	if f, ok := FromSuffix("a/b.XML"); !ok || f != XMLFormat {
		t.Errorf("got %s %v", f, ok)
	}
	if f, ok := FromSuffix("b.json"); !ok || f != JSONFormat {
		t.Errorf("got %s %v", f, ok)
	}
	if _, ok := FromSuffix("b.txt"); ok {
		t.Error("unexpected match")
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
}
