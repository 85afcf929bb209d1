package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeOK(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{in: ``, want: []TokenType{}},
		{in: "  \n\t", want: []TokenType{}},
		{in: `null`, want: []TokenType{TNull}},
		{in: `true false`, want: []TokenType{TTrue, TFalse}},
		{in: `-0`, want: []TokenType{TInteger}},
		{in: `12.5e-3`, want: []TokenType{TFloat}},
		{in: `1E9`, want: []TokenType{TFloat}},
		{in: `"a\"b"`, want: []TokenType{TString}},
		{in: `{"a":[1,2]}`, want: []TokenType{
			TLCurl, TString, TColon, TLSquare, TInteger, TComma, TInteger, TRSquare, TRCurl,
		}},
		{in: "\ufeff[]", want: []TokenType{TLSquare, TRSquare}},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, types(toks)); diff != "" && len(tt.want) != 0 {
			t.Errorf("%q: (-want +got)\n%s", tt.in, diff)
		}
		if len(tt.want) == 0 && len(toks) != 0 {
			t.Errorf("%q: expected no tokens, got %v", tt.in, types(toks))
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		err  error
		line int
		col  int
	}{
		{in: `01`, err: ErrNumberLeadingZero, line: 1, col: 3},
		{in: `-`, err: ErrNumber, line: 1, col: 2},
		{in: `1.`, err: ErrUnexpected, line: 1, col: 2},
		{in: `tru`, err: ErrLiteral, line: 1, col: 1},
		{in: `truex`, err: ErrUnexpected, line: 1, col: 5},
		{in: "\"ab", err: ErrUnterminated, line: 1, col: 4},
		{in: "\"a\\q\"", err: ErrBadEscape, line: 1, col: 4},
		{in: "\"\\u12g4\"", err: ErrBadUnicode, line: 1, col: 4},
		{in: "\"a\nb\"", err: ErrUnicodeControl, line: 1, col: 3},
		{in: "[\n  @]", err: ErrUnexpected, line: 2, col: 3},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.err, err)
			continue
		}
		var tErr *TokenizeErr
		if !errors.As(err, &tErr) {
			t.Errorf("%q: expected *TokenizeErr, got %T", tt.in, err)
			continue
		}
		line, col := tErr.Pos.LineCol()
		if line != tt.line || col != tt.col {
			t.Errorf("%q: got line %d col %d, want %d %d", tt.in, line, col, tt.line, tt.col)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	d := []byte("ab\ncdé\n\nx")
	pd := NewPosDoc(d)
	tests := []struct {
		off, line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{7, 2, 4},
		{8, 3, 1},
		{9, 4, 1},
		{10, 4, 2},
	}
	for _, tt := range tests {
		line, col := pd.LineCol(tt.off)
		if line != tt.line || col != tt.col {
			t.Errorf("offset %d: got %d:%d want %d:%d", tt.off, line, col, tt.line, tt.col)
		}
	}
}
