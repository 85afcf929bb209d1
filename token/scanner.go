package token

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

var bom = []byte("\ufeff")

// Scanner is a pull tokenizer over a complete document.
type Scanner struct {
	d      []byte
	i      int
	posDoc *PosDoc
}

func NewScanner(d []byte) *Scanner {
	s := &Scanner{d: d, posDoc: NewPosDoc(d)}
	if bytes.HasPrefix(d, bom) {
		s.i = len(bom)
	}
	return s
}

// PosDoc returns the position index of the scanned document.
func (s *Scanner) PosDoc() *PosDoc { return s.posDoc }

// Pos returns the position of the next unread byte.
func (s *Scanner) Pos() *Pos { return s.posDoc.Pos(s.i) }

// Next returns the next token, or io.EOF once only whitespace remains.
func (s *Scanner) Next() (*Token, error) {
	s.skipSpace()
	if s.i >= len(s.d) {
		return nil, io.EOF
	}
	start := s.i
	c := s.d[start]
	switch c {
	case '{':
		return s.punct(TLCurl), nil
	case '}':
		return s.punct(TRCurl), nil
	case '[':
		return s.punct(TLSquare), nil
	case ']':
		return s.punct(TRSquare), nil
	case ':':
		return s.punct(TColon), nil
	case ',':
		return s.punct(TComma), nil
	case '"':
		n, err := bsEscQuoted(s.d[start:])
		if err != nil {
			return nil, NewTokenizeErr(err, s.posDoc.Pos(start+n))
		}
		return s.emit(TString, n), nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, isFloat, err := number(s.d[start:])
		if err != nil {
			return nil, NewTokenizeErr(err, s.posDoc.Pos(start+n))
		}
		if err := s.delimited(start + n); err != nil {
			return nil, err
		}
		if isFloat {
			return s.emit(TFloat, n), nil
		}
		return s.emit(TInteger, n), nil
	case 't':
		return s.literal("true", TTrue)
	case 'f':
		return s.literal("false", TFalse)
	case 'n':
		return s.literal("null", TNull)
	}
	return nil, UnexpectedErr(s.describe(start), s.posDoc.Pos(start))
}

func (s *Scanner) skipSpace() {
	for s.i < len(s.d) {
		switch s.d[s.i] {
		case ' ', '\t', '\r', '\n':
			s.i++
		default:
			return
		}
	}
}

func (s *Scanner) punct(t TokenType) *Token {
	return s.emit(t, 1)
}

func (s *Scanner) emit(t TokenType, n int) *Token {
	tok := &Token{
		Type:  t,
		Pos:   s.posDoc.Pos(s.i),
		Bytes: s.d[s.i : s.i+n],
	}
	s.i += n
	return tok
}

func (s *Scanner) literal(lit string, t TokenType) (*Token, error) {
	if !bytes.HasPrefix(s.d[s.i:], []byte(lit)) {
		return nil, NewTokenizeErr(fmt.Errorf("%w %s", ErrLiteral, s.describe(s.i)), s.posDoc.Pos(s.i))
	}
	if err := s.delimited(s.i + len(lit)); err != nil {
		return nil, err
	}
	return s.emit(t, len(lit)), nil
}

// delimited checks that a scalar ending at off is not glued to more
// scalar characters, as in "truex" or "1.".
func (s *Scanner) delimited(off int) error {
	if off >= len(s.d) {
		return nil
	}
	switch s.d[off] {
	case ' ', '\t', '\r', '\n', ',', ':', ']', '}', '[', '{', '"':
		return nil
	}
	return UnexpectedErr(s.describe(off), s.posDoc.Pos(off))
}

func (s *Scanner) describe(off int) string {
	r, _ := utf8.DecodeRune(s.d[off:])
	if r == utf8.RuneError {
		return fmt.Sprintf("byte 0x%02x", s.d[off])
	}
	return fmt.Sprintf("character %q", r)
}

// Tokenize appends all tokens of src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	s := NewScanner(src)
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, *tok)
	}
}
