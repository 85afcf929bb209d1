package token

import (
	"errors"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrNumber            = errors.New("number")
	ErrUnexpected        = errors.New("unexpected")
)

func LeadingZeroErr(pos *Pos) error {
	return NewTokenizeErr(ErrNumberLeadingZero, pos)
}
