package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns v as a double quoted JSON string literal. Backslash, quote
// and control characters are escaped; everything else is kept as UTF-8.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote validates and decodes a complete quoted literal.
func Unquote(v string) (string, error) {
	b := []byte(v)
	n, err := bsEscQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return QuotedToString(b), nil
}

// bsEscQuoted validates the quoted literal at the start of d and returns
// its length including both quotes. On error the returned offset points at
// the offending byte.
func bsEscQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnterminated
	}
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		if r == utf8.RuneError && sz == 1 {
			return start, ErrBadUTF8
		}
		if r < 0x20 {
			return start, ErrUnicodeControl
		}
		start += sz
		if !escaped {
			switch r {
			case '"':
				return start, nil
			case '\\':
				escaped = true
			}
			continue
		}
		escaped = false
		switch r {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		case 'u':
			if start+4 > n {
				return n, ErrUnterminated
			}
			if !allHex(d[start : start+4]) {
				return start, ErrBadUnicode
			}
			start += 4
		default:
			return start - sz, ErrBadEscape
		}
	}
	return n, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a quoted literal previously validated by the
// scanner. Lone surrogates decode to U+FFFD.
func QuotedToString(d []byte) string {
	if len(d) < 2 {
		return ""
	}
	d = d[1 : len(d)-1]
	b := &strings.Builder{}
	b.Grow(len(d))
	i := 0
	for i < len(d) {
		c := d[i]
		if c != '\\' {
			r, sz := utf8.DecodeRune(d[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		if i+1 >= len(d) {
			break
		}
		i += 2
		switch d[i-1] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'u':
			r, n := hexRune(d[i:])
			i += n
			if utf16.IsSurrogate(r) {
				r2, n2 := rune(-1), 0
				if i+1 < len(d) && d[i] == '\\' && d[i+1] == 'u' {
					r2, n2 = hexRune(d[i+2:])
				}
				if dec := utf16.DecodeRune(r, r2); dec != unicode.ReplacementChar {
					r = dec
					i += 2 + n2
				} else {
					r = unicode.ReplacementChar
				}
			}
			b.WriteRune(r)
		default:
			// '"', '\\' and '/'
			b.WriteByte(d[i-1])
		}
	}
	return b.String()
}

func hexRune(d []byte) (rune, int) {
	if len(d) < 4 || !allHex(d[:4]) {
		return unicode.ReplacementChar, 0
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c - 'a' + 10)
		default:
			r |= rune(c - 'A' + 10)
		}
	}
	return r, 4
}
