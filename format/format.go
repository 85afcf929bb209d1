package format

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one of the two supported grammar families.
type Format int

const (
	// JSONFormat is the object/array/scalar notation.
	JSONFormat Format = iota
	// XMLFormat is the element/attribute/markup notation.
	XMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"x":    XMLFormat,
		"xml":  XMLFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case XMLFormat:
		return []byte("xml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsXML() bool  { return f == XMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case XMLFormat:
		return ".xml"
	default:
		return ""
	}
}

// FromSuffix maps a file name to a format by its extension.
func FromSuffix(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return JSONFormat, true
	case ".xml", ".svg", ".xsd", ".xsl", ".xhtml":
		return XMLFormat, true
	}
	return 0, false
}

// Sniff guesses the format of d from its first non-space byte. Anything
// that does not open with '<' is treated as JSON.
func Sniff(d []byte) Format {
	d = bytes.TrimLeft(d, " \t\r\n\ufeff")
	if len(d) > 0 && d[0] == '<' {
		return XMLFormat
	}
	return JSONFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, XMLFormat}
}
