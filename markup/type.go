package markup

import "fmt"

type Type int

const (
	RootType Type = iota
	ElementType
	AttributeType
	TextType
	CommentType
	CDataType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		RootType:      "Root",
		ElementType:   "Element",
		AttributeType: "Attribute",
		TextType:      "Text",
		CommentType:   "Comment",
		CDataType:     "CData",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Root":      RootType,
		"Element":   ElementType,
		"Attribute": AttributeType,
		"Text":      TextType,
		"Comment":   CommentType,
		"CData":     CDataType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{RootType, ElementType, AttributeType, TextType, CommentType, CDataType}
}

// IsCharData reports whether t carries character content, i.e. Text or
// CData.
func (t Type) IsCharData() bool {
	return t == TextType || t == CDataType
}
