package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

// Depth sets the starting nesting level, for output embedded in an already
// indented context.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color, es.MarkupColor = nil, nil
			return
		}
		es.Color = c.Color
		es.MarkupColor = c.MarkupColor
	}
}

// EncodeWire drops all line breaks and indentation.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
