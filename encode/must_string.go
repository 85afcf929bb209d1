package encode

import (
	"bytes"

	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func MustStringMarkup(node *markup.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeMarkup(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
