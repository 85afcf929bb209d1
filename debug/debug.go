// Package debug holds environment controlled trace switches.
package debug

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/fabceolin/airgap-json-formatter-sub000/encode"
	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
)

type debug struct {
	Parse  bool
	Model  bool
	Bridge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TREEVIEW_DEBUG_PARSE")
	d.Model = boolEnv("TREEVIEW_DEBUG_MODEL")
	d.Bridge = boolEnv("TREEVIEW_DEBUG_BRIDGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Model() bool {
	return d.Model
}
func Bridge() bool {
	return d.Bridge
}

// Logf writes a trace line to stderr. Tree arguments are rendered as
// documents.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		case *markup.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.EncodeMarkup(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *markup.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
