package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/model"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a node path", cli.ErrUsage)
	}
	if args[0] == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	return getFiles(cfg.MainConfig, cc.In, cc.Out, args[0], args[1:])
}

func getFiles(cfg *MainConfig, in io.Reader, w io.Writer, path string, files []string) error {
	return cfg.eachView(in, w, files, func(doc document, v model.View) error {
		ix, err := v.Lookup(normPath(doc.format, path))
		if err != nil {
			return err
		}
		s, err := v.SerializeNode(ix)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	})
}

// normPath lets "a[1]" stand for "$.a[1]" and "a/b" for "/a/b".
func normPath(f format.Format, p string) string {
	switch f {
	case format.JSONFormat:
		if strings.HasPrefix(p, "$") {
			return p
		}
		if strings.HasPrefix(p, "[") || strings.HasPrefix(p, ".") {
			return "$" + p
		}
		return "$." + p
	default:
		if strings.HasPrefix(p, "/") {
			return p
		}
		return "/" + p
	}
}
