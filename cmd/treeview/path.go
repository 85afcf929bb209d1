package main

import (
	"fmt"
	"io"

	"github.com/fabceolin/airgap-json-formatter-sub000/model"

	"github.com/scott-cotton/cli"
)

func paths(cfg *PathConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Path.Parse(cc, args)
	if err != nil {
		return err
	}
	return pathFiles(cfg, cc.In, cc.Out, args)
}

func pathFiles(cfg *PathConfig, in io.Reader, w io.Writer, files []string) error {
	return cfg.eachView(in, w, files, func(_ document, v model.View) error {
		return v.Visit(func(ix model.Index) error {
			row, err := v.Row(ix)
			if err != nil {
				return err
			}
			if cfg.Values && row.Value != "" {
				_, err = fmt.Fprintf(w, "%s\t%s\n", row.Path, row.Value)
				return err
			}
			_, err = fmt.Fprintln(w, row.Path)
			return err
		})
	})
}
