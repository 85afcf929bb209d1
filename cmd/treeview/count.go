package main

import (
	"fmt"
	"io"

	"github.com/fabceolin/airgap-json-formatter-sub000/model"

	"github.com/scott-cotton/cli"
)

func count(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		return err
	}
	return countFiles(cfg.MainConfig, cc.In, cc.Out, args)
}

func countFiles(cfg *MainConfig, in io.Reader, w io.Writer, files []string) error {
	return cfg.eachView(in, w, files, func(doc document, v model.View) error {
		_, err := fmt.Fprintf(w, "%d\t%s\n", v.TotalNodeCount(), doc.name)
		return err
	})
}
