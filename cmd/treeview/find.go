package main

import (
	"fmt"
	"io"

	"github.com/fabceolin/airgap-json-formatter-sub000/model"
	"github.com/fabceolin/airgap-json-formatter-sub000/query"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return findFiles(cfg, cc.In, cc.Out, q, args[1:])
}

func findFiles(cfg *FindConfig, in io.Reader, w io.Writer, q *query.Query, files []string) error {
	return cfg.eachView(in, w, files, func(_ document, v model.View) error {
		found, err := q.Find(v)
		if err != nil {
			return err
		}
		for _, ix := range found {
			var s string
			if cfg.Serialize {
				s, err = v.SerializeNode(ix)
			} else {
				s, err = v.GetPath(ix)
			}
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	})
}
