package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/model"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

var errNotJSON = errors.New("json patch applies to json documents only")

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc.In, args[0])
	if err != nil {
		return err
	}
	return patchFiles(cfg.MainConfig, cc.In, cc.Out, p, args[1:])
}

func getPatch(cfg *PatchConfig, in io.Reader, arg string) (jsonpatch.Patch, error) {
	d := []byte(arg)
	if !cfg.String {
		var err error
		d, err = readFile(in, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: bad patch: %w", cli.ErrUsage, err)
	}
	return p, nil
}

// patchFiles applies p to the text of each document and loads the result
// again, so the patched document passes the same checks as its source.
func patchFiles(cfg *MainConfig, in io.Reader, w io.Writer, p jsonpatch.Patch, files []string) error {
	return cfg.eachView(in, w, files, func(doc document, v model.View) error {
		if doc.format != format.JSONFormat {
			return fmt.Errorf("%w: %s is %s", errNotJSON, doc.name, doc.format)
		}
		if !v.HasTree() {
			return fmt.Errorf("%s is empty", doc.name)
		}
		out, err := p.Apply(doc.data)
		if err != nil {
			return fmt.Errorf("error patching: %w", err)
		}
		if !v.Load(out) {
			return fmt.Errorf("patched document: %w", v.LastError())
		}
		s, err := v.SerializeNode(model.Index{})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	})
}
