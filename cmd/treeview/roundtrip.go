package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fabceolin/airgap-json-formatter-sub000/libdiff"
	rt "github.com/fabceolin/airgap-json-formatter-sub000/roundtrip"

	"github.com/scott-cotton/cli"
)

var errChanged = errors.New("round trip changed the tree")

func roundtrip(cfg *RoundtripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Roundtrip.Parse(cc, args)
	if err != nil {
		return err
	}
	return roundtripFiles(cfg, cc.In, cc.Out, args)
}

func roundtripFiles(cfg *RoundtripConfig, in io.Reader, w io.Writer, files []string) error {
	s, err := cfg.Settings()
	if err != nil {
		return err
	}
	docs, err := cfg.readDocs(in, files)
	if err != nil {
		return err
	}
	colorize := cfg.useColor(w)
	changed := 0
	for _, doc := range docs {
		res, err := rt.Check(doc.format, doc.data, s.ModelOptions()...)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", doc.name, err)
		}
		status := "equal"
		if !res.Equal {
			status = "changed"
			changed++
			theLog.Warn("tree changed", "file", doc.name, "changes", len(res.Changes))
		}
		fmt.Fprintf(w, "%s: %s (%s, %d nodes)\n", doc.name, status, res.Format, res.Nodes)
		if cfg.Quiet {
			continue
		}
		for _, c := range res.Changes {
			fmt.Fprintf(w, "  %s %s", c.Op, c.Path)
			switch c.Op {
			case libdiff.Delete:
				fmt.Fprintf(w, " %s", c.From)
			case libdiff.Insert:
				fmt.Fprintf(w, " %s", c.To)
			default:
				fmt.Fprintf(w, " %s -> %s", c.From, c.To)
			}
			fmt.Fprintln(w)
		}
		if libdiff.Changed(res.Lines) {
			io.WriteString(w, libdiff.Unified(res.Lines, colorize))
		}
	}
	if changed > 0 {
		return fmt.Errorf("%w in %d of %d documents", errChanged, changed, len(docs))
	}
	return nil
}
