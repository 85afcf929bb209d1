package main

import (
	"fmt"
	"io"

	"github.com/fabceolin/airgap-json-formatter-sub000/model"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("%w: -d must not be negative", cli.ErrUsage)
	}
	return viewFiles(cfg, cc.In, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, in io.Reader, w io.Writer, files []string) error {
	colorize := cfg.useColor(w)
	return cfg.eachView(in, w, files, func(_ document, v model.View) error {
		if !v.HasTree() {
			return nil
		}
		tw := &treeWriter{
			v:     v,
			w:     w,
			depth: cfg.expandDepth(v.TotalNodeCount()),
		}
		if colorize {
			tw.colors = newRowColors()
		}
		return tw.write()
	})
}

type rowColors struct {
	key, value, path, conn *color.Color
}

func newRowColors() *rowColors {
	c := &rowColors{
		key:   color.RGB(128, 168, 196),
		value: color.RGB(8, 196, 16),
		path:  color.New(color.Bold),
		conn:  color.New(color.Faint),
	}
	for _, cc := range []*color.Color{c.key, c.value, c.path, c.conn} {
		cc.EnableColor()
	}
	return c
}

// treeWriter draws the rows of a model with connector lines, expanding
// rows down to depth levels below the root, or all of them when depth is
// negative.
type treeWriter struct {
	v      model.View
	w      io.Writer
	depth  int
	colors *rowColors
}

func (t *treeWriter) write() error {
	root, err := t.v.Row(model.Index{})
	if err != nil {
		return err
	}
	line := root.Path
	if root.Value != "" {
		line += " " + root.Value
	}
	if t.colors != nil {
		line = t.colors.path.Sprint(line)
	}
	if _, err := fmt.Fprintln(t.w, line); err != nil {
		return err
	}
	return t.rows(model.Index{}, "")
}

func (t *treeWriter) rows(parent model.Index, prefix string) error {
	rows, err := t.v.Rows(parent)
	if err != nil {
		return err
	}
	for _, row := range rows {
		conn, ext := "├── ", "│   "
		if row.LastChild {
			conn, ext = "└── ", "    "
		}
		open := row.Expandable && (t.depth < 0 || row.Depth < t.depth)
		if _, err := fmt.Fprintln(t.w, t.conn(prefix+conn)+t.label(row, open)); err != nil {
			return err
		}
		if !open {
			continue
		}
		if err := t.rows(row.Index, prefix+ext); err != nil {
			return err
		}
	}
	return nil
}

func (t *treeWriter) conn(s string) string {
	if t.colors == nil {
		return s
	}
	return t.colors.conn.Sprint(s)
}

func (t *treeWriter) label(row model.Row, open bool) string {
	key, value := row.Key, row.Value
	if t.colors != nil {
		key = t.colors.key.Sprint(key)
		value = t.colors.value.Sprint(value)
	}
	res := key
	if row.Value != "" {
		res += ": " + value
	}
	if row.Expandable && !open {
		res += fmt.Sprintf(" (+%d)", row.ChildCount)
	}
	return res
}
