// Package query selects tree nodes with boolean expressions.
//
// An expression is evaluated once per node with these variables:
//
//	type      node type name, e.g. "Object" or "Element"
//	key       member name, array index, tag or "@"+attribute name
//	value     displayed value
//	path      node path
//	prefix    namespace prefix
//	depth     0 for the root
//	children  number of children
//	leaf      children == 0
//
// The function under(path, p) reports whether path lies strictly below the
// node at p.
//
// For example `type == "Number" && float(value) > 10` or
// `key startsWith "@" && under(path, "/catalog/item")`.
package query

import (
	"fmt"
	"strings"

	"github.com/fabceolin/airgap-json-formatter-sub000/model"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Env struct {
	Type     string `expr:"type"`
	Key      string `expr:"key"`
	Value    string `expr:"value"`
	Path     string `expr:"path"`
	Prefix   string `expr:"prefix"`
	Depth    int    `expr:"depth"`
	Children int    `expr:"children"`
	Leaf     bool   `expr:"leaf"`
}

func EnvOf(row model.Row) Env {
	return Env{
		Type:     row.Type,
		Key:      row.Key,
		Value:    row.Value,
		Path:     row.Path,
		Prefix:   row.Prefix,
		Depth:    row.Depth,
		Children: row.ChildCount,
		Leaf:     row.ChildCount == 0,
	}
}

type Query struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("under", func(params ...any) (any, error) {
			return under(params[0].(string), params[1].(string)), nil
		},
			new(func(string, string) bool)),
	}
}

// under reports whether path addresses a descendant of the node at
// ancestor, in either path syntax.
func under(path, ancestor string) bool {
	rest, ok := strings.CutPrefix(path, ancestor)
	if !ok || rest == "" {
		return false
	}
	if ancestor == "/" {
		return true
	}
	switch rest[0] {
	case '.', '[', '/':
		return true
	}
	return false
}

// Compile checks src and prepares it for evaluation.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

// Match evaluates q against the node at ix.
func (q *Query) Match(v model.View, ix model.Index) (bool, error) {
	row, err := v.Row(ix)
	if err != nil {
		return false, err
	}
	return q.Eval(EnvOf(row))
}

func (q *Query) Eval(env Env) (bool, error) {
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("query %q at %s: %w", q.src, env.Path, err)
	}
	return res.(bool), nil
}

// Find returns the addresses of all matching nodes in document order, the
// root first.
func (q *Query) Find(v model.View) ([]model.Index, error) {
	res := []model.Index{}
	if !v.HasTree() {
		return res, nil
	}
	ok, err := q.Match(v, model.Index{})
	if err != nil {
		return nil, err
	}
	if ok {
		res = append(res, model.Index{})
	}
	err = v.Visit(func(ix model.Index) error {
		ok, err := q.Match(v, ix)
		if err != nil {
			return err
		}
		if ok {
			res = append(res, ix)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Find compiles src and runs it over v.
func Find(v model.View, src string) ([]model.Index, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Find(v)
}
