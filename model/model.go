package model

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fabceolin/airgap-json-formatter-sub000/debug"
	"github.com/fabceolin/airgap-json-formatter-sub000/encode"
	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/ir"
	"github.com/fabceolin/airgap-json-formatter-sub000/markup"
	"github.com/fabceolin/airgap-json-formatter-sub000/parse"
)

var (
	ErrStaleIndex = errors.New("index from a previous tree")
	ErrNoTree     = errors.New("no tree loaded")
	ErrRange      = errors.New("row or column out of range")
	ErrNoPath     = errors.New("no node at path")
	ErrBadRole    = errors.New("unknown role")
)

type slot[N any] struct {
	node     N
	parent   int
	row      int
	children []int
}

// Model holds the current tree of one document family.
type Model[N any] struct {
	fam       Family[N]
	parseOpts []parse.ParseOption
	encOpts   []encode.EncodeOption

	gen     uint64
	slots   []slot[N]
	total   int
	lastErr *parse.Error
	subs    map[int]func(Event)
	nextSub int
}

type options struct {
	parseOpts []parse.ParseOption
	encOpts   []encode.EncodeOption
}

type Option func(*options)

// WithParseOptions passes loader options, such as a node ceiling, to every
// Load.
func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(o *options) { o.parseOpts = append(o.parseOpts, opts...) }
}

// WithEncodeOptions passes serializer options to SerializeNode.
func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(o *options) { o.encOpts = append(o.encOpts, opts...) }
}

func newModel[N any](fam Family[N], opts []Option) *Model[N] {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	return &Model[N]{
		fam:       fam,
		parseOpts: o.parseOpts,
		encOpts:   o.encOpts,
		subs:      map[int]func(Event){},
	}
}

// NewJSON returns an empty model for object notation documents.
func NewJSON(opts ...Option) *Model[*ir.Node] {
	return newModel[*ir.Node](jsonFamily{}, opts)
}

// NewMarkup returns an empty model for markup documents.
func NewMarkup(opts ...Option) *Model[*markup.Node] {
	return newModel[*markup.Node](markupFamily{}, opts)
}

// New returns an empty model for documents of format f.
func New(f format.Format, opts ...Option) (View, error) {
	switch f {
	case format.JSONFormat:
		return NewJSON(opts...), nil
	case format.XMLFormat:
		return NewMarkup(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

func (m *Model[N]) Format() format.Format { return m.fam.Format() }

// Load replaces the tree with one parsed from text and reports success.
// The previous tree is discarded whatever the outcome. On failure the model
// is empty, LastError describes the failure and EventLoadFailed is
// published after EventReset. Empty or whitespace only text loads an empty
// tree successfully.
func (m *Model[N]) Load(text []byte) bool {
	root, n, err := m.fam.Parse(text, m.parseOpts...)
	m.publish(Event{Type: EventAboutToReset})
	m.drop()
	if err != nil {
		m.lastErr = asLoadError(err)
		if debug.Model() {
			debug.Logf("model %s: load failed: %v\n", m.Format(), err)
		}
		m.publish(Event{Type: EventReset})
		m.publish(Event{Type: EventLoadFailed, Err: m.lastErr})
		return false
	}
	if n > 0 {
		m.install(root, n)
	}
	if debug.Model() {
		debug.Logf("model %s: generation %d, %d nodes\n", m.Format(), m.gen, m.total)
	}
	m.publish(Event{Type: EventReset})
	return true
}

// Clear empties the model.
func (m *Model[N]) Clear() {
	m.publish(Event{Type: EventAboutToReset})
	m.drop()
	m.publish(Event{Type: EventReset})
}

func (m *Model[N]) drop() {
	m.gen++
	m.slots = nil
	m.total = 0
	m.lastErr = nil
}

func asLoadError(err error) *parse.Error {
	if pErr, ok := parse.AsError(err); ok {
		return pErr
	}
	return &parse.Error{Kind: parse.ErrSyntax, Msg: err.Error(), Line: 1, Col: 1, Err: err}
}

// install flattens the tree into slots in document order. Slot 0 is the
// root.
func (m *Model[N]) install(root N, n int) {
	slots := make([]slot[N], 0, n)
	slots = append(slots, slot[N]{node: root, parent: -1})
	for i := 0; i < len(slots); i++ {
		children := m.fam.Children(slots[i].node)
		if len(children) == 0 {
			continue
		}
		ids := make([]int, len(children))
		for row, c := range children {
			ids[row] = len(slots)
			slots = append(slots, slot[N]{node: c, parent: i, row: row})
		}
		slots[i].children = ids
	}
	m.slots = slots
	m.total = n
}

// HasTree reports whether a non-empty tree is loaded.
func (m *Model[N]) HasTree() bool { return len(m.slots) > 0 }

// TotalNodeCount returns the node count captured when the tree was parsed.
func (m *Model[N]) TotalNodeCount() int { return m.total }

// LastError returns the failure of the last Load, or nil.
func (m *Model[N]) LastError() *parse.Error { return m.lastErr }

// Generation increases with every Load and Clear.
func (m *Model[N]) Generation() uint64 { return m.gen }

func (m *Model[N]) resolve(ix Index) (int, error) {
	if !ix.IsValid() {
		if !m.HasTree() {
			return -1, ErrNoTree
		}
		return 0, nil
	}
	if ix.gen != m.gen || ix.handle > len(m.slots) {
		return -1, fmt.Errorf("%w: %s", ErrStaleIndex, ix)
	}
	return ix.handle - 1, nil
}

func (m *Model[N]) index(id int) Index {
	if id == 0 {
		return Index{}
	}
	return Index{gen: m.gen, handle: id + 1, row: m.slots[id].row}
}

// Node returns the node at ix.
func (m *Model[N]) Node(ix Index) (N, error) {
	id, err := m.resolve(ix)
	if err != nil {
		var zero N
		return zero, err
	}
	return m.slots[id].node, nil
}

// Index returns the address of child row of parent.
func (m *Model[N]) Index(row, column int, parent Index) (Index, error) {
	id, err := m.resolve(parent)
	if err != nil {
		return Index{}, err
	}
	children := m.slots[id].children
	if row < 0 || row >= len(children) || column != 0 {
		return Index{}, fmt.Errorf("%w: row %d column %d of %d rows", ErrRange, row, column, len(children))
	}
	ix := m.index(children[row])
	ix.column = column
	return ix, nil
}

// Parent returns the address of the parent of ix. Top level rows have the
// root, the zero Index, as parent.
func (m *Model[N]) Parent(ix Index) (Index, error) {
	id, err := m.resolve(ix)
	if err != nil {
		return Index{}, err
	}
	if id == 0 {
		return Index{}, nil
	}
	return m.index(m.slots[id].parent), nil
}

// RowCount returns the number of children of parent. An empty model has
// no rows.
func (m *Model[N]) RowCount(parent Index) (int, error) {
	if !parent.IsValid() && !m.HasTree() {
		return 0, nil
	}
	id, err := m.resolve(parent)
	if err != nil {
		return 0, err
	}
	return len(m.slots[id].children), nil
}

func (m *Model[N]) ColumnCount(Index) int { return 1 }

func (m *Model[N]) isLastChild(id int) bool {
	s := &m.slots[id]
	if s.parent < 0 {
		return true
	}
	return s.row == len(m.slots[s.parent].children)-1
}

// Data returns the datum of ix selected by role.
func (m *Model[N]) Data(ix Index, role Role) (any, error) {
	id, err := m.resolve(ix)
	if err != nil {
		return nil, err
	}
	s := &m.slots[id]
	switch role {
	case KeyRole:
		return m.fam.Key(s.node), nil
	case ValueRole:
		return m.fam.Value(s.node), nil
	case TypeRole:
		return m.fam.Type(s.node), nil
	case PathRole:
		return m.fam.Path(s.node), nil
	case ChildCountRole:
		return len(s.children), nil
	case ExpandableRole:
		return len(s.children) > 0, nil
	case LastChildRole:
		return m.isLastChild(id), nil
	case NamespacePrefixRole:
		return m.fam.Prefix(s.node), nil
	default:
		return nil, fmt.Errorf("%w %d", ErrBadRole, role)
	}
}

// Row returns every role of ix at once.
func (m *Model[N]) Row(ix Index) (Row, error) {
	id, err := m.resolve(ix)
	if err != nil {
		return Row{}, err
	}
	return m.row(id), nil
}

func (m *Model[N]) row(id int) Row {
	s := &m.slots[id]
	return Row{
		Index:      m.index(id),
		Key:        m.fam.Key(s.node),
		Value:      m.fam.Value(s.node),
		Type:       m.fam.Type(s.node),
		Path:       m.fam.Path(s.node),
		ChildCount: len(s.children),
		Expandable: len(s.children) > 0,
		LastChild:  m.isLastChild(id),
		Prefix:     m.fam.Prefix(s.node),
		Depth:      m.depth(id),
	}
}

func (m *Model[N]) depth(id int) int {
	d := 0
	for id > 0 {
		id = m.slots[id].parent
		d++
	}
	return d
}

// Rows returns the rows of the children of parent.
func (m *Model[N]) Rows(parent Index) ([]Row, error) {
	if !parent.IsValid() && !m.HasTree() {
		return []Row{}, nil
	}
	id, err := m.resolve(parent)
	if err != nil {
		return nil, err
	}
	res := make([]Row, len(m.slots[id].children))
	for i, c := range m.slots[id].children {
		res[i] = m.row(c)
	}
	return res, nil
}

// SerializeNode renders the subtree at ix as document text.
func (m *Model[N]) SerializeNode(ix Index) (string, error) {
	id, err := m.resolve(ix)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := m.fam.Encode(m.slots[id].node, buf, m.encOpts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GetPath returns the path of the node at ix.
func (m *Model[N]) GetPath(ix Index) (string, error) {
	id, err := m.resolve(ix)
	if err != nil {
		return "", err
	}
	return m.fam.Path(m.slots[id].node), nil
}

// Lookup returns the address of the node whose path is p.
func (m *Model[N]) Lookup(p string) (Index, error) {
	for id := range m.slots {
		if m.fam.Path(m.slots[id].node) == p {
			return m.index(id), nil
		}
	}
	if !m.HasTree() {
		return Index{}, ErrNoTree
	}
	return Index{}, fmt.Errorf("%w %q", ErrNoPath, p)
}

// Visit calls f with the address of every node below the root in
// document order, stopping at the first error.
func (m *Model[N]) Visit(f func(Index) error) error {
	if !m.HasTree() {
		return nil
	}
	return m.visit(0, m.gen, f)
}

func (m *Model[N]) visit(id int, gen uint64, f func(Index) error) error {
	for _, c := range m.slots[id].children {
		if err := f(m.index(c)); err != nil {
			return err
		}
		if m.gen != gen {
			return ErrStaleIndex
		}
		if err := m.visit(c, gen, f); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe registers f for model events and returns a function removing
// it.
func (m *Model[N]) Subscribe(f func(Event)) func() {
	id := m.nextSub
	m.nextSub++
	m.subs[id] = f
	return func() { delete(m.subs, id) }
}

func (m *Model[N]) publish(ev Event) {
	for i := 0; i < m.nextSub; i++ {
		if f := m.subs[i]; f != nil {
			f(ev)
		}
	}
}
