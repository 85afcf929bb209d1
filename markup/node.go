package markup

// Node is one element of a markup document tree.
//
// Elements own their attributes as leading Attribute children, followed by
// content children in document order.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	Children    []*Node

	// Name is the local name of an element or attribute, Prefix its
	// namespace prefix if any.
	Name   string
	Prefix string
	// Value is the payload of Attribute, Text, Comment and CData nodes.
	Value string
}

func NewRoot() *Node {
	return &Node{Type: RootType}
}

func NewElement(prefix, name string) *Node {
	return &Node{Type: ElementType, Prefix: prefix, Name: name}
}

func NewAttribute(prefix, name, value string) *Node {
	return &Node{Type: AttributeType, Prefix: prefix, Name: name, Value: value}
}

func NewText(v string) *Node {
	return &Node{Type: TextType, Value: v}
}

func NewCData(v string) *Node {
	return &Node{Type: CDataType, Value: v}
}

func NewComment(v string) *Node {
	return &Node{Type: CommentType, Value: v}
}

// Append links child as the last child of n and returns child.
func (n *Node) Append(child *Node) *Node {
	child.Parent = n
	child.ParentIndex = len(n.Children)
	n.Children = append(n.Children, child)
	return child
}

// QName returns the namespace qualified name, prefix:name.
func (n *Node) QName() string {
	if n.Prefix == "" {
		return n.Name
	}
	return n.Prefix + ":" + n.Name
}

// Key returns the label of n in a tree view: the qualified tag name for
// elements, "@" and the qualified name for attributes, and a DOM style
// node name for the other types.
func (n *Node) Key() string {
	switch n.Type {
	case ElementType:
		return n.QName()
	case AttributeType:
		return "@" + n.QName()
	case TextType:
		return "#text"
	case CDataType:
		return "#cdata-section"
	case CommentType:
		return "#comment"
	default:
		return ""
	}
}

// Attrs returns the attribute children of an element.
func (n *Node) Attrs() []*Node {
	i := 0
	for i < len(n.Children) && n.Children[i].Type == AttributeType {
		i++
	}
	return n.Children[:i]
}

// Content returns the non attribute children of n.
func (n *Node) Content() []*Node {
	return n.Children[len(n.Attrs()):]
}

// IsLastChild reports whether n is the final child of its parent.
func (n *Node) IsLastChild() bool {
	if n.Parent == nil {
		return true
	}
	return n.ParentIndex == len(n.Parent.Children)-1
}

func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Count returns the number of nodes in the subtree rooted at n, attributes
// included.
func (n *Node) Count() int {
	c := 1
	for _, ch := range n.Children {
		c += ch.Count()
	}
	return c
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
