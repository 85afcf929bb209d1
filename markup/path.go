package markup

import "strconv"

// Path returns the location path of n, such as /a/b[1]/@id or
// /a/text(). The synthetic root is "/".
//
// A positional predicate is appended to an element step only when two or
// more sibling elements share its qualified name; it is the zero based
// ordinal among those siblings.
func (n *Node) Path() string {
	p := n.prefix()
	if p == "" {
		return "/"
	}
	return p
}

func (n *Node) prefix() string {
	if n.Parent == nil {
		if n.Type == RootType {
			return ""
		}
		return "/" + n.step()
	}
	return n.Parent.prefix() + "/" + n.step()
}

func (n *Node) step() string {
	switch n.Type {
	case ElementType:
		qn := n.QName()
		if n.Parent == nil {
			return qn
		}
		same, ord := 0, 0
		for _, sib := range n.Parent.Children {
			if sib.Type != ElementType || sib.QName() != qn {
				continue
			}
			if sib == n {
				ord = same
			}
			same++
		}
		if same < 2 {
			return qn
		}
		return qn + "[" + strconv.Itoa(ord) + "]"
	case AttributeType:
		return "@" + n.QName()
	case TextType, CDataType:
		return "text()"
	case CommentType:
		return "comment()"
	case RootType:
		return ""
	default:
		panic("type")
	}
}
