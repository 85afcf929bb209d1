package model

// Role selects which datum of a node Data returns.
type Role int

const (
	KeyRole Role = iota + 257
	ValueRole
	TypeRole
	PathRole
	ChildCountRole
	ExpandableRole
	LastChildRole
	NamespacePrefixRole
)

var roleNames = map[Role]string{
	KeyRole:             "key",
	ValueRole:           "value",
	TypeRole:            "type",
	PathRole:            "path",
	ChildCountRole:      "childCount",
	ExpandableRole:      "isExpandable",
	LastChildRole:       "isLastChild",
	NamespacePrefixRole: "namespacePrefix",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "<unknown role>"
}

// RoleNames returns the view binding name of every role.
func RoleNames() map[Role]string {
	res := make(map[Role]string, len(roleNames))
	for k, v := range roleNames {
		res[k] = v
	}
	return res
}

// Roles returns all roles in declaration order.
func Roles() []Role {
	return []Role{
		KeyRole, ValueRole, TypeRole, PathRole,
		ChildCountRole, ExpandableRole, LastChildRole, NamespacePrefixRole,
	}
}
