package ir

import (
	"math"
	"strconv"
)

// MaxSafeInteger bounds the integers kept in Int64. Integer literals beyond
// it are carried as floats.
const MaxSafeInteger = 1 << 53

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

// Key returns the member name of y in its parent object, or its index
// in its parent array. The root has an empty key.
func (y *Node) Key() string {
	if y.Parent == nil {
		return ""
	}
	if y.Parent.Type == ArrayType {
		return strconv.Itoa(y.ParentIndex)
	}
	return y.ParentField
}

// Value returns the scalar payload of y: int64, float64, string, bool or
// nil. Containers return nil.
func (y *Node) Value() any {
	switch y.Type {
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	default:
		return nil
	}
}

// DisplayValue renders the value of y for a tree row: scalars as they
// serialize (strings unquoted) and containers as their size, {n} or [n].
func (y *Node) DisplayValue() string {
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		return y.NumberText()
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NullType:
		return "null"
	case ObjectType:
		return "{" + strconv.Itoa(len(y.Values)) + "}"
	default:
		return "[" + strconv.Itoa(len(y.Values)) + "]"
	}
}

// NumberText renders a Number node the way it is serialized.
func (y *Node) NumberText() string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		return FormatFloat(*y.Float64)
	}
	return y.Number
}

// FormatFloat formats f in shortest form, switching to exponent notation
// outside [1e-6, 1e21) like ECMAScript number formatting.
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IsLastChild reports whether y is the final child of its parent.
func (y *Node) IsLastChild() bool {
	if y.Parent == nil {
		return true
	}
	return y.ParentIndex == len(y.Parent.Values)-1
}

func (y *Node) Depth() int {
	d := 0
	for p := y.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Count returns the number of nodes in the subtree rooted at y.
func (y *Node) Count() int {
	n := 1
	for _, c := range y.Values {
		n += c.Count()
	}
	return n
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromInt returns an integer Number, or a float one when v lies outside
// the safe integer range.
func FromInt(v int64) *Node {
	if v > MaxSafeInteger || v < -MaxSafeInteger {
		return FromFloat(float64(v))
	}
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType, Values: make([]*Node, 0, len(kvs))}
	for _, kv := range kvs {
		res.Append(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType, Values: make([]*Node, 0, len(ySlice))}
	for _, y := range ySlice {
		res.Append("", y)
	}
	return res
}

// Append links child as the last child of y. field is ignored unless y
// is an object.
func (y *Node) Append(field string, child *Node) {
	child.Parent = y
	child.ParentIndex = len(y.Values)
	if y.Type == ObjectType {
		child.ParentField = field
	}
	y.Values = append(y.Values, child)
}

// Get returns the first member of object y named field.
func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for _, v := range y.Values {
		if v.ParentField == field {
			return v
		}
	}
	return nil
}
