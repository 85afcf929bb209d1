// Package ir provides the in-memory tree for object notation documents.
//
// # Node Structure
//
// A Node represents a single value. The Type field is a closed tag:
//
//   - NullType, BoolType, NumberType, StringType: scalars
//   - ObjectType: members in document order, each child carries its name in
//     ParentField
//   - ArrayType: ordered elements
//
// Children live in Values and are owned by their parent. Parent is a plain
// back-reference used for upward path computation and sibling lookup; trees
// are built once by the loader and never mutated afterwards.
//
// # Numbers
//
// Number values are placed under:
//   - Int64: integer literals within ±2^53 (inclusive)
//   - Float64: every other finite number
//   - Number: the literal text, when the value overflows a float64
//
// # Paths
//
// Path returns an accessor expression rooted at "$". Object members use the
// dotted form unless the key is empty or contains a period, space, bracket
// or quote, in which case the bracket form with a quoted key is used:
//
//	$.a[1]
//	$["a.b"].c
//
// # Thread Safety
//
// Node structures are not thread-safe. Readers may share a completed tree
// as long as nothing replaces it concurrently.
package ir
