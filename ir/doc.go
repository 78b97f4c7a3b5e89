// Package ir provides the in-memory representation of JSON values used
// throughout the module.
//
// # Overview
//
// A JSON value is represented as a tree of *ir.Node. The IR is a simple
// recursive tagged union: the Type field selects which of the other
// fields carry the value. Object nodes keep their keys in parallel
// Fields/Values slices, so insertion order is preserved — plain Go maps
// appear only at conversion boundaries.
//
// # Node Types
//
//   - NullType: null
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64, raw lexeme retained)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always the same number of fields as values. Fields
// produced by this package's constructors and parser are always string
// typed; a non-string field signals a document built outside the IR's
// constructors and is rejected by the editor.
//
// A nil *ir.Node is not a value: it stands for an absent (undefined)
// value and is handled by the editor's undefined-value policy.
package ir
