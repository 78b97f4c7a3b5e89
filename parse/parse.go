// Package parse reads JSON or YAML documents into the ir node
// representation, preserving object key order.
package parse

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/jsonedit/go-jsonedit/ir"
)

// Parse reads a single JSON or YAML document. Empty input parses to
// null.
func Parse(d []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return ir.Null(), nil
	}
	if len(f.Docs) > 1 {
		return nil, fmt.Errorf("expected a single document, got %d", len(f.Docs))
	}
	p := &docParser{anchors: map[string]*ir.Node{}}
	return p.node(f.Docs[0].Body)
}

// MustParse is Parse for fixtures known to be well formed; it panics
// on error.
func MustParse(src string) *ir.Node {
	node, err := Parse([]byte(src))
	if err != nil {
		panic(err)
	}
	return node
}

type docParser struct {
	anchors map[string]*ir.Node
}

func (p *docParser) node(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		switch v := x.Value.(type) {
		case int64:
			return ir.FromInt(v), nil
		case uint64:
			return ir.FromInt(int64(v)), nil
		case int:
			return ir.FromInt(int64(v)), nil
		default:
			return nil, fmt.Errorf("unsupported integer representation %T", x.Value)
		}
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.SequenceNode:
		vals := make([]*ir.Node, 0, len(x.Values))
		for _, el := range x.Values {
			v, err := p.node(el)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		return ir.FromSlice(vals), nil
	case *ast.MappingNode:
		return p.mapping(x.Values)
	case *ast.MappingValueNode:
		return p.mapping([]*ast.MappingValueNode{x})
	case *ast.AnchorNode:
		v, err := p.node(x.Value)
		if err != nil {
			return nil, err
		}
		p.anchors[x.Name.GetToken().Value] = v
		return v, nil
	case *ast.AliasNode:
		name := x.Value.GetToken().Value
		v, ok := p.anchors[name]
		if !ok {
			return nil, fmt.Errorf("unknown anchor %q", name)
		}
		return v.Clone(), nil
	case *ast.TagNode:
		return p.node(x.Value)
	default:
		return nil, fmt.Errorf("unsupported YAML node %T", n)
	}
}

func (p *docParser) mapping(values []*ast.MappingValueNode) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for _, mv := range values {
		if _, ok := mv.Key.(*ast.MergeKeyNode); ok {
			merged, err := p.node(mv.Value)
			if err != nil {
				return nil, err
			}
			if merged.Type != ir.ObjectType {
				return nil, fmt.Errorf("merge key value is not a mapping")
			}
			for i := range merged.Fields {
				kvs = append(kvs, ir.KeyVal{
					Key: ir.FromString(merged.Fields[i].String),
					Val: merged.Values[i],
				})
			}
			continue
		}
		key, err := p.key(mv.Key)
		if err != nil {
			return nil, err
		}
		val, err := p.node(mv.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

func (p *docParser) key(n ast.MapKeyNode) (string, error) {
	switch x := n.(type) {
	case *ast.StringNode:
		return x.Value, nil
	case *ast.IntegerNode, *ast.BoolNode, *ast.FloatNode:
		return n.GetToken().Value, nil
	default:
		return "", fmt.Errorf("unsupported mapping key %T", n)
	}
}
