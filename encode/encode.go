// Package encode writes ir nodes as JSON text, with optional
// indentation and ANSI colors.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jsonedit/go-jsonedit/ir"
)

type EncState struct {
	depth, indent int
	compact       bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = func(_ ir.Type, _ ColorAttr, s string) string { return s }
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("cannot encode an undefined value")
	}
	switch node.Type {
	case ir.NullType:
		return writeString(w, es.Color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		return writeString(w, es.Color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		return writeString(w, es.Color(ir.NumberType, ValueColor, numberString(node)))
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		return writeString(w, es.Color(ir.StringType, ValueColor, string(d)))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("cannot encode node type %s", node.Type)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	sep := es.Color(ir.ArrayType, SepColor, "[")
	if err := writeString(w, sep); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.Color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Values) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.Color(ir.ArrayType, SepColor, "]"))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.Color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.Color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		d, err := json.Marshal(node.Fields[i].String)
		if err != nil {
			return err
		}
		if err := writeString(w, es.Color(ir.ObjectType, FieldColor, string(d))); err != nil {
			return err
		}
		sep := ":"
		if !es.compact {
			sep = ": "
		}
		if err := writeString(w, es.Color(ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Fields) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.Color(ir.ObjectType, SepColor, "}"))
}

func numberString(node *ir.Node) string {
	if node.Number != "" {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	d := make([]byte, 0, 1+es.depth*es.indent)
	d = append(d, '\n')
	for range es.depth * es.indent {
		d = append(d, ' ')
	}
	_, err := w.Write(d)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
