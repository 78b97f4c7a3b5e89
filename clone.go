package jsonedit

import (
	"errors"
	"fmt"

	"github.com/jsonedit/go-jsonedit/debug"
	"github.com/jsonedit/go-jsonedit/ir"
	"github.com/jsonedit/go-jsonedit/rules"
)

// ErrIgnored reports that the cloned value was filtered out entirely.
var ErrIgnored = errors.New("value ignored")

// Clone deep-copies v, applying the full rule pipeline. A nil ctx uses
// the editor's base context. A value filtered out at the top level
// surfaces as ErrIgnored.
func (e *Editor) Clone(v *ir.Node, ctx *rules.Context) (*ir.Node, error) {
	out := e.CloneValue(v, ctx)
	switch out.Disposition {
	case rules.Edited:
		return out.Node, nil
	case rules.Ignored:
		return nil, ErrIgnored
	case rules.Failed:
		return nil, out.Err
	}
	return nil, fmt.Errorf("unexpected clone disposition %s", out.Disposition)
}

// CloneValue is the detailed form of Clone. It implements
// refmap.Formatter, so editors double as reference-map formatters.
func (e *Editor) CloneValue(v *ir.Node, ctx *rules.Context) rules.Outcome {
	return e.cloneNode(v, e.newState(ctx))
}

func (e *Editor) cloneNode(v *ir.Node, st *rules.State) rules.Outcome {
	// Value rules run to a fixed point: a template can render to a
	// string that is itself a reference key.
	for {
		out := e.editValue(v, st)
		if out.Disposition == rules.Inapplicable {
			break
		}
		if out.Disposition != rules.Edited {
			return out
		}
		v = out.Node
	}
	if v == nil {
		return st.UndefinedPropertyValue()
	}
	if debug.Edit() {
		debug.Logf("clone %s at %s\n", v.Type.String(), v.Path())
	}
	switch v.Type {
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		return rules.Edit(v.Clone())
	case ir.ObjectType:
		res := ir.NewObject()
		// Null-as-delete never applies inside a pure clone: a cloned
		// null may later be used as a delete signal by a caller that
		// merges this clone into something else.
		sub := e.newState(st.Context)
		if err := e.mergeObjectWithState(res, v, sub, false); err != nil {
			return rules.Fail(err)
		}
		return rules.Edit(res)
	case ir.ArrayType:
		// an ignored element truncates the result, but every element is
		// still evaluated so a later error cannot be masked
		vals := make([]*ir.Node, 0, len(v.Values))
		collecting := true
		for _, el := range v.Values {
			out := e.cloneNode(el, st)
			switch out.Disposition {
			case rules.Failed:
				return out
			case rules.Ignored:
				collecting = false
			case rules.Edited:
				if collecting {
					vals = append(vals, out.Node)
				}
			}
		}
		return rules.Edit(ir.FromSlice(vals))
	default:
		return st.InvalidPropertyValue(fmt.Errorf("unsupported value type %s", v.Type))
	}
}
