package jsonedit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jsonedit/go-jsonedit/debug"
	"github.com/jsonedit/go-jsonedit/ir"
	"github.com/jsonedit/go-jsonedit/rules"
)

// MergeObjectInPlace merges src into target, mutating and returning
// target. A nil ctx uses the editor's base context.
func (e *Editor) MergeObjectInPlace(target, src *ir.Node, ctx *rules.Context) (*ir.Node, error) {
	if target == nil || target.Type != ir.ObjectType {
		return nil, errors.New("merge target must be an object")
	}
	if src == nil || src.Type != ir.ObjectType {
		return nil, errors.New("merge source must be an object")
	}
	st := e.newState(ctx)
	if err := e.mergeObjectWithState(target, src, st, st.Merge.NullAsDelete); err != nil {
		return nil, err
	}
	return target, nil
}

// MergeObjectsInPlace merges each source into target in order,
// stopping at the first failure.
func (e *Editor) MergeObjectsInPlace(target *ir.Node, srcs ...*ir.Node) (*ir.Node, error) {
	return e.MergeObjectsInPlaceWithContext(nil, target, srcs...)
}

func (e *Editor) MergeObjectsInPlaceWithContext(ctx *rules.Context, target *ir.Node, srcs ...*ir.Node) (*ir.Node, error) {
	for _, src := range srcs {
		if _, err := e.MergeObjectInPlace(target, src, ctx); err != nil {
			return nil, err
		}
	}
	return target, nil
}

// MergeNew merges the sources into a fresh object.
func (e *Editor) MergeNew(ctx *rules.Context, srcs ...*ir.Node) (*ir.Node, error) {
	return e.MergeObjectsInPlaceWithContext(ctx, ir.NewObject(), srcs...)
}

// mergeObjectWithState merges src into target under a state owned by
// this object level: the state's deferral list covers exactly the
// properties of src, and finalization runs here.
func (e *Editor) mergeObjectWithState(target, src *ir.Node, st *rules.State, nullDelete bool) error {
	if err := e.mergeProps(target, src, st, nullDelete); err != nil {
		return err
	}
	return e.finalize(target, st, nullDelete)
}

func (e *Editor) mergeProps(target, src *ir.Node, st *rules.State, nullDelete bool) error {
	n := len(src.Fields)
	for i := range n {
		field := src.Fields[i]
		if field.Type != ir.StringType {
			return errInherited
		}
		key := field.String
		if isDangerousKey(key) {
			continue
		}
		val := src.Values[i]
		out := e.editProperty(key, val, st)
		switch out.Disposition {
		case rules.Edited:
			if out.Node == nil || out.Node.Type != ir.ObjectType {
				return fmt.Errorf("%s: rule produced a non-object property edit", key)
			}
			// flatten the rewritten properties through the same state
			if err := e.mergeProps(target, out.Node, st, nullDelete); err != nil {
				return err
			}
		case rules.Deferred, rules.Ignored:
			// deferred properties were recorded on the state
		case rules.Failed:
			return fmt.Errorf("%s: %w", key, out.Err)
		case rules.Inapplicable:
			cl := e.cloneNode(val, st)
			switch cl.Disposition {
			case rules.Ignored:
			case rules.Failed:
				return fmt.Errorf("%s: %w", key, cl.Err)
			case rules.Edited:
				if err := e.mergeClonedProperty(target, key, cl.Node, st, nullDelete); err != nil {
					return fmt.Errorf("%s: %w", key, err)
				}
			default:
				return fmt.Errorf("%s: unexpected clone disposition %s", key, cl.Disposition)
			}
		}
	}
	return nil
}

// finalize runs the second pass over the deferrals gathered for one
// containing object. Rules are consulted in registration order and the
// first Edited or Ignored responder ends the scan.
func (e *Editor) finalize(target *ir.Node, st *rules.State, nullDelete bool) error {
	defs := st.Deferrals()
	if len(defs) == 0 {
		return nil
	}
	st.ResetDeferrals()
	for _, r := range e.rules {
		out := r.Finalize(defs, st)
		switch out.Disposition {
		case rules.Inapplicable:
			continue
		case rules.Ignored:
			return nil
		case rules.Edited:
			if debug.Finalize() {
				debug.Logf("rule %s finalized %d object(s)\n", r.Name(), len(out.Nodes))
			}
			for _, obj := range out.Nodes {
				sub := e.newState(st.Context)
				if err := e.mergeObjectWithState(target, obj, sub, nullDelete); err != nil {
					return err
				}
			}
			return nil
		case rules.Failed:
			return out.Err
		}
	}
	return nil
}

// mergeClonedProperty resolves a single key collision between the
// fully resolved newValue and whatever target already holds at key.
func (e *Editor) mergeClonedProperty(target *ir.Node, key string, newValue *ir.Node, st *rules.State, nullDelete bool) error {
	// finalized objects reach here without passing the walk's filter
	if isDangerousKey(key) {
		return nil
	}
	if debug.Merge() {
		debug.Logf("merge %q <- %v\n", key, newValue)
	}
	existing := ir.Get(target, key)
	switch newValue.Type {
	case ir.NullType:
		if nullDelete {
			target.DeleteField(key)
			return nil
		}
		target.SetField(key, newValue)
	case ir.BoolType, ir.NumberType, ir.StringType:
		target.SetField(key, newValue)
	case ir.ObjectType:
		if existing != nil && existing.Type == ir.ObjectType {
			sub := e.newState(st.Context)
			return e.mergeObjectWithState(existing, newValue, sub, nullDelete)
		}
		target.SetField(key, newValue)
	case ir.ArrayType:
		if existing == nil || existing.Type != ir.ArrayType || st.Merge.Arrays == rules.ArrayReplace {
			target.SetField(key, newValue)
			return nil
		}
		combined := slices.Clone(existing.Values)
		combined = append(combined, newValue.Values...)
		target.SetField(key, ir.FromSlice(combined))
	default:
		return fmt.Errorf("unsupported value type %s", newValue.Type)
	}
	return nil
}
