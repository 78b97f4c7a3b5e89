package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsonedit/go-jsonedit/debug"
	"github.com/jsonedit/go-jsonedit/ir"
)

// referenceDefault is the selector string that picks the entire
// referenced object.
const referenceDefault = "default"

// Reference expands properties and string values that name entries in
// the context's reference map.
//
// For a property whose key is a known reference, the property's own
// value is first cloned through the full rule pipeline to produce a
// selector: an object selector is spread as extra template variables,
// the string "default" picks the whole referenced object, and any
// other string picks a dotted child path within it. The resolved
// object is flattened into the parent.
type Reference struct {
	Base
}

func NewReference() *Reference {
	return &Reference{}
}

func (r *Reference) Name() string { return "reference" }

func (r *Reference) EditProperty(key string, value *ir.Node, st *State) Outcome {
	refs := st.Refs()
	if refs == nil || !refs.Has(key) {
		return NotApplicable()
	}
	sel := st.CloneValue(value, nil)
	switch sel.Disposition {
	case Failed:
		return Fail(fmt.Errorf("bad reference selector: %w", sel.Err))
	case Ignored:
		return Ignore()
	}
	if debug.Ref() {
		debug.Logf("reference property %q selector %v\n", key, sel.Node)
	}
	switch sel.Node.Type {
	case ir.ObjectType:
		vars := make(Vars, len(sel.Node.Fields))
		for i := range sel.Node.Fields {
			vars[sel.Node.Fields[i].String] = ir.ToAny(sel.Node.Values[i])
		}
		out := refs.ResolveObject(key, st.Context.Extend(vars, nil))
		return r.propertyOutcome(key, out)
	case ir.StringType:
		out := refs.ResolveObject(key, st.Context)
		if sel.Node.String == referenceDefault {
			return r.propertyOutcome(key, out)
		}
		out = r.propertyOutcome(key, out)
		if out.Disposition != Edited {
			return out
		}
		picked := pickPath(out.Node, sel.Node.String)
		if picked == nil {
			return Failf("no %q in referenced object %q", sel.Node.String, key)
		}
		if picked.Type != ir.ObjectType {
			return Failf("picked %q in %q is not an object", sel.Node.String, key)
		}
		return Edit(picked)
	default:
		return Fail(errors.New("malformed reference selector"))
	}
}

// propertyOutcome maps a reference-map lookup onto the property edit:
// unknown keys degrade to inapplicable rather than error.
func (r *Reference) propertyOutcome(key string, out Outcome) Outcome {
	switch out.Disposition {
	case Edited:
		return Edit(out.Node)
	case Inapplicable:
		return NotApplicable()
	default:
		return Fail(fmt.Errorf("reference %q: %w", key, out.Err))
	}
}

func (r *Reference) EditValue(value *ir.Node, st *State) Outcome {
	refs := st.Refs()
	if refs == nil || value == nil || value.Type != ir.StringType {
		return NotApplicable()
	}
	if !refs.Has(value.String) {
		return NotApplicable()
	}
	if debug.Ref() {
		debug.Logf("reference value %q\n", value.String)
	}
	out := refs.Resolve(value.String, st.Context)
	switch out.Disposition {
	case Edited:
		return Edit(out.Node)
	case Inapplicable:
		return NotApplicable()
	default:
		return st.InvalidPropertyValue(fmt.Errorf("reference %q: %w", value.String, out.Err))
	}
}

// pickPath walks a dotted path of object fields.
func pickPath(node *ir.Node, path string) *ir.Node {
	res := node
	for part := range strings.SplitSeq(path, ".") {
		if res == nil || res.Type != ir.ObjectType {
			return nil
		}
		res = ir.Get(res, part)
	}
	return res
}
