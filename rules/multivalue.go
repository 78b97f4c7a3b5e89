package rules

import (
	"errors"
	"strings"

	"github.com/jsonedit/go-jsonedit/debug"
	"github.com/jsonedit/go-jsonedit/ir"
)

// MultiValuePrefix starts a multi-value property name.
const MultiValuePrefix = "*"

// MultiValue expands properties of the form "*var=v1,v2,...": the
// object body is cloned once per listed value with var bound to that
// value, and the per-value results are flattened into a single object.
// Templated keys in the body fan out into one property per value.
type MultiValue struct {
	Base
}

func NewMultiValue() *MultiValue {
	return &MultiValue{}
}

func (r *MultiValue) Name() string { return "multivalue" }

func (r *MultiValue) EditProperty(key string, value *ir.Node, st *State) Outcome {
	if !strings.HasPrefix(key, MultiValuePrefix) {
		return NotApplicable()
	}
	name, list, values, err := parseMultiValue(key[len(MultiValuePrefix):])
	if err != nil {
		return st.InvalidPropertyName(key, err)
	}
	if value == nil {
		return st.UndefinedPropertyValue()
	}
	if value.Type != ir.ObjectType {
		return Fail(errors.New("multi-value body must be an object"))
	}
	if debug.Rule() {
		debug.Logf("multivalue %q: %s over %q\n", key, name, list)
	}
	res := ir.NewObject()
	for _, v := range values {
		ctx := st.Context.Extend(Vars{name: v}, nil)
		out := st.CloneValue(value, ctx)
		switch out.Disposition {
		case Failed:
			return Fail(out.Err)
		case Ignored:
			continue
		case Edited:
			if out.Node.Type != ir.ObjectType {
				return Fail(errors.New("multi-value body did not expand to an object"))
			}
			for i := range out.Node.Fields {
				res.SetField(out.Node.Fields[i].String, out.Node.Values[i])
			}
		}
	}
	return Edit(res)
}

func parseMultiValue(spec string) (name, list string, values []string, err error) {
	name, list, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", nil, errors.New("malformed multi-value property")
	}
	for _, v := range strings.Split(list, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return "", "", nil, errors.New("multi-value property has no values")
	}
	return name, list, values, nil
}
